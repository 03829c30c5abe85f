package browser

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"uitestframework/domain/entities"
	"uitestframework/infrastructure/config"
)

func TestLaunchRejectsConfiguration(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	tests := []struct {
		name    string
		cfg     config.Config
		wantErr error
	}{
		{
			name:    "unknown browser",
			cfg:     config.Config{Backend: entities.BackendPlaywright, Browser: "netscape"},
			wantErr: entities.ErrUnknownBrowser,
		},
		{
			name:    "unknown backend",
			cfg:     config.Config{Backend: "puppeteer"},
			wantErr: entities.ErrUnknownBackend,
		},
		{
			name:    "missing driver path",
			cfg:     config.Config{Backend: entities.BackendSelenium},
			wantErr: config.ErrMissingDriverPath,
		},
		{
			name:    "chromedp cannot drive firefox",
			cfg:     config.Config{Backend: entities.BackendChromedp, Browser: entities.BrowserFirefox},
			wantErr: entities.ErrUnsupportedBrowser,
		},
		{
			name:    "playwright cannot drive opera",
			cfg:     config.Config{Backend: entities.BackendPlaywright, Browser: entities.BrowserOpera},
			wantErr: entities.ErrUnsupportedBrowser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			session, err := Launch(&cfg, nil, logger)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, session)
		})
	}
}

func TestSupported(t *testing.T) {
	assert.Equal(t, entities.Browsers, Supported(entities.BackendSelenium))
	assert.Equal(t, []entities.Browser{entities.BrowserChrome}, Supported(entities.BackendChromedp))
	assert.Nil(t, Supported("puppeteer"))

	assert.NoError(t, checkSupported(entities.BackendPlaywright, ""))
	assert.ErrorIs(t, checkSupported(entities.BackendPlaywright, entities.BrowserInternetExplorer), entities.ErrUnsupportedBrowser)
	assert.ErrorIs(t, checkSupported(entities.BackendChromedp, "lynx"), entities.ErrUnknownBrowser)
}
