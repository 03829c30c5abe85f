package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"uitestframework/domain/entities"
	"uitestframework/domain/interfaces"
)

type artifactStore struct {
	dir string
}

// NewArtifactStore - creates a store writing into dir, creating it if needed
func NewArtifactStore(dir string) (interfaces.ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts directory: %w", err)
	}
	return &artifactStore{dir: dir}, nil
}

// SaveScreenshot - writes the screenshot as <test>.png
func (s *artifactStore) SaveScreenshot(test string, png []byte) (string, error) {
	path := filepath.Join(s.dir, fileName(test)+".png")
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// SaveReport - writes the report as <test>.json
func (s *artifactStore) SaveReport(report entities.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fileName(report.Test)+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// fileName turns a test name like "TestLogin/valid_user" into a safe file name
func fileName(test string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, test)
	name = strings.Trim(name, ".")
	if name == "" {
		return "unnamed"
	}
	return name
}
