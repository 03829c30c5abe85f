// Package pom describes a web application as pages of named elements.
//
// A Model maps URL paths to page constructors and keeps one active page,
// switched by a Listener installed on the browser driver:
//
//	routes := pom.Routes{
//		"/login": pom.FormOf(pom.DeclareFunc(func() []pom.Element {
//			return []pom.Element{
//				pom.NewField("username", entities.ID("username"), ""),
//				pom.NewField("password", entities.ID("password"), ""),
//				pom.NewElement("submit", entities.CSS("button[type=submit]")),
//			}
//		})),
//	}
//	model := pom.NewModel(routes, logger)
//	session.Navigate("http://localhost:8000/login")
//	model.Autofill(map[string]string{"username": "alice", "password": "secret"})
//	model.Click("submit")
package pom
