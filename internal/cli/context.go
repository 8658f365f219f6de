// Package cli provides the command-line interface for the schedfetch application.
package cli

import (
	"github.com/campus-tools/schedfetch/internal/app"
)

// Global reference shared by commands; set once in PersistentPreRunE.
var globalApp *app.Application

// SetApp stores the Application for commands to access.
func SetApp(a *app.Application) {
	globalApp = a
}

// GetApp retrieves the Application.
func GetApp() *app.Application {
	return globalApp
}
