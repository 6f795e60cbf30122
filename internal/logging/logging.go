// Package logging builds the shared zap logger used across the CLI and
// HTTP façades. The core packages (index, query, export, snapshot) never
// log; only the façade layers that own a *zap.Logger do.
package logging

import "go.uber.org/zap"

// New builds a production zap logger in JSON encoding, or a development
// logger with human-readable console output when debug is true.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
