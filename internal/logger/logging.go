// Package logger provides prefixed charmbracelet/log loggers for the other packages.
package logger

import (
	"github.com/charmbracelet/log"
)

// New derives a prefixed charm log from the default logger, so it follows
// whatever output and level the program configured on it.
func New(prefix string) *log.Logger {
	return log.Default().WithPrefix(prefix)
}
