// Package greet prints the one-shot greeting shown at startup.
package greet

import (
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
)

var nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

func Message(name string) string {
	return fmt.Sprintf("hello %s from go!", name)
}

// Log writes the greeting for name to logger.
func Log(logger *log.Logger, name string) {
	logger.Println(Message(name))
}

// Banner returns the greeting with the name highlighted for terminal output.
func Banner(name string) string {
	return Message(nameStyle.Render(name))
}
