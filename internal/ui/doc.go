// Package ui provides the styled output used by vitrine's one-shot commands.
//
// The interactive page lives in internal/page/tui. This package covers the
// commands that print something and exit: version, slides, config and
// contact check. They all render through a Printer so output can be
// captured in tests.
//
// # Components
//
//   - Header: command banner with a title, the command path and parameters
//   - Success and error boxes: result of a command, with details or hints
//   - Table: tabular listings such as the slide deck
//
// # Logging Integration
//
// Logging is controlled by the VITRINE_LOG_LEVEL environment variable. When
// unset, zap is silent and only the styled output reaches the terminal.
package ui
