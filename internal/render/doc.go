// Package render formats configurations, session lists and the driver
// roster as plain text for the terminal and the CLI.
//
// All functions write to an io.Writer and never read input. ANSI colour is
// emitted only when Style.Color is set; callers decide that from the
// terminal (see internal/menu).
package render
