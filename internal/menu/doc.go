// Package menu implements the interactive game: the main menu, the six
// configurators that build a setup.Record, and the Load Game flow that
// lists, shows and deletes saved sessions.
//
// All input is line based and read from an io.Reader, so every screen can
// be driven by a script in tests. When input ends the game exits cleanly.
package menu
