package render

import (
	"strings"
	"unicode/utf8"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

// Style controls terminal decoration.
type Style struct {
	Color bool
}

func (s Style) paint(code, text string) string {
	if !s.Color {
		return text
	}
	return code + text + ansiReset
}

// Heading returns the section heading "=== TITLE ===".
func (s Style) Heading(title string) string {
	return s.paint(ansiGreen, "=== "+strings.ToUpper(title)+" ===")
}

// Banner returns title inside a three-line box.
func (s Style) Banner(title string) string {
	inner := "   " + title + "   "
	bar := strings.Repeat("═", utf8.RuneCountInString(inner))
	return s.paint(ansiYellow, "╔"+bar+"╗\n║"+inner+"║\n╚"+bar+"╝")
}

// Warn returns text in the warning colour.
func (s Style) Warn(text string) string {
	return s.paint(ansiRed, text)
}

// Rule returns a horizontal rule.
func (s Style) Rule() string {
	return s.paint(ansiYellow, strings.Repeat("=", 50))
}
