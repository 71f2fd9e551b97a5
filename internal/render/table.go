package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/cjr/internal/store"
)

// Column widths of the driver roster.
const (
	NameWidth       = 30
	ExperienceWidth = 40
)

// Truncate shortens s to at most max runes, replacing the tail with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// DriverTable writes the driver roster as a fixed-width table.
func DriverTable(w io.Writer, rows []store.DriverRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "  (no drivers found)")
		return err
	}

	lines := []string{
		fmt.Sprintf("%4s  %-*s  %3s  %-*s", "Id", NameWidth, "Name", "Age", ExperienceWidth, "Experience"),
		fmt.Sprintf("%s  %s  %s  %s",
			strings.Repeat("-", 4), strings.Repeat("-", NameWidth),
			strings.Repeat("-", 3), strings.Repeat("-", ExperienceWidth)),
	}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%4d  %-*s  %3d  %-*s",
			r.ID,
			NameWidth, Truncate(r.Name, NameWidth),
			r.Age,
			ExperienceWidth, Truncate(r.Experience, ExperienceWidth)))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(l, " ")); err != nil {
			return err
		}
	}
	return nil
}

// SessionList writes one "[n] label (Id: id)" line per session, numbered
// from 1 in the given order.
func SessionList(w io.Writer, sessions []store.SessionSummary) error {
	for i, s := range sessions {
		if _, err := fmt.Fprintf(w, "[%d] %s (Id: %d)\n", i+1, s.Label(), s.ID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteTarget describes the session about to be deleted.
func DeleteTarget(d store.DriverRow) string {
	name := d.Name
	if name == "" {
		name = Placeholder
	}
	return fmt.Sprintf("You are about to delete driver '%s' (Id: %d), age %d, %s.",
		Truncate(name, NameWidth), d.ID, d.Age, text(Truncate(d.Experience, ExperienceWidth)))
}
