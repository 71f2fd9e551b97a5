package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/roach88/cjr/internal/setup"
)

// Session is one persisted configuration.
type Session struct {
	ID        int64        `json:"id"`
	CreatedAt string       `json:"created_at"`
	Name      string       `json:"name"`
	Record    setup.Record `json:"record"`
}

// SessionSummary is the list projection of a session.
type SessionSummary struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	Name      string `json:"name"`
}

// Label is the text shown for the session in menus: the name, else the
// timestamp, else "Session <id>".
func (s SessionSummary) Label() string {
	if strings.TrimSpace(s.Name) != "" {
		return s.Name
	}
	if strings.TrimSpace(s.CreatedAt) != "" {
		return s.CreatedAt
	}
	return fmt.Sprintf("Session %d", s.ID)
}

// DriverRow is the driver projection of a session.
type DriverRow struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Experience string `json:"experience"`
}

// TimestampLayout is the CreatedAt format (ISO-8601, UTC).
const TimestampLayout = time.RFC3339Nano

var (
	insertSessionSQL = buildInsertSQL()
	selectRecordCols = buildRecordCols()
)

func buildInsertSQL() string {
	names := []string{"CreatedAt", "Name"}
	for _, c := range Columns {
		names = append(names, c.Name)
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", TableSessions, strings.Join(names, ", "), marks)
}

func buildRecordCols() string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// recordArgs returns the record values in Columns order.
func recordArgs(rec setup.Record) []any {
	args := make([]any, 0, len(Columns))
	for _, c := range Columns {
		switch c.Name {
		case setup.FieldDriverAge:
			args = append(args, rec.Driver.Age)
		case setup.FieldTirePressure:
			args = append(args, rec.Wheels.TirePressure)
		default:
			v, _ := rec.Get(c.Name)
			args = append(args, v)
		}
	}
	return args
}
