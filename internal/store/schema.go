package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/cjr/internal/setup"
)

// TableSessions is the only table of the store.
const TableSessions = "Sessions"

// Column is one required attribute column of the Sessions table.
type Column struct {
	Name string
	Type string
}

// Integer reports whether the column holds an INTEGER.
func (c Column) Integer() bool {
	return c.Type == "INTEGER"
}

// Columns lists the record columns in insert/select order. Names match the
// setup field keys, so text columns map onto setup.Record via Get and Set.
var Columns = []Column{
	{setup.FieldDriverName, "TEXT"},
	{setup.FieldDriverAge, "INTEGER"},
	{setup.FieldExperience, "TEXT"},

	{setup.FieldFrontWing, "TEXT"},
	{setup.FieldRearWing, "TEXT"},
	{setup.FieldDRSEnabled, "TEXT"},
	{setup.FieldDownforceLevel, "TEXT"},
	{setup.FieldWingAngle, "TEXT"},

	{setup.FieldEngineType, "TEXT"},
	{setup.FieldEnginePower, "TEXT"},
	{setup.FieldTransmission, "TEXT"},
	{setup.FieldERSMode, "TEXT"},
	{setup.FieldERSBoost, "TEXT"},

	{setup.FieldTireCompound, "TEXT"},
	{setup.FieldTirePressure, "INTEGER"},

	{setup.FieldSuspensionType, "TEXT"},
	{setup.FieldSuspensionLevel, "TEXT"},
	{setup.FieldSteeringLevel, "TEXT"},
	{setup.FieldRideHeight, "TEXT"},
	{setup.FieldCamberToeAngles, "TEXT"},

	{setup.FieldBrakeType, "TEXT"},
	{setup.FieldBrakeLevel, "TEXT"},
	{setup.FieldABSEnabled, "TEXT"},
}

// createSessionsSQL holds the minimum columns; everything else is added by
// ensureColumn so old and new stores converge on the same shape.
const createSessionsSQL = `
	CREATE TABLE IF NOT EXISTS Sessions (
		Id INTEGER PRIMARY KEY AUTOINCREMENT,
		CreatedAt TEXT,
		Name TEXT
	)
`

// EnsureSchema makes sure the Sessions table exists with every column in
// Columns. It is idempotent and safe on a brand-new file, on a store written
// by an older version with fewer columns, and on a complete store.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.writes.WithWriteLock(ctx, "ensure_schema", s.ensureSchemaLocked)
}

// ensureSchemaLocked is EnsureSchema for callers already holding the write lock.
func (s *Store) ensureSchemaLocked(ctx context.Context) error {
	err := s.retrying(ctx, s.schemaRetry, "create sessions table", func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, createSessionsSQL)
		return err
	})
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	existing, err := s.columnNames(ctx)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	for _, col := range Columns {
		if hasColumn(existing, col.Name) {
			continue
		}
		if err := s.addColumn(ctx, col); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		existing = append(existing, col.Name)
	}

	return nil
}

// addColumn adds col as a nullable column, retrying on contention.
func (s *Store) addColumn(ctx context.Context, col Column) error {
	stmt := fmt.Sprintf(`ALTER TABLE "%s" ADD COLUMN "%s" %s`, TableSessions, col.Name, col.Type)
	return s.retrying(ctx, s.schemaRetry, "add column "+col.Name, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, stmt)
		if err != nil && isDuplicateColumn(err) {
			// Another process added it between introspection and ALTER.
			return nil
		}
		return err
	})
}

// columnNames introspects the Sessions table. The rows are fully read and
// closed before returning so no read cursor is open during ALTER TABLE.
func (s *Store) columnNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM pragma_table_info(?)`, TableSessions)
	if err != nil {
		return nil, fmt.Errorf("query table info: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table info: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table info: %w", err)
	}
	return names, nil
}

// MissingColumns returns the required columns absent from the Sessions
// table, in Columns order. An empty slice means the schema is complete.
func (s *Store) MissingColumns(ctx context.Context) ([]string, error) {
	existing, err := s.columnNames(ctx)
	if err != nil {
		return nil, err
	}

	required := []string{"Id", "CreatedAt", "Name"}
	for _, col := range Columns {
		required = append(required, col.Name)
	}

	missing := []string{}
	for _, name := range required {
		if !hasColumn(existing, name) {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// hasColumn compares case-insensitively, as SQLite identifiers are.
func hasColumn(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func isDuplicateColumn(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column name")
}
