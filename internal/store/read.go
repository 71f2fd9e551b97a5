package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/cjr/internal/setup"
)

// ListSessions returns every session, newest (highest id) first.
// Returns an empty slice (not nil) if the store is empty.
func (s *Store) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT Id, CreatedAt, Name
		FROM Sessions
		ORDER BY Id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []SessionSummary{}
	for rows.Next() {
		var sum SessionSummary
		var createdAt, name sql.NullString
		if err := rows.Scan(&sum.ID, &createdAt, &name); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sum.CreatedAt = createdAt.String
		sum.Name = name.String
		sessions = append(sessions, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// LoadSession reads the full session with the given id.
// Returns an error wrapping ErrNotFound if there is none. Columns that are
// NULL (rows written before the column existed) load as zero values.
func (s *Store) LoadSession(ctx context.Context, id int64) (Session, error) {
	query := fmt.Sprintf(`SELECT Id, CreatedAt, Name, %s FROM %s WHERE Id = ? LIMIT 1`,
		selectRecordCols, TableSessions)

	var (
		sess            Session
		createdAt, name sql.NullString
		texts           = make([]sql.NullString, len(Columns))
		ints            = make([]sql.NullInt64, len(Columns))
	)
	dest := []any{&sess.ID, &createdAt, &name}
	for i, c := range Columns {
		if c.Integer() {
			dest = append(dest, &ints[i])
		} else {
			dest = append(dest, &texts[i])
		}
	}

	err := s.db.QueryRowContext(ctx, query, id).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("load session %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session %d: %w", id, err)
	}

	sess.CreatedAt = createdAt.String
	sess.Name = name.String
	for i, c := range Columns {
		switch c.Name {
		case setup.FieldDriverAge:
			sess.Record.Driver.Age = int(ints[i].Int64)
		case setup.FieldTirePressure:
			sess.Record.Wheels.TirePressure = int(ints[i].Int64)
		default:
			sess.Record.Set(c.Name, texts[i].String)
		}
	}

	return sess, nil
}

// ListDrivers returns the driver of every session, oldest first.
func (s *Store) ListDrivers(ctx context.Context) ([]DriverRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT Id, DriverName, DriverAge, Experience
		FROM Sessions
		ORDER BY Id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	drivers := []DriverRow{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drivers: %w", err)
	}

	return drivers, nil
}

// LookupDriver returns the driver of one session, for delete confirmation.
// Returns an error wrapping ErrNotFound if there is no such session.
func (s *Store) LookupDriver(ctx context.Context, id int64) (DriverRow, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT Id, DriverName, DriverAge, Experience
		FROM Sessions
		WHERE Id = ?
	`, id)

	d, err := scanDriver(row)
	if errors.Is(err, sql.ErrNoRows) {
		return DriverRow{}, fmt.Errorf("lookup driver %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return DriverRow{}, fmt.Errorf("lookup driver %d: %w", id, err)
	}
	return d, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDriver(sc scanner) (DriverRow, error) {
	var d DriverRow
	var name, exp sql.NullString
	var age sql.NullInt64
	if err := sc.Scan(&d.ID, &name, &age, &exp); err != nil {
		return DriverRow{}, err
	}
	d.Name = name.String
	d.Age = int(age.Int64)
	d.Experience = exp.String
	return d, nil
}
