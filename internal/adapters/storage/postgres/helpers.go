package postgres

import (
	"database/sql"
	"fmt"
	"time"
)

// Los flags persisten como INT 0/1 (esquema heredado), no como BOOLEAN.

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intBoolScanner lee una columna INT 0/1 en un bool.
type intBoolScanner struct {
	v *bool
}

func (s *intBoolScanner) Scan(src any) error {
	switch x := src.(type) {
	case int64:
		*s.v = x != 0
	case bool:
		*s.v = x
	case nil:
		*s.v = false
	default:
		return fmt.Errorf("cannot scan %T into bool flag", src)
	}
	return nil
}

// soloFecha trunca a día calendario; los vencimientos se comparan por fecha,
// no por hora.
func soloFecha(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullTimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
