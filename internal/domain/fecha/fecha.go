// Package fecha define el tipo de fecha calendario usado por todo el dominio.
// En la base de datos las fechas se guardan como texto YYYY-MM-DD; dentro de la
// aplicación se manejan como Fecha para poder compararlas sin depender del orden
// lexicográfico del texto.
package fecha

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layout formato de almacenamiento (ISO-8601, solo fecha).
const Layout = "2006-01-02"

// Fecha fecha calendario sin hora. Si el texto almacenado no se pudo interpretar,
// Valid es false y Raw conserva el valor original.
type Fecha struct {
	t     time.Time
	Raw   string
	Valid bool
}

// New construye una fecha válida a partir de año, mes y día.
func New(year int, month time.Month, day int) Fecha {
	return Fecha{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// FromTime toma el día calendario de t en su propia zona horaria.
func FromTime(t time.Time) Fecha {
	return New(t.Year(), t.Month(), t.Day())
}

// Parse interpreta s como YYYY-MM-DD. Un texto vacío devuelve la fecha nula;
// un texto inválido devuelve Valid=false con Raw conservado (nunca error).
func Parse(s string) Fecha {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fecha{}
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Fecha{Raw: s}
	}
	return Fecha{t: t, Valid: true}
}

// MustParse como Parse pero entra en pánico si s no es una fecha válida. Solo para constantes y tests.
func MustParse(s string) Fecha {
	f := Parse(s)
	if !f.Valid {
		panic(fmt.Sprintf("fecha: %q no es YYYY-MM-DD", s))
	}
	return f
}

// IsZero indica ausencia de valor (NULL en base de datos).
func (f Fecha) IsZero() bool {
	return !f.Valid && f.Raw == ""
}

// Time devuelve la fecha a medianoche UTC. Cero si no es válida.
func (f Fecha) Time() time.Time {
	if !f.Valid {
		return time.Time{}
	}
	return f.t
}

// AddDays suma n días corridos (no respeta meses calendario).
func (f Fecha) AddDays(n int) Fecha {
	if !f.Valid {
		return f
	}
	return FromTime(f.t.AddDate(0, 0, n))
}

// Before compara dos fechas válidas. Con cualquiera inválida devuelve false.
func (f Fecha) Before(o Fecha) bool {
	return f.Valid && o.Valid && f.t.Before(o.t)
}

// Equal compara dos fechas válidas.
func (f Fecha) Equal(o Fecha) bool {
	if f.Valid != o.Valid {
		return false
	}
	if !f.Valid {
		return f.Raw == o.Raw
	}
	return f.t.Equal(o.t)
}

// String devuelve YYYY-MM-DD, el texto original si era inválido, o "" si es nula.
func (f Fecha) String() string {
	if f.Valid {
		return f.t.Format(Layout)
	}
	return f.Raw
}

// Value implementa driver.Valuer: la fecha nula se guarda como NULL.
func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.String(), nil
}

// Scan implementa sql.Scanner.
func (f *Fecha) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = Fecha{}
	case string:
		*f = Parse(v)
	case []byte:
		*f = Parse(string(v))
	case time.Time:
		*f = FromTime(v)
	default:
		return fmt.Errorf("fecha: tipo no soportado %T", src)
	}
	return nil
}

// MarshalJSON serializa como string (null si es nula).
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.String())
}

// UnmarshalJSON acepta string o null.
func (f *Fecha) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = Fecha{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha: %w", err)
	}
	*f = Parse(s)
	return nil
}
