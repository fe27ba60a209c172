package clock

import (
	"fmt"
	"time"

	"github.com/jhoicas/club-deportivo-api/internal/application/ports"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

var _ ports.Clock = (*SystemClock)(nil)

// SystemClock reloj real; el día se calcula en la zona horaria del club.
type SystemClock struct {
	loc *time.Location
	now func() time.Time
}

// NewSystemClock carga la zona indicada (vacío = hora local).
func NewSystemClock(timezone string) (*SystemClock, error) {
	loc := time.Local
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("zona horaria %q: %w", timezone, err)
		}
		loc = l
	}
	return &SystemClock{loc: loc, now: time.Now}, nil
}

// Hoy devuelve la fecha actual en la zona del club.
func (c *SystemClock) Hoy() fecha.Fecha {
	return fecha.FromTime(c.now().In(c.loc))
}

// Fixed reloj detenido en una fecha; lo usan el seed y los tests.
type Fixed fecha.Fecha

// Hoy devuelve siempre la misma fecha.
func (f Fixed) Hoy() fecha.Fecha { return fecha.Fecha(f) }
