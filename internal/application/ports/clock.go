package ports

import "github.com/jhoicas/club-deportivo-api/internal/domain/fecha"

// Clock provee el día calendario actual. Las reglas de morosidad y renovación lo reciben
// en lugar de leer la hora del sistema, para poder fijar "hoy" en los tests.
type Clock interface {
	Hoy() fecha.Fecha
}
