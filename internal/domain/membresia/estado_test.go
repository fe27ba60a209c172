package membresia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/membresia"
)

var hoy = fecha.MustParse("2024-06-15")

func TestEsMoroso(t *testing.T) {
	casos := []struct {
		nombre      string
		vencimiento string
		esperado    bool
	}{
		{"vencido ayer", "2024-06-14", true},
		{"vence hoy no es moroso", "2024-06-15", false},
		{"vence mañana", "2024-06-16", false},
		{"texto ilegible", "not-a-date", false},
		{"sin fecha", "", false},
		{"formato dd/mm/aaaa", "14/06/2024", false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, membresia.EsMoroso(fecha.Parse(c.vencimiento), hoy))
		})
	}
}

func TestEvaluar(t *testing.T) {
	socio := func(venc, baja string) *entity.Socio {
		return &entity.Socio{ID: 7, FechaVencimientoCuota: fecha.Parse(venc), FechaBaja: fecha.Parse(baja)}
	}
	assert.Equal(t, membresia.EstadoNoSocio, membresia.Evaluar(nil, hoy))
	assert.Equal(t, membresia.EstadoMoroso, membresia.Evaluar(socio("2024-06-14", ""), hoy))
	assert.Equal(t, membresia.EstadoActivo, membresia.Evaluar(socio("2024-06-15", ""), hoy))
	assert.Equal(t, membresia.EstadoFechaInvalida, membresia.Evaluar(socio("not-a-date", ""), hoy))
	assert.Equal(t, membresia.EstadoFechaInvalida, membresia.Evaluar(socio("", ""), hoy))
	assert.Equal(t, membresia.EstadoBaja, membresia.Evaluar(socio("2024-01-01", "2024-02-01"), hoy),
		"un socio dado de baja no figura como moroso")
}

func TestEstado_MorosoSoloParaMoroso(t *testing.T) {
	assert.True(t, membresia.EstadoMoroso.Moroso())
	for _, e := range []membresia.Estado{
		membresia.EstadoActivo, membresia.EstadoNoSocio, membresia.EstadoBaja, membresia.EstadoFechaInvalida,
	} {
		assert.False(t, e.Moroso(), string(e))
	}
}

func TestProximoVencimiento(t *testing.T) {
	assert.Equal(t, "2024-01-31", membresia.ProximoVencimiento(fecha.MustParse("2024-01-01")).String())
	assert.Equal(t, "2024-07-15", membresia.ProximoVencimiento(hoy).String())
}
