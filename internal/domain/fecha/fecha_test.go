package fecha_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

func TestParse_FechaValida(t *testing.T) {
	f := fecha.Parse("2024-06-15")
	require.True(t, f.Valid)
	assert.Equal(t, "2024-06-15", f.String())
	assert.Equal(t, time.June, f.Time().Month())
}

func TestParse_TextoInvalidoConservaRaw(t *testing.T) {
	f := fecha.Parse("not-a-date")
	assert.False(t, f.Valid)
	assert.False(t, f.IsZero(), "un texto inválido no es una fecha nula")
	assert.Equal(t, "not-a-date", f.String())
}

func TestParse_CalendarioImposible(t *testing.T) {
	f := fecha.Parse("2024-02-30")
	assert.False(t, f.Valid, "30 de febrero no existe")
}

func TestParse_VacioEsNulo(t *testing.T) {
	assert.True(t, fecha.Parse("").IsZero())
	assert.True(t, fecha.Parse("   ").IsZero())
}

func TestAddDays_OffsetFijo(t *testing.T) {
	assert.Equal(t, "2024-01-31", fecha.MustParse("2024-01-01").AddDays(30).String())
	assert.Equal(t, "2024-03-01", fecha.MustParse("2024-01-31").AddDays(30).String(), "2024 es bisiesto")
	assert.Equal(t, "2025-01-14", fecha.MustParse("2024-12-15").AddDays(30).String())
}

func TestBefore_SoloConFechasValidas(t *testing.T) {
	hoy := fecha.MustParse("2024-06-15")
	assert.True(t, fecha.MustParse("2024-06-14").Before(hoy))
	assert.False(t, hoy.Before(hoy))
	assert.False(t, fecha.Parse("basura").Before(hoy))
	assert.False(t, fecha.Fecha{}.Before(hoy))
}

func TestValue_NuloYTexto(t *testing.T) {
	v, err := fecha.Fecha{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = fecha.MustParse("2024-01-01").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", v)

	v, err = fecha.Parse("31/12/2023").Value()
	require.NoError(t, err)
	assert.Equal(t, "31/12/2023", v, "el texto inválido se devuelve tal cual")
}

func TestScan(t *testing.T) {
	var f fecha.Fecha
	require.NoError(t, f.Scan("2023-11-29"))
	assert.Equal(t, "2023-11-29", f.String())

	require.NoError(t, f.Scan([]byte("2023-11-30")))
	assert.Equal(t, "2023-11-30", f.String())

	require.NoError(t, f.Scan(time.Date(2023, 12, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-12-01", f.String())

	require.NoError(t, f.Scan(nil))
	assert.True(t, f.IsZero())

	assert.Error(t, f.Scan(42))
}

func TestJSON(t *testing.T) {
	type payload struct {
		Vence fecha.Fecha `json:"vence"`
		Baja  fecha.Fecha `json:"baja"`
	}
	b, err := json.Marshal(payload{Vence: fecha.MustParse("2024-01-31")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"vence":"2024-01-31","baja":null}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"vence":"2025-06-30","baja":null}`), &p))
	assert.Equal(t, "2025-06-30", p.Vence.String())
	assert.True(t, p.Baja.IsZero())
}
