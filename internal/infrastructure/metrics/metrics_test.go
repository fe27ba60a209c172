package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/clientes", "200"))
	RecordHTTPRequest("GET", "/api/clientes", "200", 0.01)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/clientes", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordCuotaYClientes(t *testing.T) {
	before := testutil.ToFloat64(CuotasRegistradasTotal.WithLabelValues("EFECTIVO"))
	RecordCuota("EFECTIVO")
	assert.Equal(t, before+1, testutil.ToFloat64(CuotasRegistradasTotal.WithLabelValues("EFECTIVO")))

	beforeSocio := testutil.ToFloat64(ClientesCreadosTotal.WithLabelValues("SOCIO"))
	RecordClienteCreado("SOCIO")
	assert.Equal(t, beforeSocio+1, testutil.ToFloat64(ClientesCreadosTotal.WithLabelValues("SOCIO")))
}

func TestSetSociosMorosos(t *testing.T) {
	SetSociosMorosos(4)
	assert.Equal(t, float64(4), testutil.ToFloat64(SociosMorosos))
	SetSociosMorosos(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(SociosMorosos))
}
