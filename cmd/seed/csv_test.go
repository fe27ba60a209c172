package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestLeerClientesCSV_Latin1(t *testing.T) {
	utf8 := "dni;nombre;apellido;fecha_nacimiento;direccion;telefono;asociarse;fecha_vencimiento_cuota\n" +
		"11122233;Marta;Nuñez;1990-01-01;Calle Falsa 123;1155551234;no;\n" +
		"30111222;José;Acuña;;;;si;2025-06-30\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(utf8)
	require.NoError(t, err)

	filas, errs, err := leerClientesCSV(bytes.NewBufferString(latin1), "latin1", ';')
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, filas, 2)

	assert.Equal(t, "Nuñez", filas[0].Apellido)
	assert.False(t, filas[0].Asociarse)
	assert.Equal(t, "1990-01-01", filas[0].FechaNacimiento.String())

	assert.Equal(t, "José", filas[1].Nombre)
	assert.True(t, filas[1].Asociarse)
	assert.Equal(t, "2025-06-30", filas[1].Vencimiento.String())
	assert.Equal(t, 3, filas[1].Linea)
}

func TestLeerClientesCSV_FilasInvalidasNoCortan(t *testing.T) {
	in := "dni,nombre,apellido\nabc,Ana,Gomez\n22222222,,Perez\n33333333,Maria,Lopez\n"
	filas, errs, err := leerClientesCSV(strings.NewReader(in), "utf8", ',')
	require.NoError(t, err)
	assert.Len(t, errs, 2)
	require.Len(t, filas, 1)
	assert.Equal(t, int64(33333333), filas[0].DNI)
}

func TestLeerClientesCSV_EncabezadoIncompleto(t *testing.T) {
	_, _, err := leerClientesCSV(strings.NewReader("dni;nombre\n1;Ana\n"), "utf8", ';')
	assert.Error(t, err)
}

func TestDecoderPara(t *testing.T) {
	for _, n := range []string{"", "utf8", "UTF-8", "latin1", "ISO-8859-1", "windows-1252", "cp1252"} {
		_, err := decoderPara(n)
		assert.NoError(t, err, n)
	}
	_, err := decoderPara("ebcdic")
	assert.Error(t, err)
}
