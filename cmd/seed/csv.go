package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

// filaCliente una fila del CSV de importación.
// Columnas: dni;nombre;apellido;fecha_nacimiento;direccion;telefono;asociarse;fecha_vencimiento_cuota
type filaCliente struct {
	Linea           int
	DNI             int64
	Nombre          string
	Apellido        string
	FechaNacimiento fecha.Fecha
	Direccion       string
	Telefono        string
	Asociarse       bool
	Vencimiento     fecha.Fecha
}

var columnasCSV = []string{"dni", "nombre", "apellido", "fecha_nacimiento", "direccion", "telefono", "asociarse", "fecha_vencimiento_cuota"}

// decoderPara devuelve el decoder de x/text para la codificación pedida (nil = UTF-8).
func decoderPara(nombre string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.ReplaceAll(nombre, "-", "")) {
	case "", "utf8":
		return nil, nil
	case "latin1", "iso88591":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", nombre)
	}
}

// leerClientesCSV decodifica r a UTF-8 y parsea las filas. La primera fila es el encabezado.
// Las filas inválidas se devuelven en errs sin cortar la importación.
func leerClientesCSV(r io.Reader, codificacion string, sep rune) (filas []filaCliente, errs []error, err error) {
	dec, err := decoderPara(codificacion)
	if err != nil {
		return nil, nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}

	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range columnasCSV[:3] {
		if _, ok := idx[c]; !ok {
			return nil, nil, fmt.Errorf("falta la columna %q", c)
		}
	}
	campo := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	linea := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		linea++
		if err != nil {
			errs = append(errs, fmt.Errorf("línea %d: %w", linea, err))
			continue
		}
		dni, err := strconv.ParseInt(campo(rec, "dni"), 10, 64)
		if err != nil || dni <= 0 {
			errs = append(errs, fmt.Errorf("línea %d: dni inválido %q", linea, campo(rec, "dni")))
			continue
		}
		f := filaCliente{
			Linea:           linea,
			DNI:             dni,
			Nombre:          campo(rec, "nombre"),
			Apellido:        campo(rec, "apellido"),
			FechaNacimiento: fecha.Parse(campo(rec, "fecha_nacimiento")),
			Direccion:       campo(rec, "direccion"),
			Telefono:        campo(rec, "telefono"),
			Asociarse:       esVerdadero(campo(rec, "asociarse")),
			Vencimiento:     fecha.Parse(campo(rec, "fecha_vencimiento_cuota")),
		}
		if f.Nombre == "" || f.Apellido == "" {
			errs = append(errs, fmt.Errorf("línea %d: nombre y apellido son requeridos", linea))
			continue
		}
		filas = append(filas, f)
	}
	return filas, errs, nil
}

func esVerdadero(s string) bool {
	switch strings.ToLower(s) {
	case "1", "si", "sí", "s", "true", "socio":
		return true
	}
	return false
}
