package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/club-deportivo-api/internal/domain"
	"github.com/jhoicas/club-deportivo-api/internal/domain/entity"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func setupMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet(), "todas las sentencias esperadas deben ejecutarse")
		sqlxDB.Close()
	})
	return sqlxDB, mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

var clienteCols = []string{"id", "dni", "nombre", "apellido", "fecha_nacimiento", "direccion", "telefono", "apto_fisico", "asociarse", "fecha_alta"}

func nuevoCliente(asociarse bool) *entity.Cliente {
	return &entity.Cliente{
		DNI:             30111222,
		Nombre:          "Ana",
		Apellido:        "Gómez",
		FechaNacimiento: fecha.MustParse("1990-03-10"),
		Direccion:       "Calle 1",
		Telefono:        "555-0101",
		AptoFisico:      true,
		Asociarse:       asociarse,
		FechaAlta:       fecha.MustParse("2024-06-15"),
	}
}

func expectInsertCliente(mock sqlmock.Sqlmock) *sqlmock.ExpectedQuery {
	return mock.ExpectQuery(q("INSERT INTO clientes")).
		WithArgs(int64(30111222), "Ana", "Gómez", "1990-03-10", "Calle 1", "555-0101", true, sqlmock.AnyArg(), "2024-06-15")
}

// ──────────────────────────────────────────────────────────────────────────────
// ClienteRepo.Create: alta atómica de cliente + subtipo
// ──────────────────────────────────────────────────────────────────────────────

func TestClienteRepo_Create_SocioEnUnaTransaccion(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClienteRepository(db)

	mock.ExpectBegin()
	expectInsertCliente(mock).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectExec(q("INSERT INTO socios")).
		WithArgs(int64(10), "2024-06-15", "2024-07-15", int64(0), false, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c := nuevoCliente(true)
	socio := &entity.Socio{
		FechaInscripcion:      fecha.MustParse("2024-06-15"),
		FechaVencimientoCuota: fecha.MustParse("2024-07-15"),
	}
	id, err := repo.Create(context.Background(), c, socio, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	assert.Equal(t, int64(10), c.ID)
	assert.Equal(t, int64(10), socio.ID, "el socio comparte la clave del cliente")
}

func TestClienteRepo_Create_NoSocio(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClienteRepository(db)

	mock.ExpectBegin()
	expectInsertCliente(mock).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(q("INSERT INTO no_socios")).
		WithArgs(int64(11), nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	noSocio := &entity.NoSocio{}
	id, err := repo.Create(context.Background(), nuevoCliente(false), nil, noSocio)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, int64(11), noSocio.ID)
}

func TestClienteRepo_Create_FalloEnSubtipoRevierteTodo(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClienteRepository(db)

	mock.ExpectBegin()
	expectInsertCliente(mock).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(q("INSERT INTO socios")).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	c := nuevoCliente(true)
	id, err := repo.Create(context.Background(), c, &entity.Socio{}, nil)
	require.Error(t, err)
	assert.Equal(t, entity.IDInvalido, id)
	assert.Zero(t, c.ID, "sin commit el cliente no recibe id")
}

func TestClienteRepo_Create_DNIDuplicado(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewClienteRepository(db)

	mock.ExpectBegin()
	expectInsertCliente(mock).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "clientes_dni_key"})
	mock.ExpectRollback()

	id, err := repo.Create(context.Background(), nuevoCliente(true), &entity.Socio{}, nil)
	assert.Equal(t, entity.IDInvalido, id)
	assert.True(t, errors.Is(err, domain.ErrDuplicate), "un DNI repetido debe mapearse a ErrDuplicate")
}

func TestClienteRepo_Create_DentroDeTxExistenteNoHaceCommit(t *testing.T) {
	db, mock := setupMock(t)

	mock.ExpectBegin()
	expectInsertCliente(mock).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(13)))
	mock.ExpectExec(q("INSERT INTO no_socios")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)
	id, err := NewClienteRepository(tx).Create(context.Background(), nuevoCliente(false), nil, &entity.NoSocio{})
	require.NoError(t, err)
	assert.Equal(t, int64(13), id)
	require.NoError(t, tx.Commit())
}

// ──────────────────────────────────────────────────────────────────────────────
// ClienteRepo: lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestClienteRepo_GetByID_NoEncontrado(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectQuery(q("FROM clientes WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(clienteCols))

	c, err := NewClienteRepository(db).GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, c, "la ausencia se informa con nil, no con error")
}

func TestClienteRepo_GetByDNI(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectQuery(q("FROM clientes WHERE dni = $1")).
		WithArgs(int64(30111222)).
		WillReturnRows(sqlmock.NewRows(clienteCols).
			AddRow(int64(1), int64(30111222), "Ana", "Gómez", "1990-03-10", "Calle 1", "555", true, true, "2024-06-15"))

	c, err := NewClienteRepository(db).GetByDNI(context.Background(), 30111222)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Gómez, Ana", c.NombreCompleto())
	assert.Equal(t, "1990-03-10", c.FechaNacimiento.String())
}

func TestClienteRepo_List_OrdenadoPorApellido(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectQuery(q("FROM clientes ORDER BY apellido, nombre, id")).
		WillReturnRows(sqlmock.NewRows(clienteCols).
			AddRow(int64(2), int64(2), "Luis", "Álvarez", nil, "", "", false, false, "2024-01-01").
			AddRow(int64(1), int64(1), "Ana", "Gómez", nil, "", "", false, true, "2024-01-01"))

	list, err := NewClienteRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Álvarez", list[0].Apellido)
	assert.True(t, list[0].FechaNacimiento.IsZero())
}

func TestClienteRepo_GetSocio_NoSocioDevuelveNil(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectQuery(q("FROM socios WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fecha_inscripcion", "fecha_vencimiento_cuota", "numero_carnet", "carnet_entregado", "fecha_baja"}))

	s, err := NewClienteRepository(db).GetSocio(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestClienteRepo_UpdateVencimientoSocio(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectExec(q("UPDATE socios SET fecha_vencimiento_cuota = $2 WHERE id = $1")).
		WithArgs(int64(4), "2024-01-31").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := NewClienteRepository(db).UpdateVencimientoSocio(context.Background(), 4, fecha.MustParse("2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestClienteRepo_Update_DNIDuplicadoNoAfectaFilas(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectExec(q("UPDATE clientes SET")).WillReturnError(&pgconn.PgError{Code: "23505"})

	c := nuevoCliente(true)
	c.ID = 3
	n, err := NewClienteRepository(db).Update(context.Background(), c)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// ClienteRepo.ListMorosos
// ──────────────────────────────────────────────────────────────────────────────

func TestClienteRepo_ListMorosos_UnSoloJoinYFiltroComun(t *testing.T) {
	db, mock := setupMock(t)
	cols := append(append([]string{}, clienteCols...), "fecha_vencimiento_cuota")
	mock.ExpectQuery(q(listMorososQuery)).
		WithArgs("2024-06-15").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(7), int64(7), "Eva", "Acosta", nil, "", "", true, true, "2024-01-01", "2024-06-14").
			AddRow(int64(8), int64(8), "Raúl", "Benítez", nil, "", "", true, true, "2024-01-01", "2024-13-40").
			AddRow(int64(9), int64(9), "Sol", "Castro", nil, "", "", true, true, "2024-01-01", "2023-12-31"))

	list, err := NewClienteRepository(db).ListMorosos(context.Background(), fecha.MustParse("2024-06-15"))
	require.NoError(t, err)
	require.Len(t, list, 2, "una fecha con formato correcto pero imposible no es morosa")
	assert.Equal(t, "Acosta", list[0].Apellido)
	assert.Equal(t, "Castro", list[1].Apellido)
	assert.Equal(t, "2023-12-31", list[1].FechaVencimientoCuota.String())
}

func TestListMorososQuery_FiltraBajaYOrdena(t *testing.T) {
	assert.Contains(t, listMorososQuery, "JOIN socios")
	assert.Contains(t, listMorososQuery, "s.fecha_baja IS NULL")
	assert.Contains(t, listMorososQuery, "s.fecha_vencimiento_cuota < $1")
	assert.Contains(t, listMorososQuery, "ORDER BY c.apellido")
}

// ──────────────────────────────────────────────────────────────────────────────
// ActividadRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestActividadRepo_CreateYList(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewActividadRepository(db)

	mock.ExpectQuery(q("INSERT INTO actividades (nombre, costo) VALUES ($1, $2) RETURNING id")).
		WithArgs("Natación", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	a := &entity.Actividad{Nombre: "Natación", Costo: decimal.RequireFromString("3500.00")}
	id, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	mock.ExpectQuery(q("FROM actividades ORDER BY nombre, id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "costo"}).
			AddRow(int64(2), "Boxeo", "4000.00").
			AddRow(int64(1), "Natación", "3500.00"))
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Boxeo", list[0].Nombre)
	assert.True(t, list[1].Costo.Equal(decimal.RequireFromString("3500")))
}

func TestActividadRepo_Create_FalloDevuelveCentinela(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectQuery(q("INSERT INTO actividades")).WillReturnError(errors.New("conexión perdida"))

	id, err := NewActividadRepository(db).Create(context.Background(), &entity.Actividad{Nombre: "Yoga"})
	assert.Error(t, err)
	assert.Equal(t, entity.IDInvalido, id)
}

func TestActividadRepo_Delete_ConPagosRegistrados(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectExec(q("DELETE FROM actividades WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	n, err := NewActividadRepository(db).Delete(context.Background(), 3)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, domain.ErrActividadEnUso)
}

func TestActividadRepo_UpdateYDelete_FilasAfectadas(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewActividadRepository(db)

	mock.ExpectExec(q("UPDATE actividades SET nombre = $2, costo = $3 WHERE id = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	n, err := repo.Update(context.Background(), &entity.Actividad{ID: 404, Nombre: "X"})
	require.NoError(t, err)
	assert.Zero(t, n, "id inexistente no afecta filas")

	mock.ExpectExec(q("DELETE FROM actividades")).WillReturnResult(sqlmock.NewResult(0, 1))
	n, err = repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

// ──────────────────────────────────────────────────────────────────────────────
// PagoRepo
// ──────────────────────────────────────────────────────────────────────────────

var cuotaCols = []string{"id", "id_socio", "fecha_pago", "monto", "medio_pago", "cantidad_cuotas", "descuento", "monto_total", "fecha_vencimiento", "comprobante"}

func TestPagoRepo_GetUltimaCuota(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectQuery(q("FROM cuotas WHERE id_socio = $1 ORDER BY fecha_pago DESC, id DESC LIMIT 1")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(cuotaCols).
			AddRow(int64(20), int64(4), "2024-01-01", "5000.00", "EFECTIVO", int64(1), "0.00", "5000.00", "2024-01-31", nil))

	c, err := NewPagoRepository(db).GetUltimaCuota(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "2024-01-31", c.FechaVencimiento.String())
	assert.False(t, c.Comprobante.Valid)
}

func TestPagoRepo_GetUltimaCuota_SinPagos(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectQuery(q("FROM cuotas")).WillReturnRows(sqlmock.NewRows(cuotaCols))

	c, err := NewPagoRepository(db).GetUltimaCuota(context.Background(), 4)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestPagoRepo_CreateRegistroActividad_YListado(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPagoRepository(db)

	mock.ExpectQuery(q("INSERT INTO registros_actividad")).
		WithArgs(int64(11), int64(2), "2024-06-15", sqlmock.AnyArg(), "TARJETA", "2024-06-15").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(30)))
	ra := &entity.RegistroActividad{
		IDCliente: 11, IDActividad: 2,
		FechaPago: fecha.MustParse("2024-06-15"), FechaExpiracion: fecha.MustParse("2024-06-15"),
		Monto: decimal.RequireFromString("4000"), MedioPago: "TARJETA",
	}
	id, err := repo.CreateRegistroActividad(context.Background(), ra)
	require.NoError(t, err)
	assert.Equal(t, int64(30), id)

	mock.ExpectQuery(q("FROM registros_actividad WHERE id_cliente = $1 ORDER BY fecha_pago DESC, id DESC")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_cliente", "id_actividad", "fecha_pago", "monto", "medio_pago", "fecha_expiracion"}).
			AddRow(int64(30), int64(11), int64(2), "2024-06-15", "4000.00", "TARJETA", "2024-06-15"))
	list, err := repo.ListRegistrosActividad(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Monto.Equal(decimal.NewFromInt(4000)))
}

func TestPagoRepo_CreateCuota_SocioInexistente(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectQuery(q("INSERT INTO cuotas")).WillReturnError(&pgconn.PgError{Code: "23503"})

	id, err := NewPagoRepository(db).CreateCuota(context.Background(), &entity.Cuota{IDSocio: 77})
	assert.Equal(t, entity.IDInvalido, id)
	assert.ErrorIs(t, err, domain.ErrReferenciaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_CommitCuotaYVencimiento(t *testing.T) {
	db, mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO cuotas")).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec(q("UPDATE socios SET fecha_vencimiento_cuota")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTxRunner(db).Run(context.Background(), func(clientes repository.ClienteRepository, pagos repository.PagoRepository) error {
		if _, err := pagos.CreateCuota(context.Background(), &entity.Cuota{IDSocio: 4}); err != nil {
			return err
		}
		_, err := clientes.UpdateVencimientoSocio(context.Background(), 4, fecha.MustParse("2024-01-31"))
		return err
	})
	require.NoError(t, err)
}

func TestTxRunner_ErrorHaceRollback(t *testing.T) {
	db, mock := setupMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := NewTxRunner(db).Run(context.Background(), func(repository.ClienteRepository, repository.PagoRepository) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
