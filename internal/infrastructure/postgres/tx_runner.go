package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/club-deportivo-api/internal/application/usecase"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db *sqlx.DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	clientes repository.ClienteRepository,
	pagos repository.PagoRepository,
) error) error {
	return withTx(ctx, r.db, func(tx Querier) error {
		return fn(NewClienteRepository(tx), NewPagoRepository(tx))
	})
}
