package usecase

import (
	"context"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Si fn devuelve error se hace rollback de todo lo escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clientes repository.ClienteRepository,
		pagos repository.PagoRepository,
	) error) error
}

// PDFGenerator genera los documentos imprimibles del club.
type PDFGenerator interface {
	CredencialPDF(ctx context.Context, club string, cred dto.CredencialResponse) ([]byte, error)
	MorososPDF(ctx context.Context, club string, reporte dto.ReporteMorososResponse) ([]byte, error)
}
