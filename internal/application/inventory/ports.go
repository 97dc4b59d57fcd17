package inventory

import (
	"context"

	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de stock atado a esa tx. Lo usa SetOpeningStock, cuyo cálculo de
// delta es leer-calcular-escribir sobre una fila y necesita el bloqueo
// SELECT FOR UPDATE para ser atómico. Las demás operaciones del motor no pasan
// por aquí: su consistencia se logra con primitivas atómicas más compensación.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}
