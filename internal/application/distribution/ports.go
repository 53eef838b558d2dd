package distribution

import (
	"context"

	"github.com/jhoicas/Dotacion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El chequeo de stock y la doble escritura
// (Distribution + asiento pareado) comparten la misma transacción: el par
// nunca queda a medias y el bloqueo de la fila del ítem serializa el
// check-then-act por ítem.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		ledgerRepo repository.LedgerRepository,
		distRepo repository.DistributionRepository,
	) error) error
}
