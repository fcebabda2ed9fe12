package worker

// Background goroutine that periodically sweeps every compra and venta folio
// and queues an advisory reconciliation for each, catching drift introduced
// outside the API (manual SQL, restored backups).

import (
	"context"
	"time"

	"github.com/ElBerserker/apis-sucursal/internal/repository"

	"github.com/rs/zerolog/log"
)

const sweepInterval = 10 * time.Minute

// ReconciliacionCronConfig holds the dependencies for the sweep goroutine.
type ReconciliacionCronConfig struct {
	CompraRepo repository.CompraRepository
	VentaRepo  repository.VentaRepository
	Dispatcher *Dispatcher
}

// StartReconciliacionCron launches the sweep goroutine. It respects the
// context for graceful shutdown.
func StartReconciliacionCron(ctx context.Context, cfg ReconciliacionCronConfig) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		log.Info().Msg("reconciliacion_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("reconciliacion_cron: shutting down")
				return
			case <-ticker.C:
				sweep(ctx, cfg)
			}
		}
	}()
}

func sweep(ctx context.Context, cfg ReconciliacionCronConfig) {
	folios, err := cfg.CompraRepo.ListarFolios(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reconciliacion_cron: failed to list compra folios")
	} else {
		for _, folio := range folios {
			if err := cfg.Dispatcher.EnqueueReconciliacion(ctx, "compra", folio); err != nil {
				log.Error().Err(err).Str("folio_compra", folio).Msg("reconciliacion_cron: enqueue failed")
				return
			}
		}
	}

	folios, err = cfg.VentaRepo.ListarFolios(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reconciliacion_cron: failed to list venta folios")
		return
	}
	for _, folio := range folios {
		if err := cfg.Dispatcher.EnqueueReconciliacion(ctx, "venta", folio); err != nil {
			log.Error().Err(err).Str("folio_venta", folio).Msg("reconciliacion_cron: enqueue failed")
			return
		}
	}
}
