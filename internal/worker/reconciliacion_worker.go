package worker

// Advisory check that the stored total of a compra or venta header matches
// the sum of its detail rows. The total is caller-authoritative, so a drift
// is only reported, never corrected.

import (
	"context"
	"encoding/json"

	"github.com/ElBerserker/apis-sucursal/internal/repository"

	"github.com/rs/zerolog/log"
)

// ReconciliacionJobPayload is the job envelope sent to QueueReconciliacion.
type ReconciliacionJobPayload struct {
	Tipo  string `json:"tipo"` // "compra" | "venta"
	Folio string `json:"folio"`
}

// ReconciliacionWorker processes jobs from QueueReconciliacion.
type ReconciliacionWorker struct {
	compraRepo repository.CompraRepository
	ventaRepo  repository.VentaRepository
}

func NewReconciliacionWorker(compraRepo repository.CompraRepository, ventaRepo repository.VentaRepository) *ReconciliacionWorker {
	return &ReconciliacionWorker{compraRepo: compraRepo, ventaRepo: ventaRepo}
}

func (w *ReconciliacionWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReconciliacionJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reconciliacion_worker: invalid payload")
		return
	}

	switch payload.Tipo {
	case "compra":
		w.checkCompra(ctx, payload.Folio)
	case "venta":
		w.checkVenta(ctx, payload.Folio)
	default:
		log.Error().Str("tipo", payload.Tipo).Msg("reconciliacion_worker: unknown tipo")
	}
}

func (w *ReconciliacionWorker) checkCompra(ctx context.Context, folio string) {
	c, err := w.compraRepo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		// Header may have been deleted since the job was queued.
		log.Debug().Str("folio_compra", folio).Err(err).Msg("reconciliacion_worker: compra no longer exists")
		return
	}
	suma, err := w.compraRepo.SumarDetalles(ctx, folio)
	if err != nil {
		log.Error().Err(err).Str("folio_compra", folio).Msg("reconciliacion_worker: sum failed")
		return
	}
	if !suma.Equal(c.TotalCompra) {
		log.Warn().
			Str("folio_compra", folio).
			Str("total_registrado", c.TotalCompra.StringFixed(2)).
			Str("suma_partidas", suma.StringFixed(2)).
			Msg("reconciliacion_worker: total de compra no coincide con sus partidas")
		return
	}
	log.Debug().Str("folio_compra", folio).Msg("reconciliacion_worker: compra cuadra")
}

func (w *ReconciliacionWorker) checkVenta(ctx context.Context, folio string) {
	v, err := w.ventaRepo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		log.Debug().Str("folio_venta", folio).Err(err).Msg("reconciliacion_worker: venta no longer exists")
		return
	}
	suma, err := w.ventaRepo.SumarDetalles(ctx, folio)
	if err != nil {
		log.Error().Err(err).Str("folio_venta", folio).Msg("reconciliacion_worker: sum failed")
		return
	}
	if !suma.Equal(v.TotalVenta) {
		log.Warn().
			Str("folio_venta", folio).
			Str("total_registrado", v.TotalVenta.StringFixed(2)).
			Str("suma_partidas", suma.StringFixed(2)).
			Msg("reconciliacion_worker: total de venta no coincide con sus partidas")
		return
	}
	log.Debug().Str("folio_venta", folio).Msg("reconciliacion_worker: venta cuadra")
}
