package service

import "context"

// Dispatcher enqueues advisory background jobs. Implemented by the worker
// package over Redis; stubbed in tests. Enqueue failures are logged, never
// surfaced to the API caller.
type Dispatcher interface {
	// EnqueueAlertaStock schedules a low-stock alert email for a product.
	EnqueueAlertaStock(ctx context.Context, codigoBarras, nombre string, actual, minima int) error
	// EnqueueReconciliacion schedules a header-total vs detail-sum check.
	// tipo is "compra" or "venta"; folio identifies the header.
	EnqueueReconciliacion(ctx context.Context, tipo, folio string) error
}
