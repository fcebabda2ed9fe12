package worker

// Processes low-stock alert jobs from QueueAlertas. Mails the configured
// recipient through the SMTP circuit breaker; jobs that exhaust their
// retries land in the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ElBerserker/apis-sucursal/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxAlertaAttempts = 3

// AlertaStockJobPayload is the job envelope sent to QueueAlertas.
type AlertaStockJobPayload struct {
	CodigoBarras   string `json:"codigo_barras"`
	Nombre         string `json:"nombre"`
	CantidadActual int    `json:"cantidad_actual"`
	CantidadMinima int    `json:"cantidad_minima"`
}

// AlertaWorker processes low-stock alerts from QueueAlertas.
type AlertaWorker struct {
	mailer     *infra.Mailer
	cb         *infra.CircuitBreaker
	rdb        *redis.Client
	alertEmail string
}

func NewAlertaWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, rdb *redis.Client, alertEmail string) *AlertaWorker {
	return &AlertaWorker{mailer: mailer, cb: cb, rdb: rdb, alertEmail: alertEmail}
}

func (w *AlertaWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload AlertaStockJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return
	}
	if w.alertEmail == "" {
		log.Warn().Msg("alerta_worker: no ALERT_EMAIL configured, skipping")
		return
	}

	subject := fmt.Sprintf("Stock bajo: %s", payload.Nombre)
	body := fmt.Sprintf(
		"El producto %q (código %s) tiene existencia %d, por debajo del mínimo %d.",
		payload.Nombre, payload.CodigoBarras, payload.CantidadActual, payload.CantidadMinima,
	)

	err := withRetry(ctx, maxAlertaAttempts, func(attempt int) error {
		return w.cb.Execute(func() error {
			return w.mailer.Send(w.alertEmail, subject, body, "")
		})
	})
	if err != nil {
		SendToDLQ(ctx, w.rdb, QueueAlertas, "alerta_stock", raw,
			fmt.Sprintf("send failed after %d attempts: %v", maxAlertaAttempts, err),
			maxAlertaAttempts)
		return
	}
	log.Info().
		Str("codigo_barras", payload.CodigoBarras).
		Int("cantidad_actual", payload.CantidadActual).
		Msg("alerta_worker: alerta de stock enviada")
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
