package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ElBerserker/apis-sucursal/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Minimal compra repo: one header, fixed detail sum.
type fakeCompraRepo struct {
	compra *model.Compra
	suma   decimal.Decimal

	// calls observed by the test
	sumas int
}

func (r *fakeCompraRepo) Crear(_ context.Context, _ *model.Compra) error   { return nil }
func (r *fakeCompraRepo) Listar(_ context.Context) ([]model.Compra, error) { return nil, nil }
func (r *fakeCompraRepo) Actualizar(_ context.Context, _ *model.Compra) error {
	return nil
}
func (r *fakeCompraRepo) Eliminar(_ context.Context, _ string) error { return nil }
func (r *fakeCompraRepo) ListarDetalles(_ context.Context, _ string) ([]model.DetalleCompra, error) {
	return nil, nil
}
func (r *fakeCompraRepo) ListarFolios(_ context.Context) ([]string, error) { return nil, nil }

func (r *fakeCompraRepo) ObtenerPorFolio(_ context.Context, folio string) (*model.Compra, error) {
	if r.compra == nil || r.compra.FolioCompra != folio {
		return nil, gorm.ErrRecordNotFound
	}
	return r.compra, nil
}

func (r *fakeCompraRepo) SumarDetalles(_ context.Context, _ string) (decimal.Decimal, error) {
	r.sumas++
	return r.suma, nil
}

type fakeVentaRepo struct{}

func (r *fakeVentaRepo) Crear(_ context.Context, _ *model.Venta) error      { return nil }
func (r *fakeVentaRepo) Listar(_ context.Context) ([]model.Venta, error)    { return nil, nil }
func (r *fakeVentaRepo) Actualizar(_ context.Context, _ *model.Venta) error { return nil }
func (r *fakeVentaRepo) Eliminar(_ context.Context, _ string) error         { return nil }
func (r *fakeVentaRepo) ListarDetalles(_ context.Context, _ string) ([]model.DetalleVenta, error) {
	return nil, nil
}
func (r *fakeVentaRepo) ListarFolios(_ context.Context) ([]string, error) { return nil, nil }
func (r *fakeVentaRepo) ObtenerPorFolio(_ context.Context, _ string) (*model.Venta, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeVentaRepo) SumarDetalles(_ context.Context, _ string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func payload(t *testing.T, p ReconciliacionJobPayload) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(p)
	assert.NoError(t, err)
	return raw
}

func TestReconciliacionWorker_CompraExistente_SumaVerificada(t *testing.T) {
	repo := &fakeCompraRepo{
		compra: &model.Compra{FolioCompra: "C-001", TotalCompra: decimal.NewFromInt(100)},
		suma:   decimal.NewFromInt(90), // drift: logged, never corrected
	}
	w := NewReconciliacionWorker(repo, &fakeVentaRepo{})

	w.Process(context.Background(), payload(t, ReconciliacionJobPayload{Tipo: "compra", Folio: "C-001"}))

	assert.Equal(t, 1, repo.sumas)
	// the stored total stays untouched
	assert.True(t, repo.compra.TotalCompra.Equal(decimal.NewFromInt(100)))
}

func TestReconciliacionWorker_CompraBorrada_NoFalla(t *testing.T) {
	repo := &fakeCompraRepo{}
	w := NewReconciliacionWorker(repo, &fakeVentaRepo{})

	// the header vanished between enqueue and processing
	w.Process(context.Background(), payload(t, ReconciliacionJobPayload{Tipo: "compra", Folio: "C-404"}))

	assert.Equal(t, 0, repo.sumas)
}

func TestReconciliacionWorker_TipoDesconocido_NoFalla(t *testing.T) {
	w := NewReconciliacionWorker(&fakeCompraRepo{}, &fakeVentaRepo{})

	w.Process(context.Background(), payload(t, ReconciliacionJobPayload{Tipo: "traspaso", Folio: "X-1"}))
}

func TestReconciliacionWorker_PayloadCorrupto_NoFalla(t *testing.T) {
	w := NewReconciliacionWorker(&fakeCompraRepo{}, &fakeVentaRepo{})

	w.Process(context.Background(), json.RawMessage(`{rota`))
}
