package service

import (
	"context"
	"testing"

	"github.com/ElBerserker/apis-sucursal/internal/apierror"
	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	rows     map[string]*model.Compra
	detalles []model.DetalleCompra
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{rows: make(map[string]*model.Compra)}
}

func (r *stubCompraRepo) Crear(_ context.Context, c *model.Compra) error {
	if _, ok := r.rows[c.FolioCompra]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.rows[c.FolioCompra] = c
	return nil
}

func (r *stubCompraRepo) Listar(_ context.Context) ([]model.Compra, error) {
	list := make([]model.Compra, 0, len(r.rows))
	for _, c := range r.rows {
		list = append(list, *c)
	}
	return list, nil
}

func (r *stubCompraRepo) ObtenerPorFolio(_ context.Context, folio string) (*model.Compra, error) {
	c, ok := r.rows[folio]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *c
	return &copia, nil
}

func (r *stubCompraRepo) Actualizar(_ context.Context, c *model.Compra) error {
	if _, ok := r.rows[c.FolioCompra]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[c.FolioCompra] = c
	return nil
}

func (r *stubCompraRepo) Eliminar(_ context.Context, folio string) error {
	if _, ok := r.rows[folio]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, folio)
	return nil
}

func (r *stubCompraRepo) ListarDetalles(_ context.Context, folio string) ([]model.DetalleCompra, error) {
	list := make([]model.DetalleCompra, 0)
	for _, d := range r.detalles {
		if d.FolioCompra != nil && *d.FolioCompra == folio {
			list = append(list, d)
		}
	}
	return list, nil
}

func (r *stubCompraRepo) SumarDetalles(ctx context.Context, folio string) (decimal.Decimal, error) {
	detalles, _ := r.ListarDetalles(ctx, folio)
	suma := decimal.Zero
	for _, d := range detalles {
		suma = suma.Add(d.PrecioCompra.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	return suma, nil
}

func (r *stubCompraRepo) ListarFolios(_ context.Context) ([]string, error) {
	folios := make([]string, 0, len(r.rows))
	for folio := range r.rows {
		folios = append(folios, folio)
	}
	return folios, nil
}

type stubDetalleCompraRepo struct {
	rows   map[int]*model.DetalleCompra
	nextID int
}

func newStubDetalleCompraRepo() *stubDetalleCompraRepo {
	return &stubDetalleCompraRepo{rows: make(map[int]*model.DetalleCompra), nextID: 1}
}

func (r *stubDetalleCompraRepo) Crear(_ context.Context, d *model.DetalleCompra) error {
	d.IDDetalleCompra = r.nextID
	r.nextID++
	r.rows[d.IDDetalleCompra] = d
	return nil
}

func (r *stubDetalleCompraRepo) Listar(_ context.Context) ([]model.DetalleCompra, error) {
	list := make([]model.DetalleCompra, 0, len(r.rows))
	for _, d := range r.rows {
		list = append(list, *d)
	}
	return list, nil
}

func (r *stubDetalleCompraRepo) ObtenerPorID(_ context.Context, id int) (*model.DetalleCompra, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *d
	return &copia, nil
}

func (r *stubDetalleCompraRepo) Actualizar(_ context.Context, d *model.DetalleCompra) error {
	if _, ok := r.rows[d.IDDetalleCompra]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[d.IDDetalleCompra] = d
	return nil
}

func (r *stubDetalleCompraRepo) Eliminar(_ context.Context, id int) error {
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func crearCompraReq(folio string, total decimal.Decimal) dto.CrearCompraRequest {
	return dto.CrearCompraRequest{
		FolioCompra:  folio,
		FolioSesion:  "S-001",
		RFCProveedor: "PROV010101ABC",
		FechaCompra:  "2026-08-30",
		TotalCompra:  &total,
	}
}

// ── Tests: Compra ─────────────────────────────────────────────────────────────

func TestCompra_Crear_EncolaReconciliacion(t *testing.T) {
	disp := &recorderDispatcher{}
	svc := NewCompraService(newStubCompraRepo(), disp, t.TempDir())

	creada, err := svc.Crear(context.Background(), crearCompraReq("C-001", decimal.NewFromFloat(120.50)))
	assert.NoError(t, err)
	assert.Equal(t, "C-001", creada.FolioCompra)
	assert.Equal(t, []string{"compra:C-001"}, disp.reconciliaciones)
}

func TestCompra_Crear_TotalCeroEsValido(t *testing.T) {
	svc := NewCompraService(newStubCompraRepo(), &recorderDispatcher{}, t.TempDir())

	creada, err := svc.Crear(context.Background(), crearCompraReq("C-002", decimal.Zero))
	assert.NoError(t, err)
	assert.True(t, creada.TotalCompra.IsZero())
}

func TestCompra_Crear_FechaMalformada_Validation(t *testing.T) {
	svc := NewCompraService(newStubCompraRepo(), &recorderDispatcher{}, t.TempDir())

	req := crearCompraReq("C-003", decimal.NewFromInt(10))
	req.FechaCompra = "agosto 30"
	_, err := svc.Crear(context.Background(), req)
	assert.EqualError(t, err, "El campo fecha_compra debe tener formato YYYY-MM-DD")
	assert.Equal(t, 400, apierror.Status(err))
}

func TestCompra_Actualizar_EncolaReconciliacion(t *testing.T) {
	disp := &recorderDispatcher{}
	svc := NewCompraService(newStubCompraRepo(), disp, t.TempDir())
	_, err := svc.Crear(context.Background(), crearCompraReq("C-004", decimal.NewFromInt(100)))
	assert.NoError(t, err)

	nuevoTotal := decimal.NewFromInt(250)
	act, err := svc.Actualizar(context.Background(), "C-004",
		dto.ActualizarCompraRequest{TotalCompra: &nuevoTotal})
	assert.NoError(t, err)
	assert.True(t, act.TotalCompra.Equal(nuevoTotal))
	assert.Equal(t, []string{"compra:C-004", "compra:C-004"}, disp.reconciliaciones)
}

func TestCompra_Eliminar_DevuelveUltimoEstado(t *testing.T) {
	svc := NewCompraService(newStubCompraRepo(), &recorderDispatcher{}, t.TempDir())
	_, err := svc.Crear(context.Background(), crearCompraReq("C-005", decimal.NewFromInt(75)))
	assert.NoError(t, err)

	borrada, err := svc.Eliminar(context.Background(), "C-005")
	assert.NoError(t, err)
	assert.True(t, borrada.TotalCompra.Equal(decimal.NewFromInt(75)))

	_, err = svc.Obtener(context.Background(), "C-005")
	assert.EqualError(t, err, "Compra no encontrada")
}

func TestCompra_Reporte_GeneraPDF(t *testing.T) {
	repo := newStubCompraRepo()
	svc := NewCompraService(repo, &recorderDispatcher{}, t.TempDir())
	_, err := svc.Crear(context.Background(), crearCompraReq("C-006", decimal.NewFromInt(31)))
	assert.NoError(t, err)

	folio := "C-006"
	repo.detalles = []model.DetalleCompra{
		{FolioCompra: &folio, CodigoBarras: "7501000111", Cantidad: 2, PrecioCompra: decimal.NewFromFloat(15.50)},
	}

	path, err := svc.Reporte(context.Background(), "C-006")
	assert.NoError(t, err)
	assert.FileExists(t, path)
}

func TestCompra_Reporte_Inexistente_NotFound(t *testing.T) {
	svc := NewCompraService(newStubCompraRepo(), &recorderDispatcher{}, t.TempDir())

	_, err := svc.Reporte(context.Background(), "C-404")
	assert.Equal(t, 404, apierror.Status(err))
}

// ── Tests: DetalleCompra ──────────────────────────────────────────────────────

func TestDetalleCompra_Crear_EncolaReconciliacion(t *testing.T) {
	disp := &recorderDispatcher{}
	svc := NewDetalleCompraService(newStubDetalleCompraRepo(), disp)

	creado, err := svc.Crear(context.Background(), dto.CrearDetalleCompraRequest{
		FolioCompra:  "C-010",
		CodigoBarras: "7501000111",
		Cantidad:     ptr(3),
		PrecioCompra: ptr(decimal.NewFromFloat(9.99)),
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, creado.IDDetalleCompra)
	assert.Equal(t, []string{"compra:C-010"}, disp.reconciliaciones)
}

func TestDetalleCompra_Reparentar_ReconciliaAmbosFolios(t *testing.T) {
	disp := &recorderDispatcher{}
	svc := NewDetalleCompraService(newStubDetalleCompraRepo(), disp)

	creado, err := svc.Crear(context.Background(), dto.CrearDetalleCompraRequest{
		FolioCompra:  "C-011",
		CodigoBarras: "7501000111",
		Cantidad:     ptr(1),
		PrecioCompra: ptr(decimal.NewFromInt(20)),
	})
	assert.NoError(t, err)

	nuevoFolio := "C-012"
	_, err = svc.Actualizar(context.Background(), creado.IDDetalleCompra,
		dto.ActualizarDetalleCompraRequest{FolioCompra: &nuevoFolio})
	assert.NoError(t, err)
	// the old header's sum also shifted, so both get checked
	assert.Equal(t, []string{"compra:C-011", "compra:C-012", "compra:C-011"}, disp.reconciliaciones)
}

func TestDetalleCompra_Eliminar_EncolaReconciliacion(t *testing.T) {
	disp := &recorderDispatcher{}
	svc := NewDetalleCompraService(newStubDetalleCompraRepo(), disp)

	creado, err := svc.Crear(context.Background(), dto.CrearDetalleCompraRequest{
		FolioCompra:  "C-013",
		CodigoBarras: "7501000111",
		Cantidad:     ptr(2),
		PrecioCompra: ptr(decimal.NewFromInt(5)),
	})
	assert.NoError(t, err)
	disp.reconciliaciones = nil

	borrado, err := svc.Eliminar(context.Background(), creado.IDDetalleCompra)
	assert.NoError(t, err)
	assert.Equal(t, 2, borrado.Cantidad)
	assert.Equal(t, []string{"compra:C-013"}, disp.reconciliaciones)
}

func TestDetalleCompra_ObtenerInexistente_NotFound(t *testing.T) {
	svc := NewDetalleCompraService(newStubDetalleCompraRepo(), &recorderDispatcher{})

	_, err := svc.Obtener(context.Background(), 77)
	assert.EqualError(t, err, "Detalle de compra no encontrado")
	assert.Equal(t, 404, apierror.Status(err))
}
