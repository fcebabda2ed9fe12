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

type stubVentaRepo struct {
	rows     map[string]*model.Venta
	detalles []model.DetalleVenta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{rows: make(map[string]*model.Venta)}
}

func (r *stubVentaRepo) Crear(_ context.Context, v *model.Venta) error {
	if _, ok := r.rows[v.FolioVenta]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.rows[v.FolioVenta] = v
	return nil
}

func (r *stubVentaRepo) Listar(_ context.Context) ([]model.Venta, error) {
	list := make([]model.Venta, 0, len(r.rows))
	for _, v := range r.rows {
		list = append(list, *v)
	}
	return list, nil
}

func (r *stubVentaRepo) ObtenerPorFolio(_ context.Context, folio string) (*model.Venta, error) {
	v, ok := r.rows[folio]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *v
	return &copia, nil
}

func (r *stubVentaRepo) Actualizar(_ context.Context, v *model.Venta) error {
	if _, ok := r.rows[v.FolioVenta]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[v.FolioVenta] = v
	return nil
}

func (r *stubVentaRepo) Eliminar(_ context.Context, folio string) error {
	if _, ok := r.rows[folio]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, folio)
	return nil
}

func (r *stubVentaRepo) ListarDetalles(_ context.Context, folio string) ([]model.DetalleVenta, error) {
	list := make([]model.DetalleVenta, 0)
	for _, d := range r.detalles {
		if d.FolioVenta != nil && *d.FolioVenta == folio {
			list = append(list, d)
		}
	}
	return list, nil
}

func (r *stubVentaRepo) SumarDetalles(ctx context.Context, folio string) (decimal.Decimal, error) {
	detalles, _ := r.ListarDetalles(ctx, folio)
	suma := decimal.Zero
	for _, d := range detalles {
		suma = suma.Add(d.PrecioVenta.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	return suma, nil
}

func (r *stubVentaRepo) ListarFolios(_ context.Context) ([]string, error) {
	folios := make([]string, 0, len(r.rows))
	for folio := range r.rows {
		folios = append(folios, folio)
	}
	return folios, nil
}

type stubDetalleVentaRepo struct {
	rows   map[int]*model.DetalleVenta
	nextID int
}

func newStubDetalleVentaRepo() *stubDetalleVentaRepo {
	return &stubDetalleVentaRepo{rows: make(map[int]*model.DetalleVenta), nextID: 1}
}

func (r *stubDetalleVentaRepo) Crear(_ context.Context, d *model.DetalleVenta) error {
	d.IDDetalleVenta = r.nextID
	r.nextID++
	r.rows[d.IDDetalleVenta] = d
	return nil
}

func (r *stubDetalleVentaRepo) Listar(_ context.Context) ([]model.DetalleVenta, error) {
	list := make([]model.DetalleVenta, 0, len(r.rows))
	for _, d := range r.rows {
		list = append(list, *d)
	}
	return list, nil
}

func (r *stubDetalleVentaRepo) ObtenerPorID(_ context.Context, id int) (*model.DetalleVenta, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *d
	return &copia, nil
}

func (r *stubDetalleVentaRepo) Actualizar(_ context.Context, d *model.DetalleVenta) error {
	if _, ok := r.rows[d.IDDetalleVenta]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[d.IDDetalleVenta] = d
	return nil
}

func (r *stubDetalleVentaRepo) Eliminar(_ context.Context, id int) error {
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func crearVentaReq(folio string, total decimal.Decimal) dto.CrearVentaRequest {
	return dto.CrearVentaRequest{
		FolioVenta:  folio,
		FolioSesion: "S-001",
		ClvCliente:  "CL-01",
		FechaVenta:  "2026-08-30",
		TotalVenta:  &total,
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestVenta_Crear_EncolaReconciliacion(t *testing.T) {
	disp := &recorderDispatcher{}
	svc := NewVentaService(newStubVentaRepo(), disp, t.TempDir())

	creada, err := svc.Crear(context.Background(), crearVentaReq("V-001", decimal.NewFromFloat(88.00)))
	assert.NoError(t, err)
	assert.Equal(t, "V-001", creada.FolioVenta)
	assert.Equal(t, "2026-08-30", creada.FechaVenta)
	assert.Equal(t, []string{"venta:V-001"}, disp.reconciliaciones)
}

func TestVenta_CrearDuplicada_Conflict(t *testing.T) {
	svc := NewVentaService(newStubVentaRepo(), &recorderDispatcher{}, t.TempDir())

	_, err := svc.Crear(context.Background(), crearVentaReq("V-002", decimal.NewFromInt(10)))
	assert.NoError(t, err)
	_, err = svc.Crear(context.Background(), crearVentaReq("V-002", decimal.NewFromInt(10)))
	assert.Equal(t, 409, apierror.Status(err))
}

func TestVenta_ActualizacionParcial_PreservaCliente(t *testing.T) {
	svc := NewVentaService(newStubVentaRepo(), &recorderDispatcher{}, t.TempDir())
	_, err := svc.Crear(context.Background(), crearVentaReq("V-003", decimal.NewFromInt(10)))
	assert.NoError(t, err)

	nuevoTotal := decimal.NewFromInt(42)
	act, err := svc.Actualizar(context.Background(), "V-003",
		dto.ActualizarVentaRequest{TotalVenta: &nuevoTotal})
	assert.NoError(t, err)
	assert.True(t, act.TotalVenta.Equal(nuevoTotal))
	assert.Equal(t, "CL-01", act.ClvCliente)
}

func TestVenta_EliminarInexistente_NotFound(t *testing.T) {
	svc := NewVentaService(newStubVentaRepo(), &recorderDispatcher{}, t.TempDir())

	_, err := svc.Eliminar(context.Background(), "V-404")
	assert.EqualError(t, err, "Venta no encontrada")
	assert.Equal(t, 404, apierror.Status(err))
}

func TestVenta_Reporte_GeneraPDF(t *testing.T) {
	repo := newStubVentaRepo()
	svc := NewVentaService(repo, &recorderDispatcher{}, t.TempDir())
	_, err := svc.Crear(context.Background(), crearVentaReq("V-005", decimal.NewFromInt(31)))
	assert.NoError(t, err)

	folio := "V-005"
	repo.detalles = []model.DetalleVenta{
		{FolioVenta: &folio, CodigoBarras: "7501000111", Cantidad: 2, PrecioVenta: decimal.NewFromFloat(15.50)},
	}

	path, err := svc.Reporte(context.Background(), "V-005")
	assert.NoError(t, err)
	assert.FileExists(t, path)
}

func TestDetalleVenta_Reparentar_ReconciliaAmbosFolios(t *testing.T) {
	disp := &recorderDispatcher{}
	svc := NewDetalleVentaService(newStubDetalleVentaRepo(), disp)

	creado, err := svc.Crear(context.Background(), dto.CrearDetalleVentaRequest{
		FolioVenta:   "V-010",
		CodigoBarras: "7501000111",
		Cantidad:     ptr(1),
		PrecioVenta:  ptr(decimal.NewFromInt(20)),
	})
	assert.NoError(t, err)

	nuevoFolio := "V-011"
	_, err = svc.Actualizar(context.Background(), creado.IDDetalleVenta,
		dto.ActualizarDetalleVentaRequest{FolioVenta: &nuevoFolio})
	assert.NoError(t, err)
	assert.Equal(t, []string{"venta:V-010", "venta:V-011", "venta:V-010"}, disp.reconciliaciones)
}

func TestDetalleVenta_Eliminar_DevuelveFilaYReconcilia(t *testing.T) {
	disp := &recorderDispatcher{}
	svc := NewDetalleVentaService(newStubDetalleVentaRepo(), disp)

	creado, err := svc.Crear(context.Background(), dto.CrearDetalleVentaRequest{
		FolioVenta:   "V-012",
		CodigoBarras: "7501000112",
		Cantidad:     ptr(4),
		PrecioVenta:  ptr(decimal.NewFromFloat(7.25)),
	})
	assert.NoError(t, err)
	disp.reconciliaciones = nil

	borrado, err := svc.Eliminar(context.Background(), creado.IDDetalleVenta)
	assert.NoError(t, err)
	assert.Equal(t, 4, borrado.Cantidad)
	assert.Equal(t, []string{"venta:V-012"}, disp.reconciliaciones)

	_, err = svc.Obtener(context.Background(), creado.IDDetalleVenta)
	assert.EqualError(t, err, "Detalle de venta no encontrado")
}
