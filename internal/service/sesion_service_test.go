package service

import (
	"context"
	"sort"
	"testing"

	"github.com/ElBerserker/apis-sucursal/internal/apierror"
	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ── Stub ──────────────────────────────────────────────────────────────────────

type stubSesionRepo struct {
	rows map[string]*model.Sesion
}

func newStubSesionRepo() *stubSesionRepo {
	return &stubSesionRepo{rows: make(map[string]*model.Sesion)}
}

func (r *stubSesionRepo) Crear(_ context.Context, s *model.Sesion) error {
	if _, ok := r.rows[s.FolioSesion]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.rows[s.FolioSesion] = s
	return nil
}

func (r *stubSesionRepo) Listar(_ context.Context) ([]model.Sesion, error) {
	list := make([]model.Sesion, 0, len(r.rows))
	for _, s := range r.rows {
		list = append(list, *s)
	}
	return list, nil
}

func (r *stubSesionRepo) ObtenerPorFolio(_ context.Context, folio string) (*model.Sesion, error) {
	s, ok := r.rows[folio]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *s
	return &copia, nil
}

func (r *stubSesionRepo) Actualizar(_ context.Context, s *model.Sesion) error {
	if _, ok := r.rows[s.FolioSesion]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[s.FolioSesion] = s
	return nil
}

func (r *stubSesionRepo) Eliminar(_ context.Context, folio string) error {
	if _, ok := r.rows[folio]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, folio)
	return nil
}

func (r *stubSesionRepo) BuscarActivaPorUsuario(_ context.Context, clv string) (*model.Sesion, error) {
	folios := make([]string, 0, len(r.rows))
	for folio := range r.rows {
		folios = append(folios, folio)
	}
	sort.Strings(folios)
	for _, folio := range folios {
		s := r.rows[folio]
		if s.ClvUsuario != nil && *s.ClvUsuario == clv && s.Estado == model.EstadoSesionActiva {
			copia := *s
			return &copia, nil
		}
	}
	return nil, nil
}

func crearSesionReq(folio, clv, estado string) dto.CrearSesionRequest {
	return dto.CrearSesionRequest{
		FolioSesion: folio,
		ClvUsuario:  &clv,
		FechaInicio: "2026-08-30",
		FechaFinal:  "2026-08-31",
		Estado:      estado,
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestSesion_Crear_FechasComoTexto(t *testing.T) {
	svc := NewSesionService(newStubSesionRepo())

	creada, err := svc.Crear(context.Background(), crearSesionReq("S-001", "U-01", "activa"))
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-30", creada.FechaInicio)
	assert.Equal(t, "2026-08-31", creada.FechaFinal)
}

func TestSesion_Crear_FechaMalformada_Validation(t *testing.T) {
	svc := NewSesionService(newStubSesionRepo())

	req := crearSesionReq("S-002", "U-01", "activa")
	req.FechaInicio = "30/08/2026"
	_, err := svc.Crear(context.Background(), req)
	assert.EqualError(t, err, "El campo fecha_inicio debe tener formato YYYY-MM-DD")
	assert.Equal(t, 400, apierror.Status(err))
}

func TestSesion_Actualizar_FechaMalformada_Validation(t *testing.T) {
	svc := NewSesionService(newStubSesionRepo())
	_, err := svc.Crear(context.Background(), crearSesionReq("S-003", "U-01", "activa"))
	assert.NoError(t, err)

	mala := "2026-13-45x"
	_, err = svc.Actualizar(context.Background(), "S-003",
		dto.ActualizarSesionRequest{FechaFinal: &mala})
	assert.Equal(t, 400, apierror.Status(err))
}

func TestSesion_Activa_SinSesiones(t *testing.T) {
	svc := NewSesionService(newStubSesionRepo())

	resp, err := svc.Activa(context.Background(), "U-99")
	assert.NoError(t, err)
	assert.False(t, resp.Activa)
	assert.Nil(t, resp.FolioSesion)
}

func TestSesion_Activa_IgnoraCerradas(t *testing.T) {
	svc := NewSesionService(newStubSesionRepo())
	_, err := svc.Crear(context.Background(), crearSesionReq("S-010", "U-01", "cerrada"))
	assert.NoError(t, err)

	resp, err := svc.Activa(context.Background(), "U-01")
	assert.NoError(t, err)
	assert.False(t, resp.Activa)
}

func TestSesion_Activa_VariasActivas_GanaMenorFolio(t *testing.T) {
	svc := NewSesionService(newStubSesionRepo())
	_, err := svc.Crear(context.Background(), crearSesionReq("S-020", "U-01", "activa"))
	assert.NoError(t, err)
	_, err = svc.Crear(context.Background(), crearSesionReq("S-005", "U-01", "activa"))
	assert.NoError(t, err)

	resp, err := svc.Activa(context.Background(), "U-01")
	assert.NoError(t, err)
	assert.True(t, resp.Activa)
	if assert.NotNil(t, resp.FolioSesion) {
		assert.Equal(t, "S-005", *resp.FolioSesion)
	}
}

func TestSesion_EliminarInexistente_NotFound(t *testing.T) {
	svc := NewSesionService(newStubSesionRepo())

	_, err := svc.Eliminar(context.Background(), "S-404")
	assert.EqualError(t, err, "Sesión no encontrada")
	assert.Equal(t, 404, apierror.Status(err))
}
