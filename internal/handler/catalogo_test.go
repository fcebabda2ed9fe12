package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ElBerserker/apis-sucursal/internal/apierror"
	"github.com/ElBerserker/apis-sucursal/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubCategoriaService returns canned answers; err wins when set.
type stubCategoriaService struct {
	resp dto.CategoriaResponse
	list []dto.CategoriaResponse
	err  error
}

func (s *stubCategoriaService) Crear(_ context.Context, _ dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	return s.resp, s.err
}

func (s *stubCategoriaService) Listar(_ context.Context) ([]dto.CategoriaResponse, error) {
	return s.list, s.err
}

func (s *stubCategoriaService) Obtener(_ context.Context, _ int) (dto.CategoriaResponse, error) {
	return s.resp, s.err
}

func (s *stubCategoriaService) Actualizar(_ context.Context, _ int, _ dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	return s.resp, s.err
}

func (s *stubCategoriaService) Eliminar(_ context.Context, _ int) (dto.CategoriaResponse, error) {
	return s.resp, s.err
}

func categoriaTestRouter(svc *stubCategoriaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCategoriasHandler(svc)
	r.GET("/categoria", h.Listar)
	r.GET("/categoria/:id", h.Obtener)
	r.POST("/categoria/nueva_categoria", h.Crear)
	r.PUT("/categoria/actualizar_categoria/:id", h.Actualizar)
	r.DELETE("/categoria/eliminar_categoria/:id", h.Eliminar)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCategoriaHandler_Crear_201(t *testing.T) {
	svc := &stubCategoriaService{resp: dto.CategoriaResponse{IDCategoria: 1, Nombre: "Lácteos", Descripcion: "Leches"}}
	r := categoriaTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/categoria/nueva_categoria",
		dto.CrearCategoriaRequest{Nombre: "Lácteos", Descripcion: "Leches"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.CategoriaResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.IDCategoria)
}

func TestCategoriaHandler_Crear_CampoFaltante_400(t *testing.T) {
	r := categoriaTestRouter(&stubCategoriaService{})

	w := doJSON(r, http.MethodPost, "/categoria/nueva_categoria", map[string]string{"nombre": "Lácteos"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "El campo descripcion es obligatorio", body["message"])
}

func TestCategoriaHandler_Crear_JSONInvalido_400(t *testing.T) {
	r := categoriaTestRouter(&stubCategoriaService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/categoria/nueva_categoria",
		bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "JSON inválido", body["message"])
}

func TestCategoriaHandler_Obtener_404(t *testing.T) {
	r := categoriaTestRouter(&stubCategoriaService{err: apierror.NotFound("Categoría no encontrada")})

	w := doJSON(r, http.MethodGet, "/categoria/9", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Categoría no encontrada", body["message"])
}

func TestCategoriaHandler_IDNoNumerico_400(t *testing.T) {
	r := categoriaTestRouter(&stubCategoriaService{})

	w := doJSON(r, http.MethodGet, "/categoria/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "El parámetro id debe ser numérico", body["message"])
}

func TestCategoriaHandler_Eliminar_Conflict_409(t *testing.T) {
	r := categoriaTestRouter(&stubCategoriaService{err: apierror.Conflict("La operación viola una referencia entre tablas")})

	w := doJSON(r, http.MethodDelete, "/categoria/eliminar_categoria/3", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCategoriaHandler_ErrorDesconocido_500SinDetalle(t *testing.T) {
	r := categoriaTestRouter(&stubCategoriaService{err: assert.AnError})

	w := doJSON(r, http.MethodGet, "/categoria/1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// internals never leak to the client
	assert.Equal(t, "Error interno del servidor", body["message"])
}
