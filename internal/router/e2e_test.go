//go:build integration

package router_test

// End-to-end tests over real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ElBerserker/apis-sucursal/internal/config"
	"github.com/ElBerserker/apis-sucursal/internal/infra"
	"github.com/ElBerserker/apis-sucursal/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("sucursal_test"),
		tcPostgres.WithUsername("sucursal"),
		tcPostgres.WithPassword("sucursal"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               4040,
		Env:                "test",
		WorkerPoolSize:     1,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		JWTSecret:          "secreto-e2e",
		JWTExpirationHours: 8,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)
	return srv
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestE2E_CatalogoYProducto(t *testing.T) {
	srv := setupServer(t)

	// catalog rows first, the product references them
	resp := do(t, srv, "POST", "/categoria/nueva_categoria",
		jsonBody(t, map[string]string{"nombre": "Lácteos", "descripcion": "Leches y derivados"}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cat struct {
		IDCategoria int `json:"id_categoria"`
	}
	decodeJSON(t, resp, &cat)

	resp = do(t, srv, "POST", "/producto/nuevo_producto", jsonBody(t, map[string]any{
		"codigo_barras":   "7501000111",
		"nombre":          "Leche entera 1L",
		"descripcion":     "Pasteurizada",
		"id_categoria":    cat.IDCategoria,
		"cantidad_actual": 10,
		"cantidad_maxima": 100,
		"cantidad_minima": 2,
		"precio":          "15.50",
		"estado":          "activo",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// the category is now referenced, RESTRICT turns the delete into a 409
	resp = do(t, srv, "DELETE", "/categoria/eliminar_categoria/1", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// a product with zero stock never shows up in disponibles
	resp = do(t, srv, "POST", "/producto/nuevo_producto", jsonBody(t, map[string]any{
		"codigo_barras":   "7501000112",
		"nombre":          "Yogurt natural",
		"descripcion":     "Sin azúcar",
		"cantidad_actual": 0,
		"cantidad_maxima": 50,
		"cantidad_minima": 5,
		"precio":          "22.00",
		"estado":          "activo",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, "GET", "/producto/disponibles", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var disponibles []struct {
		CodigoBarras string `json:"codigo_barras"`
	}
	decodeJSON(t, resp, &disponibles)
	require.Len(t, disponibles, 1)
	assert.Equal(t, "7501000111", disponibles[0].CodigoBarras)
}

func TestE2E_UsuarioSesionYVenta(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, srv, "POST", "/rol/nuevo_rol",
		jsonBody(t, map[string]string{"nombre": "cajero", "descripcion": "Punto de venta"}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, "POST", "/usuario/nuevo_usuario", jsonBody(t, map[string]any{
		"clv_usuario": "U-01",
		"nombre":      "Ana",
		"apellido1":   "García",
		"apellido2":   "López",
		"telefono":    "5512345678",
		"correo":      "ana@sucursal.mx",
		"direccion":   "Av. Siempre Viva 742",
		"id_rol":      1,
		"contrasenia": "secreta123",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var usuario map[string]any
	decodeJSON(t, resp, &usuario)
	// the hash never leaves the service
	_, filtrado := usuario["contrasenia"]
	assert.False(t, filtrado)

	resp = do(t, srv, "POST", "/usuario/validar_usuario",
		jsonBody(t, map[string]string{"clv_usuario": "U-01", "contrasenia": "secreta123"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var validado struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &validado)
	assert.NotEmpty(t, validado.Token)

	resp = do(t, srv, "POST", "/sesion/nueva_sesion", jsonBody(t, map[string]string{
		"folio_sesion": "S-001",
		"clv_usuario":  "U-01",
		"fecha_inicio": "2026-08-30",
		"fecha_final":  "2026-08-31",
		"estado":       "activa",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, "GET", "/sesion/activa/U-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var activa struct {
		Activa      bool    `json:"activa"`
		FolioSesion *string `json:"folio_sesion"`
	}
	decodeJSON(t, resp, &activa)
	require.True(t, activa.Activa)
	assert.Equal(t, "S-001", *activa.FolioSesion)

	resp = do(t, srv, "POST", "/cliente/nuevo_cliente", jsonBody(t, map[string]string{
		"clv_cliente": "CL-01",
		"nombre":      "Juan",
		"apellido1":   "Pérez",
		"apellido2":   "Ramírez",
		"telefono":    "5511122233",
		"correo":      "juan@correo.mx",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, "POST", "/venta/nueva_venta", jsonBody(t, map[string]any{
		"folio_venta":  "V-001",
		"folio_sesion": "S-001",
		"clv_cliente":  "CL-01",
		"fecha_venta":  "2026-08-30",
		"total_venta":  "0.00",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// a venta against an unknown session violates the FK
	resp = do(t, srv, "POST", "/venta/nueva_venta", jsonBody(t, map[string]any{
		"folio_venta":  "V-002",
		"folio_sesion": "S-999",
		"clv_cliente":  "CL-01",
		"fecha_venta":  "2026-08-30",
		"total_venta":  "10.00",
	}))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_DetalleContraFolioInexistente(t *testing.T) {
	srv := setupServer(t)

	// a real product, so only the header reference can fail
	resp := do(t, srv, "POST", "/producto/nuevo_producto", jsonBody(t, map[string]any{
		"codigo_barras":   "7501000113",
		"nombre":          "Queso panela",
		"descripcion":     "400g",
		"cantidad_actual": 8,
		"cantidad_maxima": 40,
		"cantidad_minima": 2,
		"precio":          "48.00",
		"estado":          "activo",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// no venta "F-999" exists: the detail FK restricts the insert
	resp = do(t, srv, "POST", "/detalle_venta", jsonBody(t, map[string]any{
		"folio_venta":   "F-999",
		"codigo_barras": "7501000113",
		"cantidad":      2,
		"precio_venta":  "48.00",
	}))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// same policy on the purchase side
	resp = do(t, srv, "POST", "/detalle_compra", jsonBody(t, map[string]any{
		"folio_compra":  "F-999",
		"codigo_barras": "7501000113",
		"cantidad":      2,
		"precio_compra": "30.00",
	}))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}
