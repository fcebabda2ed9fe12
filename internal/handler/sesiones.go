package handler

import (
	"net/http"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/service"

	"github.com/gin-gonic/gin"
)

type SesionesHandler struct{ svc service.SesionService }

func NewSesionesHandler(svc service.SesionService) *SesionesHandler {
	return &SesionesHandler{svc: svc}
}

// Crear POST /sesion/nueva_sesion
func (h *SesionesHandler) Crear(c *gin.Context) {
	var req dto.CrearSesionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /sesion
func (h *SesionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /sesion/:folio_sesion
func (h *SesionesHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("folio_sesion"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /sesion/actualizar_sesion/:folio_sesion
func (h *SesionesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarSesionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("folio_sesion"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /sesion/eliminar_sesion/:folio_sesion
func (h *SesionesHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("folio_sesion"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Activa GET /sesion/activa/:clv_usuario
func (h *SesionesHandler) Activa(c *gin.Context) {
	resp, err := h.svc.Activa(c.Request.Context(), c.Param("clv_usuario"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
