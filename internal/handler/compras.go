package handler

import (
	"net/http"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// Crear POST /compra/nueva_compra
func (h *ComprasHandler) Crear(c *gin.Context) {
	var req dto.CrearCompraRequest
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

// Listar GET /compra
func (h *ComprasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /compra/:folio_compra
func (h *ComprasHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("folio_compra"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /compra/actualizar_compra/:folio_compra
func (h *ComprasHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("folio_compra"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /compra/eliminar_compra/:folio_compra
func (h *ComprasHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("folio_compra"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reporte GET /compra/reporte/:folio_compra
func (h *ComprasHandler) Reporte(c *gin.Context) {
	path, err := h.svc.Reporte(c.Request.Context(), c.Param("folio_compra"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "compra_"+c.Param("folio_compra")+".pdf")
}

type DetallesCompraHandler struct{ svc service.DetalleCompraService }

func NewDetallesCompraHandler(svc service.DetalleCompraService) *DetallesCompraHandler {
	return &DetallesCompraHandler{svc: svc}
}

// Crear POST /detalle_compra
func (h *DetallesCompraHandler) Crear(c *gin.Context) {
	var req dto.CrearDetalleCompraRequest
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

// Listar GET /detalle_compra
func (h *DetallesCompraHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /detalle_compra/:id
func (h *DetallesCompraHandler) Obtener(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /detalle_compra/:id
func (h *DetallesCompraHandler) Actualizar(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarDetalleCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /detalle_compra/:id
func (h *DetallesCompraHandler) Eliminar(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
