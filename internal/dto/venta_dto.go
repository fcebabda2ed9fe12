package dto

import "github.com/shopspring/decimal"

type CrearVentaRequest struct {
	FolioVenta  string           `json:"folio_venta"  validate:"required"`
	FolioSesion string           `json:"folio_sesion" validate:"required"`
	ClvCliente  string           `json:"clv_cliente"  validate:"required"`
	FechaVenta  string           `json:"fecha_venta"  validate:"required"`
	TotalVenta  *decimal.Decimal `json:"total_venta"  validate:"required"`
}

type ActualizarVentaRequest struct {
	FolioSesion *string          `json:"folio_sesion"`
	ClvCliente  *string          `json:"clv_cliente"`
	FechaVenta  *string          `json:"fecha_venta"`
	TotalVenta  *decimal.Decimal `json:"total_venta"`
}

type VentaResponse struct {
	FolioVenta  string          `json:"folio_venta"`
	FolioSesion string          `json:"folio_sesion"`
	ClvCliente  string          `json:"clv_cliente"`
	FechaVenta  string          `json:"fecha_venta"`
	TotalVenta  decimal.Decimal `json:"total_venta"`
}

// ── DetalleVenta ──────────────────────────────────────────────────────────────

type CrearDetalleVentaRequest struct {
	FolioVenta   string           `json:"folio_venta"   validate:"required"`
	CodigoBarras string           `json:"codigo_barras" validate:"required"`
	Cantidad     *int             `json:"cantidad"      validate:"required"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"  validate:"required"`
}

type ActualizarDetalleVentaRequest struct {
	FolioVenta   *string          `json:"folio_venta"`
	CodigoBarras *string          `json:"codigo_barras"`
	Cantidad     *int             `json:"cantidad"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"`
}

type DetalleVentaResponse struct {
	IDDetalleVenta int             `json:"id_detalle_venta"`
	FolioVenta     *string         `json:"folio_venta"`
	CodigoBarras   string          `json:"codigo_barras"`
	Cantidad       int             `json:"cantidad"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
}
