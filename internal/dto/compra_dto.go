package dto

import "github.com/shopspring/decimal"

// TotalCompra is a pointer on create so a total of exactly 0.00 counts as
// present; absence, not zero, is the validation failure.

type CrearCompraRequest struct {
	FolioCompra  string           `json:"folio_compra"  validate:"required"`
	FolioSesion  string           `json:"folio_sesion"  validate:"required"`
	RFCProveedor string           `json:"rfc_proveedor" validate:"required"`
	FechaCompra  string           `json:"fecha_compra"  validate:"required"`
	TotalCompra  *decimal.Decimal `json:"total_compra"  validate:"required"`
}

type ActualizarCompraRequest struct {
	FolioSesion  *string          `json:"folio_sesion"`
	RFCProveedor *string          `json:"rfc_proveedor"`
	FechaCompra  *string          `json:"fecha_compra"`
	TotalCompra  *decimal.Decimal `json:"total_compra"`
}

type CompraResponse struct {
	FolioCompra  string          `json:"folio_compra"`
	FolioSesion  string          `json:"folio_sesion"`
	RFCProveedor string          `json:"rfc_proveedor"`
	FechaCompra  string          `json:"fecha_compra"`
	TotalCompra  decimal.Decimal `json:"total_compra"`
}

// ── DetalleCompra ─────────────────────────────────────────────────────────────

type CrearDetalleCompraRequest struct {
	FolioCompra  string           `json:"folio_compra"  validate:"required"`
	CodigoBarras string           `json:"codigo_barras" validate:"required"`
	Cantidad     *int             `json:"cantidad"      validate:"required"`
	PrecioCompra *decimal.Decimal `json:"precio_compra" validate:"required"`
}

type ActualizarDetalleCompraRequest struct {
	FolioCompra  *string          `json:"folio_compra"`
	CodigoBarras *string          `json:"codigo_barras"`
	Cantidad     *int             `json:"cantidad"`
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
}

type DetalleCompraResponse struct {
	IDDetalleCompra int             `json:"id_detalle_compra"`
	FolioCompra     *string         `json:"folio_compra"`
	CodigoBarras    string          `json:"codigo_barras"`
	Cantidad        int             `json:"cantidad"`
	PrecioCompra    decimal.Decimal `json:"precio_compra"`
}
