package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra is a purchase header. TotalCompra is caller-authoritative: it is
// never recomputed from detail rows (the reconciliation worker only reports
// drift, it does not correct it).
type Compra struct {
	FolioCompra  string          `gorm:"column:folio_compra;primaryKey;size:18"`
	FolioSesion  string          `gorm:"column:folio_sesion;not null;size:18"`
	RFCProveedor string          `gorm:"column:rfc_proveedor;not null"`
	FechaCompra  time.Time       `gorm:"type:date;not null"`
	TotalCompra  decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Sesion    *Sesion    `gorm:"foreignKey:FolioSesion;constraint:OnDelete:RESTRICT"`
	Proveedor *Proveedor `gorm:"foreignKey:RFCProveedor;constraint:OnDelete:RESTRICT"`
}

func (Compra) TableName() string { return "compra" }

// DetalleCompra is a purchase line item. FolioCompra is nullable: a detail
// may be parked without a header, but deleting a referenced header restricts.
type DetalleCompra struct {
	IDDetalleCompra int             `gorm:"column:id_detalle_compra;primaryKey;autoIncrement"`
	FolioCompra     *string         `gorm:"column:folio_compra;size:18"`
	CodigoBarras    string          `gorm:"column:codigo_barras;not null"`
	Cantidad        int             `gorm:"not null"`
	PrecioCompra    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Compra   *Compra   `gorm:"foreignKey:FolioCompra;constraint:OnDelete:RESTRICT"`
	Producto *Producto `gorm:"foreignKey:CodigoBarras;constraint:OnDelete:RESTRICT"`
}

func (DetalleCompra) TableName() string { return "detalle_compra" }
