package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta is a sale header. Same non-derivation property as Compra: TotalVenta
// belongs to the caller, detail sums are advisory.
type Venta struct {
	FolioVenta  string          `gorm:"column:folio_venta;primaryKey;size:18"`
	FolioSesion string          `gorm:"column:folio_sesion;not null;size:18"`
	ClvCliente  string          `gorm:"column:clv_cliente;not null;size:18"`
	FechaVenta  time.Time       `gorm:"type:date;not null"`
	TotalVenta  decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Sesion  *Sesion  `gorm:"foreignKey:FolioSesion;constraint:OnDelete:RESTRICT"`
	Cliente *Cliente `gorm:"foreignKey:ClvCliente;constraint:OnDelete:RESTRICT"`
}

func (Venta) TableName() string { return "venta" }

// DetalleVenta is a sale line item.
type DetalleVenta struct {
	IDDetalleVenta int             `gorm:"column:id_detalle_venta;primaryKey;autoIncrement"`
	FolioVenta     *string         `gorm:"column:folio_venta;size:18"`
	CodigoBarras   string          `gorm:"column:codigo_barras;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioVenta    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Venta    *Venta    `gorm:"foreignKey:FolioVenta;constraint:OnDelete:RESTRICT"`
	Producto *Producto `gorm:"foreignKey:CodigoBarras;constraint:OnDelete:RESTRICT"`
}

func (DetalleVenta) TableName() string { return "detalle_venta" }
