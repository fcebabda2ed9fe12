package model

import "github.com/shopspring/decimal"

// Producto is the inventory unit, keyed by its caller-supplied barcode.
// The three catalog references are nullable; every FK restricts on delete so
// a catalog row still in use cannot be removed.
type Producto struct {
	CodigoBarras   string          `gorm:"column:codigo_barras;primaryKey"`
	Nombre         string          `gorm:"not null"`
	Descripcion    string          `gorm:"not null"`
	IDCategoria    *int            `gorm:"column:id_categoria"`
	IDPresentacion *int            `gorm:"column:id_presentacion"`
	IDMarca        *int            `gorm:"column:id_marca"`
	CantidadActual int             `gorm:"not null"`
	CantidadMaxima int             `gorm:"not null"`
	CantidadMinima int             `gorm:"not null"`
	Precio         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Estado         string          `gorm:"not null"`

	Categoria    *Categoria    `gorm:"foreignKey:IDCategoria;constraint:OnDelete:RESTRICT"`
	Presentacion *Presentacion `gorm:"foreignKey:IDPresentacion;constraint:OnDelete:RESTRICT"`
	Marca        *Marca        `gorm:"foreignKey:IDMarca;constraint:OnDelete:RESTRICT"`
}

func (Producto) TableName() string { return "producto" }
