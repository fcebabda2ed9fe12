package dto

import "github.com/shopspring/decimal"

// Numeric fields are pointers so that a present-but-zero value (a product
// with no stock, a free item) is distinguishable from an absent key.

type CrearProductoRequest struct {
	CodigoBarras   string           `json:"codigo_barras"   validate:"required"`
	Nombre         string           `json:"nombre"          validate:"required"`
	Descripcion    string           `json:"descripcion"     validate:"required"`
	IDCategoria    *int             `json:"id_categoria"`
	IDPresentacion *int             `json:"id_presentacion"`
	IDMarca        *int             `json:"id_marca"`
	CantidadActual *int             `json:"cantidad_actual" validate:"required"`
	CantidadMaxima *int             `json:"cantidad_maxima" validate:"required"`
	CantidadMinima *int             `json:"cantidad_minima" validate:"required"`
	Precio         *decimal.Decimal `json:"precio"          validate:"required"`
	Estado         string           `json:"estado"          validate:"required"`
}

type ActualizarProductoRequest struct {
	Nombre         *string          `json:"nombre"`
	Descripcion    *string          `json:"descripcion"`
	IDCategoria    *int             `json:"id_categoria"`
	IDPresentacion *int             `json:"id_presentacion"`
	IDMarca        *int             `json:"id_marca"`
	CantidadActual *int             `json:"cantidad_actual"`
	CantidadMaxima *int             `json:"cantidad_maxima"`
	CantidadMinima *int             `json:"cantidad_minima"`
	Precio         *decimal.Decimal `json:"precio"`
	Estado         *string          `json:"estado"`
}

type ProductoResponse struct {
	CodigoBarras   string          `json:"codigo_barras"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	IDCategoria    *int            `json:"id_categoria"`
	IDPresentacion *int            `json:"id_presentacion"`
	IDMarca        *int            `json:"id_marca"`
	CantidadActual int             `json:"cantidad_actual"`
	CantidadMaxima int             `json:"cantidad_maxima"`
	CantidadMinima int             `json:"cantidad_minima"`
	Precio         decimal.Decimal `json:"precio"`
	Estado         string          `json:"estado"`
}
