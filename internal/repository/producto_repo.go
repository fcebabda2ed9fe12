package repository

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/model"

	"gorm.io/gorm"
)

type ProductoRepository interface {
	Crear(ctx context.Context, p *model.Producto) error
	Listar(ctx context.Context) ([]model.Producto, error)
	// ListarDisponibles returns only products with positive stock.
	ListarDisponibles(ctx context.Context) ([]model.Producto, error)
	ObtenerPorCodigo(ctx context.Context, codigoBarras string) (*model.Producto, error)
	Actualizar(ctx context.Context, p *model.Producto) error
	Eliminar(ctx context.Context, codigoBarras string) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Crear(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) Listar(ctx context.Context) ([]model.Producto, error) {
	var list []model.Producto
	err := r.db.WithContext(ctx).Order("codigo_barras asc").Find(&list).Error
	return list, err
}

func (r *productoRepo) ListarDisponibles(ctx context.Context) ([]model.Producto, error) {
	var list []model.Producto
	err := r.db.WithContext(ctx).
		Where("cantidad_actual > 0").
		Order("codigo_barras asc").
		Find(&list).Error
	return list, err
}

func (r *productoRepo) ObtenerPorCodigo(ctx context.Context, codigoBarras string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "codigo_barras = ?", codigoBarras).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) Actualizar(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Eliminar(ctx context.Context, codigoBarras string) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, "codigo_barras = ?", codigoBarras).Error
}
