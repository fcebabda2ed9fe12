package repository

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Crear(ctx context.Context, v *model.Venta) error
	Listar(ctx context.Context) ([]model.Venta, error)
	ObtenerPorFolio(ctx context.Context, folio string) (*model.Venta, error)
	Actualizar(ctx context.Context, v *model.Venta) error
	Eliminar(ctx context.Context, folio string) error
	ListarDetalles(ctx context.Context, folio string) ([]model.DetalleVenta, error)
	SumarDetalles(ctx context.Context, folio string) (decimal.Decimal, error)
	ListarFolios(ctx context.Context) ([]string, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) Crear(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) Listar(ctx context.Context) ([]model.Venta, error) {
	var list []model.Venta
	err := r.db.WithContext(ctx).Order("folio_venta asc").Find(&list).Error
	return list, err
}

func (r *ventaRepo) ObtenerPorFolio(ctx context.Context, folio string) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).First(&v, "folio_venta = ?", folio).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) Actualizar(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *ventaRepo) Eliminar(ctx context.Context, folio string) error {
	return r.db.WithContext(ctx).Delete(&model.Venta{}, "folio_venta = ?", folio).Error
}

func (r *ventaRepo) ListarDetalles(ctx context.Context, folio string) ([]model.DetalleVenta, error) {
	var list []model.DetalleVenta
	err := r.db.WithContext(ctx).
		Where("folio_venta = ?", folio).
		Order("id_detalle_venta asc").
		Find(&list).Error
	return list, err
}

func (r *ventaRepo) SumarDetalles(ctx context.Context, folio string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.DetalleVenta{}).
		Select("SUM(cantidad * precio_venta)").
		Where("folio_venta = ?", folio).
		Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

func (r *ventaRepo) ListarFolios(ctx context.Context) ([]string, error) {
	var folios []string
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Order("folio_venta asc").
		Pluck("folio_venta", &folios).Error
	return folios, err
}

type DetalleVentaRepository interface {
	Crear(ctx context.Context, d *model.DetalleVenta) error
	Listar(ctx context.Context) ([]model.DetalleVenta, error)
	ObtenerPorID(ctx context.Context, id int) (*model.DetalleVenta, error)
	Actualizar(ctx context.Context, d *model.DetalleVenta) error
	Eliminar(ctx context.Context, id int) error
}

type detalleVentaRepo struct{ db *gorm.DB }

func NewDetalleVentaRepository(db *gorm.DB) DetalleVentaRepository {
	return &detalleVentaRepo{db: db}
}

func (r *detalleVentaRepo) Crear(ctx context.Context, d *model.DetalleVenta) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *detalleVentaRepo) Listar(ctx context.Context) ([]model.DetalleVenta, error) {
	var list []model.DetalleVenta
	err := r.db.WithContext(ctx).Order("id_detalle_venta asc").Find(&list).Error
	return list, err
}

func (r *detalleVentaRepo) ObtenerPorID(ctx context.Context, id int) (*model.DetalleVenta, error) {
	var d model.DetalleVenta
	err := r.db.WithContext(ctx).First(&d, "id_detalle_venta = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *detalleVentaRepo) Actualizar(ctx context.Context, d *model.DetalleVenta) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *detalleVentaRepo) Eliminar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.DetalleVenta{}, "id_detalle_venta = ?", id).Error
}
