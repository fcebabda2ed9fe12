package repository

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraRepository interface {
	Crear(ctx context.Context, c *model.Compra) error
	Listar(ctx context.Context) ([]model.Compra, error)
	ObtenerPorFolio(ctx context.Context, folio string) (*model.Compra, error)
	Actualizar(ctx context.Context, c *model.Compra) error
	Eliminar(ctx context.Context, folio string) error
	// ListarDetalles returns the line items of one header, for reports and
	// the reconciliation worker.
	ListarDetalles(ctx context.Context, folio string) ([]model.DetalleCompra, error)
	// SumarDetalles computes SUM(cantidad * precio_compra) for one header.
	// Advisory only; the stored total is never corrected from it.
	SumarDetalles(ctx context.Context, folio string) (decimal.Decimal, error)
	ListarFolios(ctx context.Context) ([]string, error)
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) Crear(ctx context.Context, c *model.Compra) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *compraRepo) Listar(ctx context.Context) ([]model.Compra, error) {
	var list []model.Compra
	err := r.db.WithContext(ctx).Order("folio_compra asc").Find(&list).Error
	return list, err
}

func (r *compraRepo) ObtenerPorFolio(ctx context.Context, folio string) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).First(&c, "folio_compra = ?", folio).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) Actualizar(ctx context.Context, c *model.Compra) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *compraRepo) Eliminar(ctx context.Context, folio string) error {
	return r.db.WithContext(ctx).Delete(&model.Compra{}, "folio_compra = ?", folio).Error
}

func (r *compraRepo) ListarDetalles(ctx context.Context, folio string) ([]model.DetalleCompra, error) {
	var list []model.DetalleCompra
	err := r.db.WithContext(ctx).
		Where("folio_compra = ?", folio).
		Order("id_detalle_compra asc").
		Find(&list).Error
	return list, err
}

func (r *compraRepo) SumarDetalles(ctx context.Context, folio string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.DetalleCompra{}).
		Select("SUM(cantidad * precio_compra)").
		Where("folio_compra = ?", folio).
		Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

func (r *compraRepo) ListarFolios(ctx context.Context) ([]string, error) {
	var folios []string
	err := r.db.WithContext(ctx).Model(&model.Compra{}).
		Order("folio_compra asc").
		Pluck("folio_compra", &folios).Error
	return folios, err
}

type DetalleCompraRepository interface {
	Crear(ctx context.Context, d *model.DetalleCompra) error
	Listar(ctx context.Context) ([]model.DetalleCompra, error)
	ObtenerPorID(ctx context.Context, id int) (*model.DetalleCompra, error)
	Actualizar(ctx context.Context, d *model.DetalleCompra) error
	Eliminar(ctx context.Context, id int) error
}

type detalleCompraRepo struct{ db *gorm.DB }

func NewDetalleCompraRepository(db *gorm.DB) DetalleCompraRepository {
	return &detalleCompraRepo{db: db}
}

func (r *detalleCompraRepo) Crear(ctx context.Context, d *model.DetalleCompra) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *detalleCompraRepo) Listar(ctx context.Context) ([]model.DetalleCompra, error) {
	var list []model.DetalleCompra
	err := r.db.WithContext(ctx).Order("id_detalle_compra asc").Find(&list).Error
	return list, err
}

func (r *detalleCompraRepo) ObtenerPorID(ctx context.Context, id int) (*model.DetalleCompra, error) {
	var d model.DetalleCompra
	err := r.db.WithContext(ctx).First(&d, "id_detalle_compra = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *detalleCompraRepo) Actualizar(ctx context.Context, d *model.DetalleCompra) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *detalleCompraRepo) Eliminar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.DetalleCompra{}, "id_detalle_compra = ?", id).Error
}
