package repository

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository defines CRUD operations for Categoria.
// Services depend on these interfaces, not on the concrete GORM
// implementations, enabling unit testing via in-memory stubs.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria) error
	Eliminar(ctx context.Context, id int) error
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) Listar(ctx context.Context) ([]model.Categoria, error) {
	var list []model.Categoria
	err := r.db.WithContext(ctx).Order("id_categoria asc").Find(&list).Error
	return list, err
}

func (r *categoriaRepo) ObtenerPorID(ctx context.Context, id int) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id_categoria = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) Actualizar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Eliminar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Categoria{}, "id_categoria = ?", id).Error
}

// MarcaRepository defines CRUD operations for Marca.
type MarcaRepository interface {
	Crear(ctx context.Context, m *model.Marca) error
	Listar(ctx context.Context) ([]model.Marca, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Marca, error)
	Actualizar(ctx context.Context, m *model.Marca) error
	Eliminar(ctx context.Context, id int) error
}

type marcaRepo struct{ db *gorm.DB }

func NewMarcaRepository(db *gorm.DB) MarcaRepository { return &marcaRepo{db: db} }

func (r *marcaRepo) Crear(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *marcaRepo) Listar(ctx context.Context) ([]model.Marca, error) {
	var list []model.Marca
	err := r.db.WithContext(ctx).Order("id_marca asc").Find(&list).Error
	return list, err
}

func (r *marcaRepo) ObtenerPorID(ctx context.Context, id int) (*model.Marca, error) {
	var m model.Marca
	err := r.db.WithContext(ctx).First(&m, "id_marca = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *marcaRepo) Actualizar(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *marcaRepo) Eliminar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Marca{}, "id_marca = ?", id).Error
}

// PresentacionRepository defines CRUD operations for Presentacion.
type PresentacionRepository interface {
	Crear(ctx context.Context, p *model.Presentacion) error
	Listar(ctx context.Context) ([]model.Presentacion, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Presentacion, error)
	Actualizar(ctx context.Context, p *model.Presentacion) error
	Eliminar(ctx context.Context, id int) error
}

type presentacionRepo struct{ db *gorm.DB }

func NewPresentacionRepository(db *gorm.DB) PresentacionRepository {
	return &presentacionRepo{db: db}
}

func (r *presentacionRepo) Crear(ctx context.Context, p *model.Presentacion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *presentacionRepo) Listar(ctx context.Context) ([]model.Presentacion, error) {
	var list []model.Presentacion
	err := r.db.WithContext(ctx).Order("id_presentacion asc").Find(&list).Error
	return list, err
}

func (r *presentacionRepo) ObtenerPorID(ctx context.Context, id int) (*model.Presentacion, error) {
	var p model.Presentacion
	err := r.db.WithContext(ctx).First(&p, "id_presentacion = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *presentacionRepo) Actualizar(ctx context.Context, p *model.Presentacion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *presentacionRepo) Eliminar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Presentacion{}, "id_presentacion = ?", id).Error
}
