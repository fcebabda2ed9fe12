package repository

import (
	"context"
	"errors"

	"github.com/ElBerserker/apis-sucursal/internal/model"

	"gorm.io/gorm"
)

type SesionRepository interface {
	Crear(ctx context.Context, s *model.Sesion) error
	Listar(ctx context.Context) ([]model.Sesion, error)
	ObtenerPorFolio(ctx context.Context, folio string) (*model.Sesion, error)
	Actualizar(ctx context.Context, s *model.Sesion) error
	Eliminar(ctx context.Context, folio string) error
	// BuscarActivaPorUsuario returns the user's first session with estado
	// "activa" in folio order, or nil when none exists. Nothing enforces a
	// single active session per user, so folio order keeps the answer
	// deterministic.
	BuscarActivaPorUsuario(ctx context.Context, clvUsuario string) (*model.Sesion, error)
}

type sesionRepo struct{ db *gorm.DB }

func NewSesionRepository(db *gorm.DB) SesionRepository { return &sesionRepo{db: db} }

func (r *sesionRepo) Crear(ctx context.Context, s *model.Sesion) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sesionRepo) Listar(ctx context.Context) ([]model.Sesion, error) {
	var list []model.Sesion
	err := r.db.WithContext(ctx).Order("folio_sesion asc").Find(&list).Error
	return list, err
}

func (r *sesionRepo) ObtenerPorFolio(ctx context.Context, folio string) (*model.Sesion, error) {
	var s model.Sesion
	err := r.db.WithContext(ctx).First(&s, "folio_sesion = ?", folio).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sesionRepo) Actualizar(ctx context.Context, s *model.Sesion) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sesionRepo) Eliminar(ctx context.Context, folio string) error {
	return r.db.WithContext(ctx).Delete(&model.Sesion{}, "folio_sesion = ?", folio).Error
}

func (r *sesionRepo) BuscarActivaPorUsuario(ctx context.Context, clvUsuario string) (*model.Sesion, error) {
	var s model.Sesion
	err := r.db.WithContext(ctx).
		Where("clv_usuario = ? AND estado = ?", clvUsuario, model.EstadoSesionActiva).
		Order("folio_sesion asc").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
