package service

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/model"
	"github.com/ElBerserker/apis-sucursal/internal/repository"
)

type RolService interface {
	Crear(ctx context.Context, req dto.CrearRolRequest) (dto.RolResponse, error)
	Listar(ctx context.Context) ([]dto.RolResponse, error)
	Obtener(ctx context.Context, id int) (dto.RolResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarRolRequest) (dto.RolResponse, error)
	Eliminar(ctx context.Context, id int) (dto.RolResponse, error)
}

type rolService struct {
	repo repository.RolRepository
}

func NewRolService(repo repository.RolRepository) RolService {
	return &rolService{repo: repo}
}

func mapRol(r model.Rol) dto.RolResponse {
	return dto.RolResponse{IDRol: r.IDRol, Nombre: r.Nombre, Descripcion: r.Descripcion}
}

func (s *rolService) Crear(ctx context.Context, req dto.CrearRolRequest) (dto.RolResponse, error) {
	r := &model.Rol{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Crear(ctx, r); err != nil {
		return dto.RolResponse{}, translateStoreErr(err, "Rol no encontrado")
	}
	return mapRol(*r), nil
}

func (s *rolService) Listar(ctx context.Context) ([]dto.RolResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.RolResponse, 0, len(list))
	for _, r := range list {
		result = append(result, mapRol(r))
	}
	return result, nil
}

func (s *rolService) Obtener(ctx context.Context, id int) (dto.RolResponse, error) {
	r, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.RolResponse{}, translateStoreErr(err, "Rol no encontrado")
	}
	return mapRol(*r), nil
}

func (s *rolService) Actualizar(ctx context.Context, id int, req dto.ActualizarRolRequest) (dto.RolResponse, error) {
	r, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.RolResponse{}, translateStoreErr(err, "Rol no encontrado")
	}
	if req.Nombre != nil {
		r.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		r.Descripcion = *req.Descripcion
	}
	if err := s.repo.Actualizar(ctx, r); err != nil {
		return dto.RolResponse{}, translateStoreErr(err, "Rol no encontrado")
	}
	return mapRol(*r), nil
}

func (s *rolService) Eliminar(ctx context.Context, id int) (dto.RolResponse, error) {
	r, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.RolResponse{}, translateStoreErr(err, "Rol no encontrado")
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return dto.RolResponse{}, translateStoreErr(err, "Rol no encontrado")
	}
	return mapRol(*r), nil
}
