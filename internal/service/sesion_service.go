package service

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/model"
	"github.com/ElBerserker/apis-sucursal/internal/repository"
)

type SesionService interface {
	Crear(ctx context.Context, req dto.CrearSesionRequest) (dto.SesionResponse, error)
	Listar(ctx context.Context) ([]dto.SesionResponse, error)
	Obtener(ctx context.Context, folio string) (dto.SesionResponse, error)
	Actualizar(ctx context.Context, folio string, req dto.ActualizarSesionRequest) (dto.SesionResponse, error)
	Eliminar(ctx context.Context, folio string) (dto.SesionResponse, error)
	Activa(ctx context.Context, clvUsuario string) (dto.SesionActivaResponse, error)
}

type sesionService struct {
	repo repository.SesionRepository
}

func NewSesionService(repo repository.SesionRepository) SesionService {
	return &sesionService{repo: repo}
}

func mapSesion(s model.Sesion) dto.SesionResponse {
	return dto.SesionResponse{
		FolioSesion: s.FolioSesion,
		ClvUsuario:  s.ClvUsuario,
		FechaInicio: formatFecha(s.FechaInicio),
		FechaFinal:  formatFecha(s.FechaFinal),
		Estado:      s.Estado,
	}
}

func (s *sesionService) Crear(ctx context.Context, req dto.CrearSesionRequest) (dto.SesionResponse, error) {
	inicio, err := parseFecha("fecha_inicio", req.FechaInicio)
	if err != nil {
		return dto.SesionResponse{}, err
	}
	final, err := parseFecha("fecha_final", req.FechaFinal)
	if err != nil {
		return dto.SesionResponse{}, err
	}
	ses := &model.Sesion{
		FolioSesion: req.FolioSesion,
		ClvUsuario:  req.ClvUsuario,
		FechaInicio: inicio,
		FechaFinal:  final,
		Estado:      req.Estado,
	}
	if err := s.repo.Crear(ctx, ses); err != nil {
		return dto.SesionResponse{}, translateStoreErr(err, "Sesión no encontrada")
	}
	return mapSesion(*ses), nil
}

func (s *sesionService) Listar(ctx context.Context) ([]dto.SesionResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SesionResponse, 0, len(list))
	for _, ses := range list {
		result = append(result, mapSesion(ses))
	}
	return result, nil
}

func (s *sesionService) Obtener(ctx context.Context, folio string) (dto.SesionResponse, error) {
	ses, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return dto.SesionResponse{}, translateStoreErr(err, "Sesión no encontrada")
	}
	return mapSesion(*ses), nil
}

func (s *sesionService) Actualizar(ctx context.Context, folio string, req dto.ActualizarSesionRequest) (dto.SesionResponse, error) {
	ses, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return dto.SesionResponse{}, translateStoreErr(err, "Sesión no encontrada")
	}
	if req.ClvUsuario != nil {
		ses.ClvUsuario = req.ClvUsuario
	}
	if req.FechaInicio != nil {
		inicio, err := parseFecha("fecha_inicio", *req.FechaInicio)
		if err != nil {
			return dto.SesionResponse{}, err
		}
		ses.FechaInicio = inicio
	}
	if req.FechaFinal != nil {
		final, err := parseFecha("fecha_final", *req.FechaFinal)
		if err != nil {
			return dto.SesionResponse{}, err
		}
		ses.FechaFinal = final
	}
	if req.Estado != nil {
		ses.Estado = *req.Estado
	}
	if err := s.repo.Actualizar(ctx, ses); err != nil {
		return dto.SesionResponse{}, translateStoreErr(err, "Sesión no encontrada")
	}
	return mapSesion(*ses), nil
}

func (s *sesionService) Eliminar(ctx context.Context, folio string) (dto.SesionResponse, error) {
	ses, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return dto.SesionResponse{}, translateStoreErr(err, "Sesión no encontrada")
	}
	if err := s.repo.Eliminar(ctx, folio); err != nil {
		return dto.SesionResponse{}, translateStoreErr(err, "Sesión no encontrada")
	}
	return mapSesion(*ses), nil
}

// Activa reports whether the user has a session in estado "activa". An
// unknown clv_usuario is not an error, just a negative answer.
func (s *sesionService) Activa(ctx context.Context, clvUsuario string) (dto.SesionActivaResponse, error) {
	ses, err := s.repo.BuscarActivaPorUsuario(ctx, clvUsuario)
	if err != nil {
		return dto.SesionActivaResponse{}, err
	}
	if ses == nil {
		return dto.SesionActivaResponse{Activa: false}, nil
	}
	folio := ses.FolioSesion
	return dto.SesionActivaResponse{Activa: true, FolioSesion: &folio}, nil
}
