package service

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/model"
	"github.com/ElBerserker/apis-sucursal/internal/repository"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Obtener(ctx context.Context, rfc string) (dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, rfc string, req dto.ActualizarProveedorRequest) (dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, rfc string) (dto.ProveedorResponse, error)
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func mapProveedor(p model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		RFCProveedor: p.RFCProveedor,
		Nombre:       p.Nombre,
		Telefono:     p.Telefono,
		Correo:       p.Correo,
	}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (dto.ProveedorResponse, error) {
	p := &model.Proveedor{
		RFCProveedor: req.RFCProveedor,
		Nombre:       req.Nombre,
		Telefono:     req.Telefono,
		Correo:       req.Correo,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.ProveedorResponse{}, translateStoreErr(err, "Proveedor no encontrado")
	}
	return mapProveedor(*p), nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProveedor(p))
	}
	return result, nil
}

func (s *proveedorService) Obtener(ctx context.Context, rfc string) (dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorRFC(ctx, rfc)
	if err != nil {
		return dto.ProveedorResponse{}, translateStoreErr(err, "Proveedor no encontrado")
	}
	return mapProveedor(*p), nil
}

func (s *proveedorService) Actualizar(ctx context.Context, rfc string, req dto.ActualizarProveedorRequest) (dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorRFC(ctx, rfc)
	if err != nil {
		return dto.ProveedorResponse{}, translateStoreErr(err, "Proveedor no encontrado")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		p.Telefono = *req.Telefono
	}
	if req.Correo != nil {
		p.Correo = *req.Correo
	}
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.ProveedorResponse{}, translateStoreErr(err, "Proveedor no encontrado")
	}
	return mapProveedor(*p), nil
}

func (s *proveedorService) Eliminar(ctx context.Context, rfc string) (dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorRFC(ctx, rfc)
	if err != nil {
		return dto.ProveedorResponse{}, translateStoreErr(err, "Proveedor no encontrado")
	}
	if err := s.repo.Eliminar(ctx, rfc); err != nil {
		return dto.ProveedorResponse{}, translateStoreErr(err, "Proveedor no encontrado")
	}
	return mapProveedor(*p), nil
}
