package service

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/model"
	"github.com/ElBerserker/apis-sucursal/internal/repository"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, clv string) (dto.ClienteResponse, error)
	Actualizar(ctx context.Context, clv string, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error)
	Eliminar(ctx context.Context, clv string) (dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ClvCliente: c.ClvCliente,
		Nombre:     c.Nombre,
		Apellido1:  c.Apellido1,
		Apellido2:  c.Apellido2,
		Telefono:   c.Telefono,
		Correo:     c.Correo,
	}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error) {
	c := &model.Cliente{
		ClvCliente: req.ClvCliente,
		Nombre:     req.Nombre,
		Apellido1:  req.Apellido1,
		Apellido2:  req.Apellido2,
		Telefono:   req.Telefono,
		Correo:     req.Correo,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.ClienteResponse{}, translateStoreErr(err, "Cliente no encontrado")
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) Obtener(ctx context.Context, clv string) (dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorClv(ctx, clv)
	if err != nil {
		return dto.ClienteResponse{}, translateStoreErr(err, "Cliente no encontrado")
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, clv string, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorClv(ctx, clv)
	if err != nil {
		return dto.ClienteResponse{}, translateStoreErr(err, "Cliente no encontrado")
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Apellido1 != nil {
		c.Apellido1 = *req.Apellido1
	}
	if req.Apellido2 != nil {
		c.Apellido2 = *req.Apellido2
	}
	if req.Telefono != nil {
		c.Telefono = *req.Telefono
	}
	if req.Correo != nil {
		c.Correo = *req.Correo
	}
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.ClienteResponse{}, translateStoreErr(err, "Cliente no encontrado")
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Eliminar(ctx context.Context, clv string) (dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorClv(ctx, clv)
	if err != nil {
		return dto.ClienteResponse{}, translateStoreErr(err, "Cliente no encontrado")
	}
	if err := s.repo.Eliminar(ctx, clv); err != nil {
		return dto.ClienteResponse{}, translateStoreErr(err, "Cliente no encontrado")
	}
	return mapCliente(*c), nil
}
