package service

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/model"
	"github.com/ElBerserker/apis-sucursal/internal/repository"
)

// Reference catalog: Categoria, Marca and Presentacion share the same CRUD
// contract and no cross-field validation.

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Obtener(ctx context.Context, id int) (dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id int) (dto.CategoriaResponse, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		IDCategoria: c.IDCategoria,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
	}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	c := &model.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.CategoriaResponse{}, translateStoreErr(err, "Categoría no encontrada")
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategoria(c))
	}
	return result, nil
}

func (s *categoriaService) Obtener(ctx context.Context, id int) (dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.CategoriaResponse{}, translateStoreErr(err, "Categoría no encontrada")
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id int, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.CategoriaResponse{}, translateStoreErr(err, "Categoría no encontrada")
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = *req.Descripcion
	}
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.CategoriaResponse{}, translateStoreErr(err, "Categoría no encontrada")
	}
	return mapCategoria(*c), nil
}

// Eliminar removes the row and returns its last known state.
func (s *categoriaService) Eliminar(ctx context.Context, id int) (dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.CategoriaResponse{}, translateStoreErr(err, "Categoría no encontrada")
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return dto.CategoriaResponse{}, translateStoreErr(err, "Categoría no encontrada")
	}
	return mapCategoria(*c), nil
}

type MarcaService interface {
	Crear(ctx context.Context, req dto.CrearMarcaRequest) (dto.MarcaResponse, error)
	Listar(ctx context.Context) ([]dto.MarcaResponse, error)
	Obtener(ctx context.Context, id int) (dto.MarcaResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarMarcaRequest) (dto.MarcaResponse, error)
	Eliminar(ctx context.Context, id int) (dto.MarcaResponse, error)
}

type marcaService struct {
	repo repository.MarcaRepository
}

func NewMarcaService(repo repository.MarcaRepository) MarcaService {
	return &marcaService{repo: repo}
}

func mapMarca(m model.Marca) dto.MarcaResponse {
	return dto.MarcaResponse{IDMarca: m.IDMarca, Nombre: m.Nombre}
}

func (s *marcaService) Crear(ctx context.Context, req dto.CrearMarcaRequest) (dto.MarcaResponse, error) {
	m := &model.Marca{Nombre: req.Nombre}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.MarcaResponse{}, translateStoreErr(err, "Marca no encontrada")
	}
	return mapMarca(*m), nil
}

func (s *marcaService) Listar(ctx context.Context) ([]dto.MarcaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MarcaResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMarca(m))
	}
	return result, nil
}

func (s *marcaService) Obtener(ctx context.Context, id int) (dto.MarcaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.MarcaResponse{}, translateStoreErr(err, "Marca no encontrada")
	}
	return mapMarca(*m), nil
}

func (s *marcaService) Actualizar(ctx context.Context, id int, req dto.ActualizarMarcaRequest) (dto.MarcaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.MarcaResponse{}, translateStoreErr(err, "Marca no encontrada")
	}
	if req.Nombre != nil {
		m.Nombre = *req.Nombre
	}
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.MarcaResponse{}, translateStoreErr(err, "Marca no encontrada")
	}
	return mapMarca(*m), nil
}

func (s *marcaService) Eliminar(ctx context.Context, id int) (dto.MarcaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.MarcaResponse{}, translateStoreErr(err, "Marca no encontrada")
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return dto.MarcaResponse{}, translateStoreErr(err, "Marca no encontrada")
	}
	return mapMarca(*m), nil
}

type PresentacionService interface {
	Crear(ctx context.Context, req dto.CrearPresentacionRequest) (dto.PresentacionResponse, error)
	Listar(ctx context.Context) ([]dto.PresentacionResponse, error)
	Obtener(ctx context.Context, id int) (dto.PresentacionResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarPresentacionRequest) (dto.PresentacionResponse, error)
	Eliminar(ctx context.Context, id int) (dto.PresentacionResponse, error)
}

type presentacionService struct {
	repo repository.PresentacionRepository
}

func NewPresentacionService(repo repository.PresentacionRepository) PresentacionService {
	return &presentacionService{repo: repo}
}

func mapPresentacion(p model.Presentacion) dto.PresentacionResponse {
	return dto.PresentacionResponse{
		IDPresentacion: p.IDPresentacion,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
	}
}

func (s *presentacionService) Crear(ctx context.Context, req dto.CrearPresentacionRequest) (dto.PresentacionResponse, error) {
	p := &model.Presentacion{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.PresentacionResponse{}, translateStoreErr(err, "Presentación no encontrada")
	}
	return mapPresentacion(*p), nil
}

func (s *presentacionService) Listar(ctx context.Context) ([]dto.PresentacionResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PresentacionResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPresentacion(p))
	}
	return result, nil
}

func (s *presentacionService) Obtener(ctx context.Context, id int) (dto.PresentacionResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PresentacionResponse{}, translateStoreErr(err, "Presentación no encontrada")
	}
	return mapPresentacion(*p), nil
}

func (s *presentacionService) Actualizar(ctx context.Context, id int, req dto.ActualizarPresentacionRequest) (dto.PresentacionResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PresentacionResponse{}, translateStoreErr(err, "Presentación no encontrada")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.PresentacionResponse{}, translateStoreErr(err, "Presentación no encontrada")
	}
	return mapPresentacion(*p), nil
}

func (s *presentacionService) Eliminar(ctx context.Context, id int) (dto.PresentacionResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PresentacionResponse{}, translateStoreErr(err, "Presentación no encontrada")
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return dto.PresentacionResponse{}, translateStoreErr(err, "Presentación no encontrada")
	}
	return mapPresentacion(*p), nil
}
