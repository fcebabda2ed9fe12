package service

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/model"
	"github.com/ElBerserker/apis-sucursal/internal/repository"

	"github.com/rs/zerolog/log"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	// ListarDisponibles returns exactly the products with cantidad_actual > 0.
	ListarDisponibles(ctx context.Context) ([]dto.ProductoResponse, error)
	Obtener(ctx context.Context, codigoBarras string) (dto.ProductoResponse, error)
	Actualizar(ctx context.Context, codigoBarras string, req dto.ActualizarProductoRequest) (dto.ProductoResponse, error)
	Eliminar(ctx context.Context, codigoBarras string) (dto.ProductoResponse, error)
}

type productoService struct {
	repo       repository.ProductoRepository
	dispatcher Dispatcher
}

func NewProductoService(repo repository.ProductoRepository, dispatcher Dispatcher) ProductoService {
	return &productoService{repo: repo, dispatcher: dispatcher}
}

func mapProducto(p model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		CodigoBarras:   p.CodigoBarras,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		IDCategoria:    p.IDCategoria,
		IDPresentacion: p.IDPresentacion,
		IDMarca:        p.IDMarca,
		CantidadActual: p.CantidadActual,
		CantidadMaxima: p.CantidadMaxima,
		CantidadMinima: p.CantidadMinima,
		Precio:         p.Precio,
		Estado:         p.Estado,
	}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error) {
	p := &model.Producto{
		CodigoBarras:   req.CodigoBarras,
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		IDCategoria:    req.IDCategoria,
		IDPresentacion: req.IDPresentacion,
		IDMarca:        req.IDMarca,
		CantidadActual: *req.CantidadActual,
		CantidadMaxima: *req.CantidadMaxima,
		CantidadMinima: *req.CantidadMinima,
		Precio:         *req.Precio,
		Estado:         req.Estado,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.ProductoResponse{}, translateStoreErr(err, "Producto no encontrado")
	}
	s.alertarStockBajo(ctx, p)
	return mapProducto(*p), nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return mapProductos(list), nil
}

func (s *productoService) ListarDisponibles(ctx context.Context) ([]dto.ProductoResponse, error) {
	list, err := s.repo.ListarDisponibles(ctx)
	if err != nil {
		return nil, err
	}
	return mapProductos(list), nil
}

func mapProductos(list []model.Producto) []dto.ProductoResponse {
	result := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProducto(p))
	}
	return result
}

func (s *productoService) Obtener(ctx context.Context, codigoBarras string) (dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorCodigo(ctx, codigoBarras)
	if err != nil {
		return dto.ProductoResponse{}, translateStoreErr(err, "Producto no encontrado")
	}
	return mapProducto(*p), nil
}

func (s *productoService) Actualizar(ctx context.Context, codigoBarras string, req dto.ActualizarProductoRequest) (dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorCodigo(ctx, codigoBarras)
	if err != nil {
		return dto.ProductoResponse{}, translateStoreErr(err, "Producto no encontrado")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.IDCategoria != nil {
		p.IDCategoria = req.IDCategoria
	}
	if req.IDPresentacion != nil {
		p.IDPresentacion = req.IDPresentacion
	}
	if req.IDMarca != nil {
		p.IDMarca = req.IDMarca
	}
	if req.CantidadActual != nil {
		p.CantidadActual = *req.CantidadActual
	}
	if req.CantidadMaxima != nil {
		p.CantidadMaxima = *req.CantidadMaxima
	}
	if req.CantidadMinima != nil {
		p.CantidadMinima = *req.CantidadMinima
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.ProductoResponse{}, translateStoreErr(err, "Producto no encontrado")
	}
	s.alertarStockBajo(ctx, p)
	return mapProducto(*p), nil
}

func (s *productoService) Eliminar(ctx context.Context, codigoBarras string) (dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorCodigo(ctx, codigoBarras)
	if err != nil {
		return dto.ProductoResponse{}, translateStoreErr(err, "Producto no encontrado")
	}
	if err := s.repo.Eliminar(ctx, codigoBarras); err != nil {
		return dto.ProductoResponse{}, translateStoreErr(err, "Producto no encontrado")
	}
	return mapProducto(*p), nil
}

// alertarStockBajo enqueues a low-stock email when the product sits at or
// below its minimum. Advisory: an enqueue failure never fails the request.
func (s *productoService) alertarStockBajo(ctx context.Context, p *model.Producto) {
	if s.dispatcher == nil || p.CantidadActual > p.CantidadMinima {
		return
	}
	err := s.dispatcher.EnqueueAlertaStock(ctx, p.CodigoBarras, p.Nombre, p.CantidadActual, p.CantidadMinima)
	if err != nil {
		log.Warn().Err(err).Str("codigo_barras", p.CodigoBarras).Msg("no se pudo encolar alerta de stock")
	}
}
