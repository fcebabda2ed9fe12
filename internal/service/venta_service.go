package service

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/infra"
	"github.com/ElBerserker/apis-sucursal/internal/model"
	"github.com/ElBerserker/apis-sucursal/internal/repository"

	"github.com/rs/zerolog/log"
)

type VentaService interface {
	Crear(ctx context.Context, req dto.CrearVentaRequest) (dto.VentaResponse, error)
	Listar(ctx context.Context) ([]dto.VentaResponse, error)
	Obtener(ctx context.Context, folio string) (dto.VentaResponse, error)
	Actualizar(ctx context.Context, folio string, req dto.ActualizarVentaRequest) (dto.VentaResponse, error)
	Eliminar(ctx context.Context, folio string) (dto.VentaResponse, error)
	Reporte(ctx context.Context, folio string) (string, error)
}

type ventaService struct {
	repo       repository.VentaRepository
	dispatcher Dispatcher
	pdfPath    string
}

func NewVentaService(repo repository.VentaRepository, dispatcher Dispatcher, pdfPath string) VentaService {
	return &ventaService{repo: repo, dispatcher: dispatcher, pdfPath: pdfPath}
}

func mapVenta(v model.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		FolioVenta:  v.FolioVenta,
		FolioSesion: v.FolioSesion,
		ClvCliente:  v.ClvCliente,
		FechaVenta:  formatFecha(v.FechaVenta),
		TotalVenta:  v.TotalVenta,
	}
}

func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (dto.VentaResponse, error) {
	fecha, err := parseFecha("fecha_venta", req.FechaVenta)
	if err != nil {
		return dto.VentaResponse{}, err
	}
	v := &model.Venta{
		FolioVenta:  req.FolioVenta,
		FolioSesion: req.FolioSesion,
		ClvCliente:  req.ClvCliente,
		FechaVenta:  fecha,
		TotalVenta:  *req.TotalVenta,
	}
	if err := s.repo.Crear(ctx, v); err != nil {
		return dto.VentaResponse{}, translateStoreErr(err, "Venta no encontrada")
	}
	s.reconciliar(ctx, v.FolioVenta)
	return mapVenta(*v), nil
}

func (s *ventaService) Listar(ctx context.Context) ([]dto.VentaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		result = append(result, mapVenta(v))
	}
	return result, nil
}

func (s *ventaService) Obtener(ctx context.Context, folio string) (dto.VentaResponse, error) {
	v, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return dto.VentaResponse{}, translateStoreErr(err, "Venta no encontrada")
	}
	return mapVenta(*v), nil
}

func (s *ventaService) Actualizar(ctx context.Context, folio string, req dto.ActualizarVentaRequest) (dto.VentaResponse, error) {
	v, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return dto.VentaResponse{}, translateStoreErr(err, "Venta no encontrada")
	}
	if req.FolioSesion != nil {
		v.FolioSesion = *req.FolioSesion
	}
	if req.ClvCliente != nil {
		v.ClvCliente = *req.ClvCliente
	}
	if req.FechaVenta != nil {
		fecha, err := parseFecha("fecha_venta", *req.FechaVenta)
		if err != nil {
			return dto.VentaResponse{}, err
		}
		v.FechaVenta = fecha
	}
	if req.TotalVenta != nil {
		v.TotalVenta = *req.TotalVenta
	}
	if err := s.repo.Actualizar(ctx, v); err != nil {
		return dto.VentaResponse{}, translateStoreErr(err, "Venta no encontrada")
	}
	s.reconciliar(ctx, v.FolioVenta)
	return mapVenta(*v), nil
}

func (s *ventaService) Eliminar(ctx context.Context, folio string) (dto.VentaResponse, error) {
	v, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return dto.VentaResponse{}, translateStoreErr(err, "Venta no encontrada")
	}
	if err := s.repo.Eliminar(ctx, folio); err != nil {
		return dto.VentaResponse{}, translateStoreErr(err, "Venta no encontrada")
	}
	return mapVenta(*v), nil
}

func (s *ventaService) Reporte(ctx context.Context, folio string) (string, error) {
	v, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return "", translateStoreErr(err, "Venta no encontrada")
	}
	detalles, err := s.repo.ListarDetalles(ctx, folio)
	if err != nil {
		return "", err
	}
	lineas := make([]infra.ReporteLinea, 0, len(detalles))
	for _, d := range detalles {
		lineas = append(lineas, infra.ReporteLinea{
			CodigoBarras: d.CodigoBarras,
			Cantidad:     d.Cantidad,
			Precio:       d.PrecioVenta,
		})
	}
	rep := infra.Reporte{
		Titulo:  "Reporte de Venta",
		Folio:   v.FolioVenta,
		Fecha:   formatFecha(v.FechaVenta),
		Tercero: "Cliente: " + v.ClvCliente,
		Total:   v.TotalVenta,
		Lineas:  lineas,
	}
	return infra.GenerateReportePDF(rep, s.pdfPath)
}

func (s *ventaService) reconciliar(ctx context.Context, folio string) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.EnqueueReconciliacion(ctx, "venta", folio); err != nil {
		log.Warn().Err(err).Str("folio_venta", folio).Msg("no se pudo encolar la reconciliación")
	}
}

type DetalleVentaService interface {
	Crear(ctx context.Context, req dto.CrearDetalleVentaRequest) (dto.DetalleVentaResponse, error)
	Listar(ctx context.Context) ([]dto.DetalleVentaResponse, error)
	Obtener(ctx context.Context, id int) (dto.DetalleVentaResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarDetalleVentaRequest) (dto.DetalleVentaResponse, error)
	Eliminar(ctx context.Context, id int) (dto.DetalleVentaResponse, error)
}

type detalleVentaService struct {
	repo       repository.DetalleVentaRepository
	dispatcher Dispatcher
}

func NewDetalleVentaService(repo repository.DetalleVentaRepository, dispatcher Dispatcher) DetalleVentaService {
	return &detalleVentaService{repo: repo, dispatcher: dispatcher}
}

func mapDetalleVenta(d model.DetalleVenta) dto.DetalleVentaResponse {
	return dto.DetalleVentaResponse{
		IDDetalleVenta: d.IDDetalleVenta,
		FolioVenta:     d.FolioVenta,
		CodigoBarras:   d.CodigoBarras,
		Cantidad:       d.Cantidad,
		PrecioVenta:    d.PrecioVenta,
	}
}

func (s *detalleVentaService) Crear(ctx context.Context, req dto.CrearDetalleVentaRequest) (dto.DetalleVentaResponse, error) {
	folio := req.FolioVenta
	d := &model.DetalleVenta{
		FolioVenta:   &folio,
		CodigoBarras: req.CodigoBarras,
		Cantidad:     *req.Cantidad,
		PrecioVenta:  *req.PrecioVenta,
	}
	if err := s.repo.Crear(ctx, d); err != nil {
		return dto.DetalleVentaResponse{}, translateStoreErr(err, "Detalle de venta no encontrado")
	}
	s.reconciliar(ctx, d.FolioVenta)
	return mapDetalleVenta(*d), nil
}

func (s *detalleVentaService) Listar(ctx context.Context) ([]dto.DetalleVentaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.DetalleVentaResponse, 0, len(list))
	for _, d := range list {
		result = append(result, mapDetalleVenta(d))
	}
	return result, nil
}

func (s *detalleVentaService) Obtener(ctx context.Context, id int) (dto.DetalleVentaResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.DetalleVentaResponse{}, translateStoreErr(err, "Detalle de venta no encontrado")
	}
	return mapDetalleVenta(*d), nil
}

func (s *detalleVentaService) Actualizar(ctx context.Context, id int, req dto.ActualizarDetalleVentaRequest) (dto.DetalleVentaResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.DetalleVentaResponse{}, translateStoreErr(err, "Detalle de venta no encontrado")
	}
	anterior := d.FolioVenta
	if req.FolioVenta != nil {
		d.FolioVenta = req.FolioVenta
	}
	if req.CodigoBarras != nil {
		d.CodigoBarras = *req.CodigoBarras
	}
	if req.Cantidad != nil {
		d.Cantidad = *req.Cantidad
	}
	if req.PrecioVenta != nil {
		d.PrecioVenta = *req.PrecioVenta
	}
	if err := s.repo.Actualizar(ctx, d); err != nil {
		return dto.DetalleVentaResponse{}, translateStoreErr(err, "Detalle de venta no encontrado")
	}
	s.reconciliar(ctx, d.FolioVenta)
	if anterior != nil && (d.FolioVenta == nil || *anterior != *d.FolioVenta) {
		s.reconciliar(ctx, anterior)
	}
	return mapDetalleVenta(*d), nil
}

func (s *detalleVentaService) Eliminar(ctx context.Context, id int) (dto.DetalleVentaResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.DetalleVentaResponse{}, translateStoreErr(err, "Detalle de venta no encontrado")
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return dto.DetalleVentaResponse{}, translateStoreErr(err, "Detalle de venta no encontrado")
	}
	s.reconciliar(ctx, d.FolioVenta)
	return mapDetalleVenta(*d), nil
}

func (s *detalleVentaService) reconciliar(ctx context.Context, folio *string) {
	if s.dispatcher == nil || folio == nil {
		return
	}
	if err := s.dispatcher.EnqueueReconciliacion(ctx, "venta", *folio); err != nil {
		log.Warn().Err(err).Str("folio_venta", *folio).Msg("no se pudo encolar la reconciliación")
	}
}
