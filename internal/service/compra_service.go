package service

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/infra"
	"github.com/ElBerserker/apis-sucursal/internal/model"
	"github.com/ElBerserker/apis-sucursal/internal/repository"

	"github.com/rs/zerolog/log"
)

type CompraService interface {
	Crear(ctx context.Context, req dto.CrearCompraRequest) (dto.CompraResponse, error)
	Listar(ctx context.Context) ([]dto.CompraResponse, error)
	Obtener(ctx context.Context, folio string) (dto.CompraResponse, error)
	Actualizar(ctx context.Context, folio string, req dto.ActualizarCompraRequest) (dto.CompraResponse, error)
	Eliminar(ctx context.Context, folio string) (dto.CompraResponse, error)
	// Reporte renders the header and its line items as a PDF and returns the
	// path of the generated file.
	Reporte(ctx context.Context, folio string) (string, error)
}

type compraService struct {
	repo       repository.CompraRepository
	dispatcher Dispatcher
	pdfPath    string
}

func NewCompraService(repo repository.CompraRepository, dispatcher Dispatcher, pdfPath string) CompraService {
	return &compraService{repo: repo, dispatcher: dispatcher, pdfPath: pdfPath}
}

func mapCompra(c model.Compra) dto.CompraResponse {
	return dto.CompraResponse{
		FolioCompra:  c.FolioCompra,
		FolioSesion:  c.FolioSesion,
		RFCProveedor: c.RFCProveedor,
		FechaCompra:  formatFecha(c.FechaCompra),
		TotalCompra:  c.TotalCompra,
	}
}

func (s *compraService) Crear(ctx context.Context, req dto.CrearCompraRequest) (dto.CompraResponse, error) {
	fecha, err := parseFecha("fecha_compra", req.FechaCompra)
	if err != nil {
		return dto.CompraResponse{}, err
	}
	c := &model.Compra{
		FolioCompra:  req.FolioCompra,
		FolioSesion:  req.FolioSesion,
		RFCProveedor: req.RFCProveedor,
		FechaCompra:  fecha,
		TotalCompra:  *req.TotalCompra,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.CompraResponse{}, translateStoreErr(err, "Compra no encontrada")
	}
	s.reconciliar(ctx, c.FolioCompra)
	return mapCompra(*c), nil
}

func (s *compraService) Listar(ctx context.Context) ([]dto.CompraResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CompraResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCompra(c))
	}
	return result, nil
}

func (s *compraService) Obtener(ctx context.Context, folio string) (dto.CompraResponse, error) {
	c, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return dto.CompraResponse{}, translateStoreErr(err, "Compra no encontrada")
	}
	return mapCompra(*c), nil
}

func (s *compraService) Actualizar(ctx context.Context, folio string, req dto.ActualizarCompraRequest) (dto.CompraResponse, error) {
	c, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return dto.CompraResponse{}, translateStoreErr(err, "Compra no encontrada")
	}
	if req.FolioSesion != nil {
		c.FolioSesion = *req.FolioSesion
	}
	if req.RFCProveedor != nil {
		c.RFCProveedor = *req.RFCProveedor
	}
	if req.FechaCompra != nil {
		fecha, err := parseFecha("fecha_compra", *req.FechaCompra)
		if err != nil {
			return dto.CompraResponse{}, err
		}
		c.FechaCompra = fecha
	}
	if req.TotalCompra != nil {
		c.TotalCompra = *req.TotalCompra
	}
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.CompraResponse{}, translateStoreErr(err, "Compra no encontrada")
	}
	s.reconciliar(ctx, c.FolioCompra)
	return mapCompra(*c), nil
}

func (s *compraService) Eliminar(ctx context.Context, folio string) (dto.CompraResponse, error) {
	c, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return dto.CompraResponse{}, translateStoreErr(err, "Compra no encontrada")
	}
	if err := s.repo.Eliminar(ctx, folio); err != nil {
		return dto.CompraResponse{}, translateStoreErr(err, "Compra no encontrada")
	}
	return mapCompra(*c), nil
}

func (s *compraService) Reporte(ctx context.Context, folio string) (string, error) {
	c, err := s.repo.ObtenerPorFolio(ctx, folio)
	if err != nil {
		return "", translateStoreErr(err, "Compra no encontrada")
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
			Precio:       d.PrecioCompra,
		})
	}
	rep := infra.Reporte{
		Titulo:  "Reporte de Compra",
		Folio:   c.FolioCompra,
		Fecha:   formatFecha(c.FechaCompra),
		Tercero: "Proveedor: " + c.RFCProveedor,
		Total:   c.TotalCompra,
		Lineas:  lineas,
	}
	return infra.GenerateReportePDF(rep, s.pdfPath)
}

// reconciliar queues an advisory total check. Queue trouble never fails the
// request that triggered it.
func (s *compraService) reconciliar(ctx context.Context, folio string) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.EnqueueReconciliacion(ctx, "compra", folio); err != nil {
		log.Warn().Err(err).Str("folio_compra", folio).Msg("no se pudo encolar la reconciliación")
	}
}

type DetalleCompraService interface {
	Crear(ctx context.Context, req dto.CrearDetalleCompraRequest) (dto.DetalleCompraResponse, error)
	Listar(ctx context.Context) ([]dto.DetalleCompraResponse, error)
	Obtener(ctx context.Context, id int) (dto.DetalleCompraResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarDetalleCompraRequest) (dto.DetalleCompraResponse, error)
	Eliminar(ctx context.Context, id int) (dto.DetalleCompraResponse, error)
}

type detalleCompraService struct {
	repo       repository.DetalleCompraRepository
	dispatcher Dispatcher
}

func NewDetalleCompraService(repo repository.DetalleCompraRepository, dispatcher Dispatcher) DetalleCompraService {
	return &detalleCompraService{repo: repo, dispatcher: dispatcher}
}

func mapDetalleCompra(d model.DetalleCompra) dto.DetalleCompraResponse {
	return dto.DetalleCompraResponse{
		IDDetalleCompra: d.IDDetalleCompra,
		FolioCompra:     d.FolioCompra,
		CodigoBarras:    d.CodigoBarras,
		Cantidad:        d.Cantidad,
		PrecioCompra:    d.PrecioCompra,
	}
}

func (s *detalleCompraService) Crear(ctx context.Context, req dto.CrearDetalleCompraRequest) (dto.DetalleCompraResponse, error) {
	folio := req.FolioCompra
	d := &model.DetalleCompra{
		FolioCompra:  &folio,
		CodigoBarras: req.CodigoBarras,
		Cantidad:     *req.Cantidad,
		PrecioCompra: *req.PrecioCompra,
	}
	if err := s.repo.Crear(ctx, d); err != nil {
		return dto.DetalleCompraResponse{}, translateStoreErr(err, "Detalle de compra no encontrado")
	}
	s.reconciliar(ctx, d.FolioCompra)
	return mapDetalleCompra(*d), nil
}

func (s *detalleCompraService) Listar(ctx context.Context) ([]dto.DetalleCompraResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.DetalleCompraResponse, 0, len(list))
	for _, d := range list {
		result = append(result, mapDetalleCompra(d))
	}
	return result, nil
}

func (s *detalleCompraService) Obtener(ctx context.Context, id int) (dto.DetalleCompraResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.DetalleCompraResponse{}, translateStoreErr(err, "Detalle de compra no encontrado")
	}
	return mapDetalleCompra(*d), nil
}

func (s *detalleCompraService) Actualizar(ctx context.Context, id int, req dto.ActualizarDetalleCompraRequest) (dto.DetalleCompraResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.DetalleCompraResponse{}, translateStoreErr(err, "Detalle de compra no encontrado")
	}
	anterior := d.FolioCompra
	if req.FolioCompra != nil {
		d.FolioCompra = req.FolioCompra
	}
	if req.CodigoBarras != nil {
		d.CodigoBarras = *req.CodigoBarras
	}
	if req.Cantidad != nil {
		d.Cantidad = *req.Cantidad
	}
	if req.PrecioCompra != nil {
		d.PrecioCompra = *req.PrecioCompra
	}
	if err := s.repo.Actualizar(ctx, d); err != nil {
		return dto.DetalleCompraResponse{}, translateStoreErr(err, "Detalle de compra no encontrado")
	}
	s.reconciliar(ctx, d.FolioCompra)
	if anterior != nil && (d.FolioCompra == nil || *anterior != *d.FolioCompra) {
		// Reparenting also shifts the old header's sum.
		s.reconciliar(ctx, anterior)
	}
	return mapDetalleCompra(*d), nil
}

func (s *detalleCompraService) Eliminar(ctx context.Context, id int) (dto.DetalleCompraResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.DetalleCompraResponse{}, translateStoreErr(err, "Detalle de compra no encontrado")
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return dto.DetalleCompraResponse{}, translateStoreErr(err, "Detalle de compra no encontrado")
	}
	s.reconciliar(ctx, d.FolioCompra)
	return mapDetalleCompra(*d), nil
}

func (s *detalleCompraService) reconciliar(ctx context.Context, folio *string) {
	if s.dispatcher == nil || folio == nil {
		return
	}
	if err := s.dispatcher.EnqueueReconciliacion(ctx, "compra", *folio); err != nil {
		log.Warn().Err(err).Str("folio_compra", *folio).Msg("no se pudo encolar la reconciliación")
	}
}
