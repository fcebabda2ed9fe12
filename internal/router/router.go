package router

import (
	"time"

	"github.com/ElBerserker/apis-sucursal/internal/config"
	"github.com/ElBerserker/apis-sucursal/internal/handler"
	"github.com/ElBerserker/apis-sucursal/internal/middleware"
	"github.com/ElBerserker/apis-sucursal/internal/repository"
	"github.com/ElBerserker/apis-sucursal/internal/service"
	"github.com/ElBerserker/apis-sucursal/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	marcaRepo := repository.NewMarcaRepository(db)
	presentacionRepo := repository.NewPresentacionRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	rolRepo := repository.NewRolRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	sesionRepo := repository.NewSesionRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	detalleCompraRepo := repository.NewDetalleCompraRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	detalleVentaRepo := repository.NewDetalleVentaRepository(db)

	// Worker dispatcher, injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	marcaSvc := service.NewMarcaService(marcaRepo)
	presentacionSvc := service.NewPresentacionService(presentacionRepo)
	productoSvc := service.NewProductoService(productoRepo, dispatcher)
	clienteSvc := service.NewClienteService(clienteRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	rolSvc := service.NewRolService(rolRepo)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, cfg)
	sesionSvc := service.NewSesionService(sesionRepo)
	compraSvc := service.NewCompraService(compraRepo, dispatcher, cfg.PDFStoragePath)
	detalleCompraSvc := service.NewDetalleCompraService(detalleCompraRepo, dispatcher)
	ventaSvc := service.NewVentaService(ventaRepo, dispatcher, cfg.PDFStoragePath)
	detalleVentaSvc := service.NewDetalleVentaService(detalleVentaRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	marcasH := handler.NewMarcasHandler(marcaSvc)
	presentacionesH := handler.NewPresentacionesHandler(presentacionSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	rolesH := handler.NewRolesHandler(rolSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	sesionesH := handler.NewSesionesHandler(sesionSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	detallesCompraH := handler.NewDetallesCompraHandler(detalleCompraSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	detallesVentaH := handler.NewDetallesVentaHandler(detalleVentaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	categoria := r.Group("/categoria")
	{
		categoria.GET("", categoriasH.Listar)
		categoria.GET("/:id", categoriasH.Obtener)
		categoria.POST("/nueva_categoria", categoriasH.Crear)
		categoria.PUT("/actualizar_categoria/:id", categoriasH.Actualizar)
		categoria.DELETE("/eliminar_categoria/:id", categoriasH.Eliminar)
	}

	marca := r.Group("/marca")
	{
		marca.GET("", marcasH.Listar)
		marca.GET("/:id", marcasH.Obtener)
		marca.POST("/nueva_marca", marcasH.Crear)
		marca.PUT("/actualizar_marca/:id", marcasH.Actualizar)
		marca.DELETE("/eliminar_marca/:id", marcasH.Eliminar)
	}

	presentacion := r.Group("/presentacion")
	{
		presentacion.GET("", presentacionesH.Listar)
		presentacion.GET("/:id", presentacionesH.Obtener)
		presentacion.POST("/nueva_presentacion", presentacionesH.Crear)
		presentacion.PUT("/actualizar_presentacion/:id", presentacionesH.Actualizar)
		presentacion.DELETE("/eliminar_presentacion/:id", presentacionesH.Eliminar)
	}

	producto := r.Group("/producto")
	{
		producto.GET("", productosH.Listar)
		producto.GET("/disponibles", productosH.ListarDisponibles)
		producto.GET("/:codigo_barras", productosH.Obtener)
		producto.POST("/nuevo_producto", productosH.Crear)
		producto.PUT("/actualizar_producto/:codigo_barras", productosH.Actualizar)
		producto.DELETE("/eliminar_producto/:codigo_barras", productosH.Eliminar)
	}

	cliente := r.Group("/cliente")
	{
		cliente.GET("", clientesH.Listar)
		cliente.GET("/:clv_cliente", clientesH.Obtener)
		cliente.POST("/nuevo_cliente", clientesH.Crear)
		cliente.PUT("/actualizar_cliente/:clv_cliente", clientesH.Actualizar)
		cliente.DELETE("/eliminar_cliente/:clv_cliente", clientesH.Eliminar)
	}

	proveedor := r.Group("/proveedor")
	{
		proveedor.GET("", proveedoresH.Listar)
		proveedor.GET("/:rfc_proveedor", proveedoresH.Obtener)
		proveedor.POST("/nuevo_proveedor", proveedoresH.Crear)
		proveedor.PUT("/actualizar_proveedor/:rfc_proveedor", proveedoresH.Actualizar)
		proveedor.DELETE("/eliminar_proveedor/:rfc_proveedor", proveedoresH.Eliminar)
	}

	rol := r.Group("/rol")
	{
		rol.GET("", rolesH.Listar)
		rol.GET("/:id", rolesH.Obtener)
		rol.POST("/nuevo_rol", rolesH.Crear)
		rol.PUT("/actualizar_rol/:id", rolesH.Actualizar)
		rol.DELETE("/eliminar_rol/:id", rolesH.Eliminar)
	}

	usuario := r.Group("/usuario")
	{
		usuario.GET("", usuariosH.Listar)
		usuario.GET("/:clv_usuario", usuariosH.Obtener)
		usuario.POST("/nuevo_usuario", usuariosH.Crear)
		usuario.POST("/validar_usuario", middleware.ValidacionRateLimiter(), usuariosH.Validar)
		usuario.PUT("/actualizar_usuario/:clv_usuario", usuariosH.Actualizar)
		usuario.DELETE("/eliminar_usuario/:clv_usuario", usuariosH.Eliminar)
	}

	sesion := r.Group("/sesion")
	{
		sesion.GET("", sesionesH.Listar)
		sesion.GET("/activa/:clv_usuario", sesionesH.Activa)
		sesion.GET("/:folio_sesion", sesionesH.Obtener)
		sesion.POST("/nueva_sesion", sesionesH.Crear)
		sesion.PUT("/actualizar_sesion/:folio_sesion", sesionesH.Actualizar)
		sesion.DELETE("/eliminar_sesion/:folio_sesion", sesionesH.Eliminar)
	}

	compra := r.Group("/compra")
	{
		compra.GET("", comprasH.Listar)
		compra.GET("/reporte/:folio_compra", comprasH.Reporte)
		compra.GET("/:folio_compra", comprasH.Obtener)
		compra.POST("/nueva_compra", comprasH.Crear)
		compra.PUT("/actualizar_compra/:folio_compra", comprasH.Actualizar)
		compra.DELETE("/eliminar_compra/:folio_compra", comprasH.Eliminar)
	}

	detalleCompra := r.Group("/detalle_compra")
	{
		detalleCompra.GET("", detallesCompraH.Listar)
		detalleCompra.GET("/:id", detallesCompraH.Obtener)
		detalleCompra.POST("", detallesCompraH.Crear)
		detalleCompra.PUT("/:id", detallesCompraH.Actualizar)
		detalleCompra.DELETE("/:id", detallesCompraH.Eliminar)
	}

	venta := r.Group("/venta")
	{
		venta.GET("", ventasH.Listar)
		venta.GET("/reporte/:folio_venta", ventasH.Reporte)
		venta.GET("/:folio_venta", ventasH.Obtener)
		venta.POST("/nueva_venta", ventasH.Crear)
		venta.PUT("/actualizar_venta/:folio_venta", ventasH.Actualizar)
		venta.DELETE("/eliminar_venta/:folio_venta", ventasH.Eliminar)
	}

	detalleVenta := r.Group("/detalle_venta")
	{
		detalleVenta.GET("", detallesVentaH.Listar)
		detalleVenta.GET("/:id", detallesVentaH.Obtener)
		detalleVenta.POST("", detallesVentaH.Crear)
		detalleVenta.PUT("/:id", detallesVentaH.Actualizar)
		detalleVenta.DELETE("/:id", detallesVentaH.Eliminar)
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
