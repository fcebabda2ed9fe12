package infra

import (
	"fmt"

	"github.com/ElBerserker/apis-sucursal/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// to create or update all tables, then applies idempotent SQL patches that
// AutoMigrate may skip on pre-existing schemas. TranslateError lets the
// service layer match gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
// instead of parsing pgx error strings.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates the schema. Referenced tables migrate before the
// tables that point at them so the FK constraints resolve on first run.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Categoria{},
		&model.Marca{},
		&model.Presentacion{},
		&model.Producto{},
		&model.Cliente{},
		&model.Proveedor{},
		&model.Rol{},
		&model.Usuario{},
		&model.Sesion{},
		&model.Compra{},
		&model.DetalleCompra{},
		&model.Venta{},
		&model.DetalleVenta{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches retrofits ON DELETE RESTRICT onto FKs that an earlier
// deployment created without an explicit delete rule. Every statement is
// guarded so re-running on an already-patched schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	type fk struct{ table, constraint, column, refTable, refColumn string }
	fks := []fk{
		{"producto", "fk_producto_categoria", "id_categoria", "categoria", "id_categoria"},
		{"producto", "fk_producto_presentacion", "id_presentacion", "presentacion", "id_presentacion"},
		{"producto", "fk_producto_marca", "id_marca", "marca", "id_marca"},
		{"usuario", "fk_usuario_rol", "id_rol", "rol", "id_rol"},
		{"sesion", "fk_sesion_usuario", "clv_usuario", "usuario", "clv_usuario"},
		{"compra", "fk_compra_sesion", "folio_sesion", "sesion", "folio_sesion"},
		{"compra", "fk_compra_proveedor", "rfc_proveedor", "proveedor", "rfc_proveedor"},
		{"detalle_compra", "fk_detalle_compra_compra", "folio_compra", "compra", "folio_compra"},
		{"detalle_compra", "fk_detalle_compra_producto", "codigo_barras", "producto", "codigo_barras"},
		{"venta", "fk_venta_sesion", "folio_sesion", "sesion", "folio_sesion"},
		{"venta", "fk_venta_cliente", "clv_cliente", "cliente", "clv_cliente"},
		{"detalle_venta", "fk_detalle_venta_venta", "folio_venta", "venta", "folio_venta"},
		{"detalle_venta", "fk_detalle_venta_producto", "codigo_barras", "producto", "codigo_barras"},
	}

	for _, f := range fks {
		stmt := fmt.Sprintf(`
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint
                 WHERE conrelid = to_regclass('%s') AND conname = '%s') THEN
    ALTER TABLE %s
      ADD CONSTRAINT %s
      FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE RESTRICT;
  END IF;
END $$`, f.table, f.constraint, f.table, f.constraint, f.column, f.refTable, f.refColumn)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("patch %s: %w", f.constraint, err)
		}
	}
	return nil
}
