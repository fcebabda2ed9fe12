package repository

import (
	"context"

	"github.com/ElBerserker/apis-sucursal/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	Listar(ctx context.Context) ([]model.Cliente, error)
	ObtenerPorClv(ctx context.Context, clv string) (*model.Cliente, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	Eliminar(ctx context.Context, clv string) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) Listar(ctx context.Context) ([]model.Cliente, error) {
	var list []model.Cliente
	err := r.db.WithContext(ctx).Order("clv_cliente asc").Find(&list).Error
	return list, err
}

func (r *clienteRepo) ObtenerPorClv(ctx context.Context, clv string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, "clv_cliente = ?", clv).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Actualizar(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Eliminar(ctx context.Context, clv string) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, "clv_cliente = ?", clv).Error
}

type ProveedorRepository interface {
	Crear(ctx context.Context, p *model.Proveedor) error
	Listar(ctx context.Context) ([]model.Proveedor, error)
	ObtenerPorRFC(ctx context.Context, rfc string) (*model.Proveedor, error)
	Actualizar(ctx context.Context, p *model.Proveedor) error
	Eliminar(ctx context.Context, rfc string) error
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) Crear(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) Listar(ctx context.Context) ([]model.Proveedor, error) {
	var list []model.Proveedor
	err := r.db.WithContext(ctx).Order("rfc_proveedor asc").Find(&list).Error
	return list, err
}

func (r *proveedorRepo) ObtenerPorRFC(ctx context.Context, rfc string) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).First(&p, "rfc_proveedor = ?", rfc).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) Actualizar(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proveedorRepo) Eliminar(ctx context.Context, rfc string) error {
	return r.db.WithContext(ctx).Delete(&model.Proveedor{}, "rfc_proveedor = ?", rfc).Error
}

type RolRepository interface {
	Crear(ctx context.Context, rol *model.Rol) error
	Listar(ctx context.Context) ([]model.Rol, error)
	ObtenerPorID(ctx context.Context, id int) (*model.Rol, error)
	Actualizar(ctx context.Context, rol *model.Rol) error
	Eliminar(ctx context.Context, id int) error
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) Crear(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepo) Listar(ctx context.Context) ([]model.Rol, error) {
	var list []model.Rol
	err := r.db.WithContext(ctx).Order("id_rol asc").Find(&list).Error
	return list, err
}

func (r *rolRepo) ObtenerPorID(ctx context.Context, id int) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).First(&rol, "id_rol = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) Actualizar(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Save(rol).Error
}

func (r *rolRepo) Eliminar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Rol{}, "id_rol = ?", id).Error
}

type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	Listar(ctx context.Context) ([]model.Usuario, error)
	ObtenerPorClv(ctx context.Context, clv string) (*model.Usuario, error)
	Actualizar(ctx context.Context, u *model.Usuario) error
	Eliminar(ctx context.Context, clv string) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Crear(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) Listar(ctx context.Context) ([]model.Usuario, error) {
	var list []model.Usuario
	err := r.db.WithContext(ctx).Order("clv_usuario asc").Find(&list).Error
	return list, err
}

func (r *usuarioRepo) ObtenerPorClv(ctx context.Context, clv string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "clv_usuario = ?", clv).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Actualizar(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) Eliminar(ctx context.Context, clv string) error {
	return r.db.WithContext(ctx).Delete(&model.Usuario{}, "clv_usuario = ?", clv).Error
}
