package service

import (
	"context"
	"errors"
	"time"

	"github.com/ElBerserker/apis-sucursal/internal/apierror"
	"github.com/ElBerserker/apis-sucursal/internal/config"
	"github.com/ElBerserker/apis-sucursal/internal/dto"
	"github.com/ElBerserker/apis-sucursal/internal/model"
	"github.com/ElBerserker/apis-sucursal/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UsuarioService interface {
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (dto.UsuarioResponse, error)
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	Obtener(ctx context.Context, clv string) (dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, clv string, req dto.ActualizarUsuarioRequest) (dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, clv string) (dto.UsuarioResponse, error)
	Validar(ctx context.Context, req dto.ValidarUsuarioRequest) (dto.ValidarUsuarioResponse, error)
}

type usuarioService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewUsuarioService(repo repository.UsuarioRepository, cfg *config.Config) UsuarioService {
	return &usuarioService{repo: repo, cfg: cfg}
}

func mapUsuario(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ClvUsuario: u.ClvUsuario,
		Nombre:     u.Nombre,
		Apellido1:  u.Apellido1,
		Apellido2:  u.Apellido2,
		Telefono:   u.Telefono,
		Correo:     u.Correo,
		Direccion:  u.Direccion,
		IDRol:      u.IDRol,
	}
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasenia), bcrypt.DefaultCost)
	if err != nil {
		return dto.UsuarioResponse{}, err
	}
	u := &model.Usuario{
		ClvUsuario:  req.ClvUsuario,
		Nombre:      req.Nombre,
		Apellido1:   req.Apellido1,
		Apellido2:   req.Apellido2,
		Telefono:    req.Telefono,
		Correo:      req.Correo,
		Direccion:   req.Direccion,
		IDRol:       req.IDRol,
		Contrasenia: string(hash),
	}
	if err := s.repo.Crear(ctx, u); err != nil {
		return dto.UsuarioResponse{}, translateStoreErr(err, "Usuario no encontrado")
	}
	return mapUsuario(*u), nil
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		result = append(result, mapUsuario(u))
	}
	return result, nil
}

func (s *usuarioService) Obtener(ctx context.Context, clv string) (dto.UsuarioResponse, error) {
	u, err := s.repo.ObtenerPorClv(ctx, clv)
	if err != nil {
		return dto.UsuarioResponse{}, translateStoreErr(err, "Usuario no encontrado")
	}
	return mapUsuario(*u), nil
}

func (s *usuarioService) Actualizar(ctx context.Context, clv string, req dto.ActualizarUsuarioRequest) (dto.UsuarioResponse, error) {
	u, err := s.repo.ObtenerPorClv(ctx, clv)
	if err != nil {
		return dto.UsuarioResponse{}, translateStoreErr(err, "Usuario no encontrado")
	}
	if req.Nombre != nil {
		u.Nombre = *req.Nombre
	}
	if req.Apellido1 != nil {
		u.Apellido1 = *req.Apellido1
	}
	if req.Apellido2 != nil {
		u.Apellido2 = *req.Apellido2
	}
	if req.Telefono != nil {
		u.Telefono = *req.Telefono
	}
	if req.Correo != nil {
		u.Correo = *req.Correo
	}
	if req.Direccion != nil {
		u.Direccion = *req.Direccion
	}
	if req.IDRol != nil {
		u.IDRol = req.IDRol
	}
	if req.Contrasenia != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Contrasenia), bcrypt.DefaultCost)
		if err != nil {
			return dto.UsuarioResponse{}, err
		}
		u.Contrasenia = string(hash)
	}
	if err := s.repo.Actualizar(ctx, u); err != nil {
		return dto.UsuarioResponse{}, translateStoreErr(err, "Usuario no encontrado")
	}
	return mapUsuario(*u), nil
}

func (s *usuarioService) Eliminar(ctx context.Context, clv string) (dto.UsuarioResponse, error) {
	u, err := s.repo.ObtenerPorClv(ctx, clv)
	if err != nil {
		return dto.UsuarioResponse{}, translateStoreErr(err, "Usuario no encontrado")
	}
	if err := s.repo.Eliminar(ctx, clv); err != nil {
		return dto.UsuarioResponse{}, translateStoreErr(err, "Usuario no encontrado")
	}
	return mapUsuario(*u), nil
}

// Validar checks credentials against the stored bcrypt hash. A missing user
// and a wrong password return the same message so the endpoint does not leak
// which claves exist.
func (s *usuarioService) Validar(ctx context.Context, req dto.ValidarUsuarioRequest) (dto.ValidarUsuarioResponse, error) {
	u, err := s.repo.ObtenerPorClv(ctx, req.ClvUsuario)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ValidarUsuarioResponse{}, apierror.Unauthorized("Usuario o contraseña incorrectos")
		}
		return dto.ValidarUsuarioResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Contrasenia), []byte(req.Contrasenia)); err != nil {
		return dto.ValidarUsuarioResponse{}, apierror.Unauthorized("Usuario o contraseña incorrectos")
	}

	token, err := s.generateToken(u)
	if err != nil {
		return dto.ValidarUsuarioResponse{}, err
	}
	return dto.ValidarUsuarioResponse{UsuarioResponse: mapUsuario(*u), Token: token}, nil
}

func (s *usuarioService) generateToken(u *model.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"clv_usuario": u.ClvUsuario,
		"id_rol":      u.IDRol,
		"exp":         time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(s.cfg.JWTSecret))
}
