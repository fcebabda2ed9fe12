package dto

// ── Cliente ───────────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	ClvCliente string `json:"clv_cliente" validate:"required"`
	Nombre     string `json:"nombre"      validate:"required"`
	Apellido1  string `json:"apellido1"   validate:"required"`
	Apellido2  string `json:"apellido2"   validate:"required"`
	Telefono   string `json:"telefono"    validate:"required"`
	Correo     string `json:"correo"      validate:"required"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Apellido1 *string `json:"apellido1"`
	Apellido2 *string `json:"apellido2"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo"`
}

type ClienteResponse struct {
	ClvCliente string `json:"clv_cliente"`
	Nombre     string `json:"nombre"`
	Apellido1  string `json:"apellido1"`
	Apellido2  string `json:"apellido2"`
	Telefono   string `json:"telefono"`
	Correo     string `json:"correo"`
}

// ── Proveedor ─────────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	RFCProveedor string `json:"rfc_proveedor" validate:"required"`
	Nombre       string `json:"nombre"        validate:"required"`
	Telefono     string `json:"telefono"      validate:"required"`
	Correo       string `json:"correo"        validate:"required"`
}

type ActualizarProveedorRequest struct {
	Nombre   *string `json:"nombre"`
	Telefono *string `json:"telefono"`
	Correo   *string `json:"correo"`
}

type ProveedorResponse struct {
	RFCProveedor string `json:"rfc_proveedor"`
	Nombre       string `json:"nombre"`
	Telefono     string `json:"telefono"`
	Correo       string `json:"correo"`
}

// ── Rol ───────────────────────────────────────────────────────────────────────

type CrearRolRequest struct {
	Nombre      string `json:"nombre"      validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

type ActualizarRolRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

type RolResponse struct {
	IDRol       int    `json:"id_rol"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// ── Usuario ───────────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	ClvUsuario  string `json:"clv_usuario" validate:"required"`
	Nombre      string `json:"nombre"      validate:"required"`
	Apellido1   string `json:"apellido1"   validate:"required"`
	Apellido2   string `json:"apellido2"   validate:"required"`
	Telefono    string `json:"telefono"    validate:"required"`
	Correo      string `json:"correo"      validate:"required"`
	Direccion   string `json:"direccion"   validate:"required"`
	IDRol       *int   `json:"id_rol"`
	Contrasenia string `json:"contrasenia" validate:"required"`
}

type ActualizarUsuarioRequest struct {
	Nombre      *string `json:"nombre"`
	Apellido1   *string `json:"apellido1"`
	Apellido2   *string `json:"apellido2"`
	Telefono    *string `json:"telefono"`
	Correo      *string `json:"correo"`
	Direccion   *string `json:"direccion"`
	IDRol       *int    `json:"id_rol"`
	Contrasenia *string `json:"contrasenia"`
}

// UsuarioResponse never carries the stored credential hash.
type UsuarioResponse struct {
	ClvUsuario string `json:"clv_usuario"`
	Nombre     string `json:"nombre"`
	Apellido1  string `json:"apellido1"`
	Apellido2  string `json:"apellido2"`
	Telefono   string `json:"telefono"`
	Correo     string `json:"correo"`
	Direccion  string `json:"direccion"`
	IDRol      *int   `json:"id_rol"`
}

type ValidarUsuarioRequest struct {
	ClvUsuario  string `json:"clv_usuario" validate:"required"`
	Contrasenia string `json:"contrasenia" validate:"required"`
}

// ValidarUsuarioResponse is the user row plus a signed session token.
type ValidarUsuarioResponse struct {
	UsuarioResponse
	Token string `json:"token"`
}
