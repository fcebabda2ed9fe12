package dto

// Dates travel as YYYY-MM-DD strings and are parsed at the service boundary;
// a malformed date is a 400, never a panic.

type CrearSesionRequest struct {
	FolioSesion string  `json:"folio_sesion" validate:"required"`
	ClvUsuario  *string `json:"clv_usuario"`
	FechaInicio string  `json:"fecha_inicio" validate:"required"`
	FechaFinal  string  `json:"fecha_final"  validate:"required"`
	Estado      string  `json:"estado"       validate:"required"`
}

type ActualizarSesionRequest struct {
	ClvUsuario  *string `json:"clv_usuario"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFinal  *string `json:"fecha_final"`
	Estado      *string `json:"estado"`
}

type SesionResponse struct {
	FolioSesion string  `json:"folio_sesion"`
	ClvUsuario  *string `json:"clv_usuario"`
	FechaInicio string  `json:"fecha_inicio"`
	FechaFinal  string  `json:"fecha_final"`
	Estado      string  `json:"estado"`
}

// SesionActivaResponse answers GET /sesion/activa/<clv_usuario>.
type SesionActivaResponse struct {
	Activa      bool    `json:"activa"`
	FolioSesion *string `json:"folio_sesion"`
}
