package model

import "time"

// EstadoSesionActiva is the literal status a session must carry to count as
// the user's active session.
const EstadoSesionActiva = "activa"

// Sesion is a bounded time-window of user activity. Estado is free text; the
// schema does not enforce one active session per user, so activeSessionFor
// resolves ties by folio order.
type Sesion struct {
	FolioSesion string    `gorm:"column:folio_sesion;primaryKey;size:18"`
	ClvUsuario  *string   `gorm:"column:clv_usuario;size:18"`
	FechaInicio time.Time `gorm:"type:date;not null"`
	FechaFinal  time.Time `gorm:"type:date;not null"`
	Estado      string    `gorm:"not null"`

	Usuario *Usuario `gorm:"foreignKey:ClvUsuario;constraint:OnDelete:RESTRICT"`
}

func (Sesion) TableName() string { return "sesion" }
