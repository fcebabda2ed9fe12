package model

// Cliente is a sales counterparty, keyed by a caller-supplied clave.
type Cliente struct {
	ClvCliente string `gorm:"column:clv_cliente;primaryKey;size:18"`
	Nombre     string `gorm:"not null"`
	Apellido1  string `gorm:"not null"`
	Apellido2  string `gorm:"not null"`
	Telefono   string `gorm:"not null"`
	Correo     string `gorm:"not null"`
}

func (Cliente) TableName() string { return "cliente" }

// Proveedor is a purchase counterparty, keyed by its RFC.
type Proveedor struct {
	RFCProveedor string `gorm:"column:rfc_proveedor;primaryKey"`
	Nombre       string `gorm:"not null"`
	Telefono     string `gorm:"not null"`
	Correo       string `gorm:"not null"`
}

func (Proveedor) TableName() string { return "proveedor" }

// Rol groups users by permission level. Never cascading-deleted: the FK on
// usuario restricts while any user references it.
type Rol struct {
	IDRol       int    `gorm:"column:id_rol;primaryKey;autoIncrement"`
	Nombre      string `gorm:"not null"`
	Descripcion string `gorm:"not null"`
}

func (Rol) TableName() string { return "rol" }

// Usuario is a system operator. Contrasenia holds a bcrypt hash, never the
// plaintext secret, and is excluded from every API response.
type Usuario struct {
	ClvUsuario  string `gorm:"column:clv_usuario;primaryKey;size:18"`
	Nombre      string `gorm:"not null"`
	Apellido1   string `gorm:"not null"`
	Apellido2   string `gorm:"not null"`
	Telefono    string `gorm:"not null"`
	Correo      string `gorm:"not null"`
	Direccion   string `gorm:"not null"`
	IDRol       *int   `gorm:"column:id_rol"`
	Contrasenia string `gorm:"not null"`

	Rol *Rol `gorm:"foreignKey:IDRol;constraint:OnDelete:RESTRICT"`
}

func (Usuario) TableName() string { return "usuario" }
