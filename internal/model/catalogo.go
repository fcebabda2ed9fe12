package model

// Categoria classifies products. The FK on producto restricts on delete, so
// a category still referenced by any product cannot be removed.
type Categoria struct {
	IDCategoria int    `gorm:"column:id_categoria;primaryKey;autoIncrement"`
	Nombre      string `gorm:"not null"`
	Descripcion string `gorm:"not null"`
}

func (Categoria) TableName() string { return "categoria" }

type Marca struct {
	IDMarca int    `gorm:"column:id_marca;primaryKey;autoIncrement"`
	Nombre  string `gorm:"not null"`
}

func (Marca) TableName() string { return "marca" }

type Presentacion struct {
	IDPresentacion int    `gorm:"column:id_presentacion;primaryKey;autoIncrement"`
	Nombre         string `gorm:"not null"`
	Descripcion    string `gorm:"not null"`
}

func (Presentacion) TableName() string { return "presentacion" }
