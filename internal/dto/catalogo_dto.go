package dto

// ── Categoria ─────────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre"      validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

type CategoriaResponse struct {
	IDCategoria int    `json:"id_categoria"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// ── Marca ─────────────────────────────────────────────────────────────────────

type CrearMarcaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type ActualizarMarcaRequest struct {
	Nombre *string `json:"nombre"`
}

type MarcaResponse struct {
	IDMarca int    `json:"id_marca"`
	Nombre  string `json:"nombre"`
}

// ── Presentacion ──────────────────────────────────────────────────────────────

type CrearPresentacionRequest struct {
	Nombre      string `json:"nombre"      validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

type ActualizarPresentacionRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

type PresentacionResponse struct {
	IDPresentacion int    `json:"id_presentacion"`
	Nombre         string `json:"nombre"`
	Descripcion    string `json:"descripcion"`
}
