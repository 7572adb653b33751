package dto

// GenerateLinkRequest body para POST /api/session/links.
type GenerateLinkRequest struct {
	ModuleID int64 `json:"module_id"`
}

// GenerateLinkResponse enlace de traspaso listo para compartir.
type GenerateLinkResponse struct {
	Link string `json:"link"`
}
