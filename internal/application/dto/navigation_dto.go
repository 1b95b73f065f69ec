package dto

// PaletteDTO colores del tema del sector.
type PaletteDTO struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

// StateResponse estado compuesto de sesión + sector del perfil.
type StateResponse struct {
	IsAuthenticated bool             `json:"isAuthenticated"`
	IsLoading       bool             `json:"isLoading"`
	User            *SessionResponse `json:"user"`
	Sector          *string          `json:"sector"`
	Theme           PaletteDTO       `json:"theme"`
}

// RouteDecisionDTO decisión del resolver para una ruta.
type RouteDecisionDTO struct {
	Path    string `json:"path"`
	Action  string `json:"action"` // render | redirect | loading
	Page    string `json:"page,omitempty"`
	Target  string `json:"target,omitempty"`
	Subpath string `json:"subpath,omitempty"`
	View    string `json:"view,omitempty"` // página interna del dashboard
}

// RouteResponse decisión inmediata más la cadena de redirecciones hasta el render final.
type RouteResponse struct {
	Requested string           `json:"requested"`
	Decision  RouteDecisionDTO `json:"decision"`
	Final     RouteDecisionDTO `json:"final"`
	Hops      []string         `json:"hops"`
}

// MenuItemDTO entrada del sidebar del dashboard.
type MenuItemDTO struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// MenuResponse sidebar completo con la insignia del sector.
type MenuResponse struct {
	Sector      string        `json:"sector"`
	SectorLabel string        `json:"sectorLabel"`
	Accent      string        `json:"accent"`
	Items       []MenuItemDTO `json:"items"`
}

// SectorOptionDTO tarjeta de la pantalla de selección de sector.
type SectorOptionDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Features    []string `json:"features"`
}

// SetSectorRequest entrada de PUT /api/sector.
type SetSectorRequest struct {
	Sector string `json:"sector"`
}

// SectorResponse sector guardado y tema resultante.
type SectorResponse struct {
	Sector string     `json:"sector"`
	Theme  PaletteDTO `json:"theme"`
	Next   string     `json:"next"`
}
