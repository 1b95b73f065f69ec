// Package theme resuelve la paleta de colores de cada sector.
// Todas las paletas comparten la base y solo cambian el color de acento.
package theme

import "github.com/jhoicas/sectorflow-api/internal/domain/entity"

// Colors colores de la paleta.
type Colors struct {
	Primary        string `json:"primary"`
	Secondary      string `json:"secondary"`
	Accent         string `json:"accent"`
	Background     string `json:"background"`
	CardBackground string `json:"cardBackground"`
	Text           string `json:"text"`
	TextLight      string `json:"textLight"`
	Border         string `json:"border"`
	Success        string `json:"success"`
	Warning        string `json:"warning"`
	Error          string `json:"error"`
}

// Palette tema con nombre.
type Palette struct {
	Name   string `json:"name"`
	Colors Colors `json:"colors"`
}

// BaseName nombre del tema por defecto (sin sector).
const BaseName = "base"

var base = Colors{
	Primary:        "#4B0082", // índigo de la marca
	Secondary:      "#6C757D",
	Accent:         "#4B0082",
	Background:     "#F8F9FA",
	CardBackground: "#FFFFFF",
	Text:           "#2D2D2D",
	TextLight:      "#6C757D",
	Border:         "#DEE2E6",
	Success:        "#28A745",
	Warning:        "#FFC107",
	Error:          "#DC3545",
}

// Resolve devuelve la paleta del sector; SectorNone o valores desconocidos dan la base.
func Resolve(s entity.Sector) Palette {
	accent, ok := accentFor(s)
	if !ok {
		return Palette{Name: BaseName, Colors: base}
	}
	c := base
	c.Accent = accent
	return Palette{Name: string(s), Colors: c}
}

func accentFor(s entity.Sector) (string, bool) {
	switch s {
	case entity.SectorRetail:
		return "#2ecc71", true
	case entity.SectorRestaurant:
		return "#e74c3c", true
	case entity.SectorPharmacy:
		return "#1abc9c", true
	case entity.SectorHotel:
		return "#2980b9", true
	case entity.SectorAgribusiness:
		return "#3D9970", true
	case entity.SectorConstruction:
		return "#e67e22", true
	case entity.SectorNone:
		return "", false
	}
	return "", false
}

// Map devuelve los colores como mapa (respuesta JSON genérica).
func (c Colors) Map() map[string]string {
	return map[string]string{
		"primary":        c.Primary,
		"secondary":      c.Secondary,
		"accent":         c.Accent,
		"background":     c.Background,
		"cardBackground": c.CardBackground,
		"text":           c.Text,
		"textLight":      c.TextLight,
		"border":         c.Border,
		"success":        c.Success,
		"warning":        c.Warning,
		"error":          c.Error,
	}
}
