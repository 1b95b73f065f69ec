package entity

import "strings"

// Sector vertical de negocio elegido en la pantalla de selección.
// El valor cero (SectorNone) significa "sin seleccionar".
type Sector string

// Sectores soportados. Cualquier otro valor se rechaza en ParseSector.
const (
	SectorNone         Sector = ""
	SectorRetail       Sector = "retail"
	SectorRestaurant   Sector = "restaurant"
	SectorPharmacy     Sector = "pharmacy"
	SectorHotel        Sector = "hotel"
	SectorAgribusiness Sector = "agribusiness"
	SectorConstruction Sector = "construction"
)

// AllSectors en el orden de la pantalla de selección.
var AllSectors = []Sector{
	SectorRetail,
	SectorRestaurant,
	SectorPharmacy,
	SectorHotel,
	SectorAgribusiness,
	SectorConstruction,
}

// ParseSector convierte el id recibido en un Sector válido.
// Devuelve ok=false para vacío o ids desconocidos.
func ParseSector(raw string) (Sector, bool) {
	s := Sector(strings.TrimSpace(raw))
	if s.Valid() {
		return s, true
	}
	return SectorNone, false
}

// Valid informa si s es uno de los seis sectores (SectorNone no es válido).
func (s Sector) Valid() bool {
	switch s {
	case SectorRetail, SectorRestaurant, SectorPharmacy, SectorHotel, SectorAgribusiness, SectorConstruction:
		return true
	}
	return false
}

func (s Sector) String() string { return string(s) }

// DisplayName nombre largo usado en la insignia del sidebar.
func (s Sector) DisplayName() string {
	switch s {
	case SectorRetail:
		return "Retail / Shop"
	case SectorRestaurant:
		return "Restaurant / Café"
	case SectorPharmacy:
		return "Pharmacy"
	case SectorHotel:
		return "Hotel / Accommodation"
	case SectorAgribusiness:
		return "Agribusiness / Farm"
	case SectorConstruction:
		return "Construction"
	}
	return "Business"
}

// ShortName nombre corto usado en los títulos de página ("Retail Dashboard").
func (s Sector) ShortName() string {
	switch s {
	case SectorRetail:
		return "Retail"
	case SectorRestaurant:
		return "Restaurant"
	case SectorPharmacy:
		return "Pharmacy"
	case SectorHotel:
		return "Hotel"
	case SectorAgribusiness:
		return "Agribusiness"
	case SectorConstruction:
		return "Construction"
	}
	return "Business"
}
