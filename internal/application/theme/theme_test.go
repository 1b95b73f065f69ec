package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sectorflow-api/internal/application/theme"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
)

func TestResolve_Acentos(t *testing.T) {
	assert.Equal(t, "#e67e22", theme.Resolve(entity.SectorConstruction).Colors.Accent)
	assert.Equal(t, "#4B0082", theme.Resolve(entity.SectorNone).Colors.Accent)
	assert.Equal(t, "#4B0082", theme.Resolve(entity.Sector("bakery")).Colors.Accent)
	assert.Equal(t, theme.BaseName, theme.Resolve(entity.SectorNone).Name)

	want := map[entity.Sector]string{
		entity.SectorRetail:       "#2ecc71",
		entity.SectorRestaurant:   "#e74c3c",
		entity.SectorPharmacy:     "#1abc9c",
		entity.SectorHotel:        "#2980b9",
		entity.SectorAgribusiness: "#3D9970",
		entity.SectorConstruction: "#e67e22",
	}
	for s, accent := range want {
		p := theme.Resolve(s)
		assert.Equal(t, accent, p.Colors.Accent, "acento de %s", s)
		assert.Equal(t, string(s), p.Name)
	}
}

func TestResolve_CamposNoAcentoIdenticos(t *testing.T) {
	base := theme.Resolve(entity.SectorNone).Colors
	base.Accent = ""
	for _, s := range entity.AllSectors {
		c := theme.Resolve(s).Colors
		c.Accent = ""
		assert.Equal(t, base, c, "el sector %s solo puede cambiar el acento", s)
	}
}

func TestColors_Map(t *testing.T) {
	m := theme.Resolve(entity.SectorHotel).Colors.Map()
	assert.Len(t, m, 11)
	assert.Equal(t, "#2980b9", m["accent"])
}
