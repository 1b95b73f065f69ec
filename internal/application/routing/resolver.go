// Package routing decide qué página se muestra para cada ruta pedida según
// la sesión y el sector del perfil.
package routing

import (
	"errors"
	"path"
	"strings"

	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
)

// Rutas de la aplicación.
const (
	PathRoot         = "/"
	PathRegister     = "/register"
	PathLogin        = "/login"
	PathSelectSector = "/select-sector"
	PathDashboard    = "/dashboard"
)

// Action tipo de decisión.
type Action string

const (
	ActionRender   Action = "render"
	ActionRedirect Action = "redirect"
	ActionLoading  Action = "loading" // estado aún restaurándose
)

// Page página renderizada.
type Page string

const (
	PageRegister        Page = "register"
	PageLogin           Page = "login"
	PageSectorSelection Page = "select-sector"
	PageDashboard       Page = "dashboard"
)

// MaxHops redirecciones máximas que Follow acepta antes de declarar un bucle.
const MaxHops = 2

// ErrRedirectLoop la cadena de redirecciones no termina en un render.
var ErrRedirectLoop = errors.New("routing: bucle de redirecciones")

// Decision resultado de resolver una ruta.
type Decision struct {
	Path    string // ruta normalizada
	Action  Action
	Page    Page   // si Action == render
	Target  string // si Action == redirect
	Subpath string // resto tras /dashboard
	View    DashboardView
}

func render(p string, page Page) Decision {
	return Decision{Path: p, Action: ActionRender, Page: page}
}

func redirect(p, target string) Decision {
	return Decision{Path: p, Action: ActionRedirect, Target: target}
}

// Resolve aplica la tabla de navegación; la primera fila que coincide gana.
func Resolve(isAuthenticated bool, sector entity.Sector, requested string) Decision {
	p := NormalizePath(requested)
	hasSector := sector.Valid()

	switch {
	case p == PathRegister:
		if !isAuthenticated {
			return render(p, PageRegister)
		}
		return redirect(p, PathDashboard)

	case p == PathLogin:
		if !isAuthenticated {
			return render(p, PageLogin)
		}
		return redirect(p, PathDashboard)

	case p == PathSelectSector:
		if !isAuthenticated {
			return redirect(p, PathLogin)
		}
		return render(p, PageSectorSelection)

	case IsDashboardPath(p):
		if !isAuthenticated {
			return redirect(p, PathLogin)
		}
		if !hasSector {
			return redirect(p, PathSelectSector)
		}
		d := render(p, PageDashboard)
		d.Subpath = dashboardSubpath(p)
		d.View = ViewFor(d.Subpath)
		return d

	case p == PathRoot:
		switch {
		case isAuthenticated && hasSector:
			return redirect(p, PathDashboard)
		case isAuthenticated:
			return redirect(p, PathSelectSector)
		default:
			return redirect(p, PathRegister)
		}
	}

	if isAuthenticated {
		return redirect(p, PathDashboard)
	}
	return redirect(p, PathRegister)
}

// Follow resuelve y sigue las redirecciones hasta un render.
// Devuelve la decisión final y las rutas visitadas tras la inicial.
func Follow(isAuthenticated bool, sector entity.Sector, requested string) (Decision, []string, error) {
	hops := make([]string, 0, MaxHops)
	p := requested
	for i := 0; i <= MaxHops; i++ {
		d := Resolve(isAuthenticated, sector, p)
		if d.Action != ActionRedirect {
			return d, hops, nil
		}
		hops = append(hops, d.Target)
		p = d.Target
	}
	return Decision{}, hops, ErrRedirectLoop
}

// NormalizePath descarta query y fragmento, limpia la ruta, ignora la barra
// final y pasa a minúsculas. Vacío equivale a "/".
func NormalizePath(raw string) string {
	p := strings.TrimSpace(raw)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return PathRoot
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.ToLower(path.Clean(p))
}

// IsDashboardPath informa si la ruta normalizada cae bajo /dashboard.
func IsDashboardPath(p string) bool {
	return p == PathDashboard || strings.HasPrefix(p, PathDashboard+"/")
}

func dashboardSubpath(p string) string {
	return strings.TrimPrefix(strings.TrimPrefix(p, PathDashboard), "/")
}
