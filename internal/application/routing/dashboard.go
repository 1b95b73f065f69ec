package routing

import "github.com/jhoicas/sectorflow-api/internal/domain/entity"

// DashboardView página interna del dashboard.
type DashboardView string

const (
	ViewOverview     DashboardView = "overview"
	ViewInventory    DashboardView = "inventory"
	ViewSales        DashboardView = "sales"
	ViewCustomers    DashboardView = "customers"
	ViewReports      DashboardView = "reports"
	ViewSuppliers    DashboardView = "suppliers"
	ViewReservations DashboardView = "reservations"
	ViewBookings     DashboardView = "bookings"
	ViewSettings     DashboardView = "settings"
	ViewNotFound     DashboardView = "not-found"
)

var views = map[string]DashboardView{
	"":             ViewOverview,
	"inventory":    ViewInventory,
	"sales":        ViewSales,
	"customers":    ViewCustomers,
	"reports":      ViewReports,
	"suppliers":    ViewSuppliers,
	"reservations": ViewReservations,
	"bookings":     ViewBookings,
	"settings":     ViewSettings,
}

// ViewFor mapea el subpath del dashboard a su vista; lo desconocido es not-found.
func ViewFor(subpath string) DashboardView {
	if v, ok := views[subpath]; ok {
		return v
	}
	return ViewNotFound
}

// MenuItem entrada del sidebar.
type MenuItem struct {
	Path   string
	Label  string
	Icon   string
	Active bool
}

// Menu devuelve el sidebar del sector marcando la ruta actual.
// Settings siempre va al final.
func Menu(sector entity.Sector, current string) []MenuItem {
	items := []MenuItem{
		{Path: PathDashboard, Label: "Overview", Icon: "home"},
		{Path: PathDashboard + "/inventory", Label: "Inventory", Icon: "package"},
		{Path: PathDashboard + "/sales", Label: "Sales", Icon: "shopping-cart"},
		{Path: PathDashboard + "/customers", Label: "Customers", Icon: "users"},
		{Path: PathDashboard + "/reports", Label: "Reports", Icon: "bar-chart-2"},
	}
	switch sector {
	case entity.SectorRetail:
		items = append(items, MenuItem{Path: PathDashboard + "/suppliers", Label: "Suppliers", Icon: "truck"})
	case entity.SectorRestaurant:
		items = append(items, MenuItem{Path: PathDashboard + "/reservations", Label: "Reservations", Icon: "calendar"})
	case entity.SectorHotel:
		items = append(items, MenuItem{Path: PathDashboard + "/bookings", Label: "Bookings", Icon: "calendar"})
	case entity.SectorPharmacy, entity.SectorAgribusiness, entity.SectorConstruction, entity.SectorNone:
	}
	items = append(items, MenuItem{Path: PathDashboard + "/settings", Label: "Settings", Icon: "settings"})

	cur := NormalizePath(current)
	for i := range items {
		items[i].Active = items[i].Path == cur
	}
	return items
}
