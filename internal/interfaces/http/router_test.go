package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/sectorflow-api/internal/application/analytics"
	"github.com/jhoicas/sectorflow-api/internal/application/auth"
	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	appinventory "github.com/jhoicas/sectorflow-api/internal/application/inventory"
	"github.com/jhoicas/sectorflow-api/internal/application/sector"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/sectorflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/sample"
	apphttp "github.com/jhoicas/sectorflow-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/sectorflow-api/pkg/jwt"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "sectorflow-test"
)

type testEnv struct {
	app   *fiber.App
	store *memory.ProfileStore
	token string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewProfileStore()
	catalog := sample.NewCatalog()
	log := logger.Nop()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Sessions:  auth.NewSessionManager(store, log, auth.Config{}),
		Sectors:   sector.NewManager(store, log),
		Overview:  appanalytics.NewOverviewUseCase(catalog, catalog, nil),
		Inventory: appinventory.NewUseCase(catalog, infrapdf.NewInventoryReportGenerator()),
		Profile:   apphttp.ProfileConfig{Secret: testSecret, Issuer: testIssuer, TTL: time.Hour},
		Logger:    log,
	})
	return &testEnv{app: app, store: store}
}

// do lanza la petición con el token del perfil (si hay) y lo captura si el servidor emite uno.
func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if e.token != "" {
		req.Header.Set(apphttp.ProfileHeader, e.token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	if tok := resp.Header.Get(apphttp.ProfileHeader); tok != "" {
		e.token = tok
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (e *testEnv) profileID(t *testing.T) string {
	t.Helper()
	id, err := pkgjwt.ParseProfile(testSecret, e.token)
	require.NoError(t, err)
	return id
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		BusinessName:    "Kigali Hardware",
		OwnerName:       "Aline Uwase",
		Email:           "aline@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "+250788000000",
		Address:         "KN 4 Ave, Kigali",
	}
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "a@b.co", Password: "x"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_SeEmiteTokenNuevo(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, env.token)

	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.ProfileCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie, "debe emitirse la cookie de perfil")
	assert.Equal(t, env.token, cookie.Value)

	st := decode[dto.StateResponse](t, resp)
	assert.False(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	assert.Nil(t, st.User)
	assert.Nil(t, st.Sector)
	assert.Equal(t, "#4B0082", st.Theme.Colors["accent"])

	// el mismo token no vuelve a emitirse
	first := env.token
	resp = env.do(t, http.MethodGet, "/api/state", nil)
	assert.Empty(t, resp.Header.Get(apphttp.ProfileHeader))
	assert.Equal(t, first, env.token)
}

func TestProfile_TokenPorCookie(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/state", nil).Body.Close()
	env.login(t)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.ProfileCookie, Value: env.token})
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	st := decode[dto.StateResponse](t, resp)
	assert.True(t, st.IsAuthenticated)
}

func TestProfile_TokenInvalidoCreaPerfilNuevo(t *testing.T) {
	env := newTestEnv(t)
	env.token = "token.invalido.aqui"
	resp := env.do(t, http.MethodGet, "/api/state", nil)
	resp.Body.Close()
	assert.NotEqual(t, "token.invalido.aqui", env.token)
	assert.NotEmpty(t, env.profileID(t))
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujo_RegistroLoginSectorDashboardLogout(t *testing.T) {
	env := newTestEnv(t)

	// Registro: 201, sin sesión
	resp := env.do(t, http.MethodPost, "/api/auth/register", validRegister())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	reg := decode[dto.RegisteredProfileResponse](t, resp)
	assert.Equal(t, "/login", reg.Next)
	assert.Equal(t, "Kigali Hardware", reg.BusinessName)

	st := decode[dto.StateResponse](t, env.do(t, http.MethodGet, "/api/state", nil))
	assert.False(t, st.IsAuthenticated, "el registro no inicia sesión")

	// Login con el email registrado: usa su identidad
	resp = env.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "aline@example.com", Password: "secret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lr := decode[dto.LoginResponse](t, resp)
	assert.Equal(t, reg.ID, lr.User.ID)
	assert.Equal(t, "/select-sector", lr.Next)

	// Dashboard sin sector
	resp = env.do(t, http.MethodGet, "/api/dashboard/overview", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	er := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "SECTOR_REQUIRED", er.Code)
	assert.Equal(t, "/select-sector", er.Redirect)

	// Selección de sector
	resp = env.do(t, http.MethodPut, "/api/sector", dto.SetSectorRequest{Sector: "retail"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sr := decode[dto.SectorResponse](t, resp)
	assert.Equal(t, "#2ecc71", sr.Theme.Colors["accent"])
	assert.Equal(t, "/dashboard", sr.Next)

	// Dashboard
	resp = env.do(t, http.MethodGet, "/api/dashboard/overview", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ov := decode[dto.OverviewDTO](t, resp)
	assert.True(t, ov.Available)
	assert.Equal(t, "Retail Dashboard", ov.Title)

	resp = env.do(t, http.MethodGet, "/api/dashboard/inventory?search=tech&sort=quantity&direction=desc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := decode[dto.InventoryListDTO](t, resp)
	require.Len(t, inv.Items, 3)
	assert.Equal(t, "Smartphone X", inv.Items[0].Name)

	resp = env.do(t, http.MethodGet, "/api/dashboard/inventory/report.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventory-retail-")
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/dashboard/sales?range=year", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sales := decode[dto.SalesSeriesDTO](t, resp)
	assert.Len(t, sales.Values, 12)

	// Login ya autenticado
	resp = env.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "a@b.co", Password: "x"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	er = decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "ALREADY_AUTHENTICATED", er.Code)
	assert.Equal(t, "/dashboard", er.Redirect)

	// Logout (idempotente)
	for i := 0; i < 2; i++ {
		resp = env.do(t, http.MethodPost, "/api/auth/logout", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()
	}
	st = decode[dto.StateResponse](t, env.do(t, http.MethodGet, "/api/state", nil))
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.Sector, "el logout borra también el sector")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y guards
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_ValidacionMultiCampo(t *testing.T) {
	env := newTestEnv(t)
	in := validRegister()
	in.BusinessName = ""
	in.Password = "abc"
	in.ConfirmPassword = "xyz"

	resp := env.do(t, http.MethodPost, "/api/auth/register", in)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	er := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", er.Code)

	keys := make([]string, 0, len(er.Fields))
	for k := range er.Fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"businessName", "password", "confirmPassword"}, keys)

	// nada persistido
	ctx := context.Background()
	for _, k := range []string{repository.KeyRegisteredUser, repository.KeyUser} {
		_, found, err := env.store.Get(ctx, env.profileID(t), k)
		require.NoError(t, err)
		assert.False(t, found, k)
	}
}

func TestLogin_CredencialesVacias(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	er := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_CREDENTIALS", er.Code)
	assert.Equal(t, "invalid email or password", er.Message)
}

func TestLogin_CuerpoInvalido(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGuards_Anonimo(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/dashboard/menu", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	er := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UNAUTHENTICATED", er.Code)
	assert.Equal(t, "/login", er.Redirect)

	resp = env.do(t, http.MethodPut, "/api/sector", dto.SetSectorRequest{Sector: "retail"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestSector_Invalido(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/state", nil).Body.Close()
	env.login(t)

	resp := env.do(t, http.MethodPut, "/api/sector", dto.SetSectorRequest{Sector: "bakery"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	er := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_SECTOR", er.Code)
}

func TestSectors_Catalogo(t *testing.T) {
	env := newTestEnv(t)
	opts := decode[[]dto.SectorOptionDTO](t, env.do(t, http.MethodGet, "/api/sectors", nil))
	require.Len(t, opts, 6)
	assert.Equal(t, "construction", opts[5].ID)
	assert.Equal(t, "#e67e22", opts[5].Color)
}

func TestMenu_Hotel(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/state", nil).Body.Close()
	env.login(t)
	env.do(t, http.MethodPut, "/api/sector", dto.SetSectorRequest{Sector: "hotel"}).Body.Close()

	resp := env.do(t, http.MethodGet, "/api/dashboard/menu?current=/dashboard/bookings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	menu := decode[dto.MenuResponse](t, resp)
	assert.Equal(t, "Hotel / Accommodation", menu.SectorLabel)
	require.Len(t, menu.Items, 7)
	assert.Equal(t, "Bookings", menu.Items[5].Label)
	assert.True(t, menu.Items[5].Active)
	assert.Equal(t, "Settings", menu.Items[6].Label)

	ov := decode[dto.OverviewDTO](t, env.do(t, http.MethodGet, "/api/dashboard/overview", nil))
	assert.False(t, ov.Available)
	assert.Equal(t, "Hotel Dashboard", ov.Title)

	resp = env.do(t, http.MethodGet, "/api/dashboard/inventory/report.pdf", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Navegación
// ──────────────────────────────────────────────────────────────────────────────

func TestRoute_CadenaDeRedirecciones(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/state", nil).Body.Close()
	env.login(t)

	rr := decode[dto.RouteResponse](t, env.do(t, http.MethodGet, "/api/route?path=/login", nil))
	assert.Equal(t, "redirect", rr.Decision.Action)
	assert.Equal(t, "/dashboard", rr.Decision.Target)
	assert.Equal(t, []string{"/dashboard", "/select-sector"}, rr.Hops)
	assert.Equal(t, "render", rr.Final.Action)
	assert.Equal(t, "select-sector", rr.Final.Page)
}

func TestPage_RedireccionYRender(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/app/dashboard/inventory", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/app/login", resp.Header.Get("Location"))
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/app", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/app/register", resp.Header.Get("Location"))
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/app/register", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	d := decode[dto.RouteDecisionDTO](t, resp)
	assert.Equal(t, "register", d.Page)

	env.login(t)
	env.do(t, http.MethodPut, "/api/sector", dto.SetSectorRequest{Sector: "retail"}).Body.Close()
	resp = env.do(t, http.MethodGet, "/app/dashboard/payroll", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	d = decode[dto.RouteDecisionDTO](t, resp)
	assert.Equal(t, "dashboard", d.Page)
	assert.Equal(t, "not-found", d.View)
}

func TestTheme_SectorActual(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/state", nil).Body.Close()
	env.login(t)
	env.do(t, http.MethodPut, "/api/sector", dto.SetSectorRequest{Sector: "construction"}).Body.Close()

	p := decode[dto.PaletteDTO](t, env.do(t, http.MethodGet, "/api/theme", nil))
	assert.Equal(t, "construction", p.Name)
	assert.Equal(t, "#e67e22", p.Colors["accent"])
	assert.Equal(t, "#4B0082", p.Colors["primary"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newHealthApp(p apphttp.Pinger) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Sessions:  auth.NewSessionManager(memory.NewProfileStore(), logger.Nop(), auth.Config{}),
		Sectors:   sector.NewManager(memory.NewProfileStore(), logger.Nop()),
		Overview:  appanalytics.NewOverviewUseCase(sample.NewCatalog(), sample.NewCatalog(), nil),
		Inventory: appinventory.NewUseCase(sample.NewCatalog(), nil),
		Profile:   apphttp.ProfileConfig{Secret: testSecret, Issuer: testIssuer, TTL: time.Hour},
		Health:    p,
		AppName:   "sectorflow-test",
		Logger:    logger.Nop(),
	})
	return app
}

func TestHealth_AlmacenamientoOK(t *testing.T) {
	calls := 0
	app := newHealthApp(pingerFunc(func(context.Context) error { calls++; return nil }))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "sectorflow-test", body["service"])
	assert.Equal(t, 1, calls)
}

func TestHealth_AlmacenamientoCaido(t *testing.T) {
	app := newHealthApp(pingerFunc(func(context.Context) error { return errors.New("connection refused") }))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	er := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "STORAGE_UNAVAILABLE", er.Code)
}

func TestHealth_SinPinger(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
