package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/analytics"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/auth"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/billing"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/dto"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/usecase"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/infrastructure/memory"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/infrastructure/pdf"
	apphttp "github.com/appdev0823/nhap-thanh-long-heroku/internal/interfaces/http"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

const testPassword = "secreto123"

// apiFixture aplicación completa sobre el store en memoria con un admin y un vendedor.
type apiFixture struct {
	app   *fiber.App
	store *memory.Store
	admin string
	clerk string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	loc := time.UTC
	store := memory.NewStore(loc)
	now := func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, loc) }

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Users().Create(ctx, entity.NewUser("admin", "Administrador", string(hash), entity.RoleAdmin, now())))
	require.NoError(t, store.Users().Create(ctx, entity.NewUser("vendedor", "Vendedor Uno", string(hash), entity.RoleRegular, now())))

	invoiceUC := billing.NewInvoiceUseCase(store.Invoices(), store.LineItems(), store.Users(), now)
	deps := apphttp.RouterDeps{
		CreateInvoice: billing.NewCreateInvoiceUseCase(store, store.Products(), now),
		InvoiceUC:     invoiceUC,
		InvoicePDF:    billing.NewPDFUseCase(invoiceUC, pdf.NewMarotoPDFGenerator("Nhap Thanh Long", loc)),
		ReportUC:      usecase.NewReportUseCase(store.Reports(), loc, 2),
		DashboardUC:   analytics.NewDashboardUseCase(store.Reports(), loc, now),
		ProductUC:     usecase.NewProductUseCase(store.Products(), 2, now),
		UserUC:        usecase.NewUserUseCase(store.Users(), 2, now),
		AuthUC: auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}, now),
		JWTSecret: testJWTSecret,
		Logger:    logger.Nop(),
	}
	app := fiber.New()
	apphttp.Router(app, deps)

	return &apiFixture{
		app:   app,
		store: store,
		admin: tokenFor(t, "admin", entity.RoleAdmin),
		clerk: tokenFor(t, "vendedor", entity.RoleRegular),
	}
}

// do lanza la petición con body JSON opcional.
func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// seedProduct crea un producto por la API y devuelve su id.
func (f *apiFixture) seedProduct(t *testing.T, name string) int64 {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/api/products", f.clerk, dto.CreateProductRequest{Name: name, Price: decimal.NewFromInt(1000)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[dto.ProductResponse](t, resp).ID
}

func invoiceBody(customer string, productID int64, weight, price int64) map[string]any {
	return map[string]any{
		"customer_id":   customer,
		"customer_name": "Cliente " + customer,
		"total_price":   weight * price,
		"total_weight":  weight,
		"product_list": []map[string]any{
			{"product_id": productID, "product_name": "Xoài", "product_price": price, "product_weight": weight, "product_order": 1},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_DevuelveToken(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "vendedor", Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "vendedor", out.User.Username)
	assert.Equal(t, entity.RoleRegular, out.User.Role)

	// el token emitido sirve en rutas protegidas
	resp = f.do(t, http.MethodGet, "/api/users/profile", "Bearer "+out.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "vendedor", Password: "otra"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_SinPassword_Retorna400(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "vendedor"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUsuarioDesactivado_NoPuedeLoguearNiUsarToken(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodPut, "/api/users/toggle/vendedor", f.admin, dto.ToggleUserRequest{IsActive: false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decodeBody[dto.UserResponse](t, resp).IsActive)

	resp = f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "vendedor", Password: testPassword})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/products", f.clerk, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "el token emitido antes de desactivar ya no sirve")
}

func TestChangePassword(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/api/auth/change-password", f.clerk,
		dto.ChangePasswordRequest{OldPassword: "mala", NewPassword: "nueva123"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/auth/change-password", f.clerk,
		dto.ChangePasswordRequest{OldPassword: testPassword, NewPassword: "nueva123"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "vendedor", Password: "nueva123"})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearUsuario_SoloAdmin(t *testing.T) {
	f := newAPIFixture(t)
	in := dto.CreateUserRequest{Username: "nuevo", Name: "Nuevo", Password: "clave123"}

	resp := f.do(t, http.MethodPost, "/api/users", f.clerk, in)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/users", f.admin, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decodeBody[dto.UserResponse](t, resp)
	assert.Equal(t, entity.RoleRegular, out.Role)
	assert.True(t, out.IsActive)

	resp = f.do(t, http.MethodPost, "/api/users", f.admin, in)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestListarUsuarios_Paginado(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodPost, "/api/users", f.admin, dto.CreateUserRequest{Username: "tercero", Name: "Tercero", Password: "clave123"})
	resp.Body.Close()

	resp = f.do(t, http.MethodGet, "/api/users?page=2", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.ListResponse[dto.UserResponse]](t, resp)
	assert.Equal(t, 3, out.Total)
	require.Len(t, out.Items, 1)
}

func TestObtenerUsuario_Inexistente_Retorna404(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodGet, "/api/users/fantasma", f.clerk, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearOrdenarYBorrar(t *testing.T) {
	f := newAPIFixture(t)
	first := f.seedProduct(t, "Xoài cát")
	second := f.seedProduct(t, "Sầu riêng")

	resp := f.do(t, http.MethodGet, "/api/products/"+itoa(second), f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decodeBody[dto.ProductResponse](t, resp).Order, "el orden inicial es count + 1")

	one := 1
	resp = f.do(t, http.MethodPut, "/api/products/update-order", f.clerk, dto.UpdateProductOrderRequest{
		List: []dto.ProductOrderItem{{ID: second, Order: &one}, {ID: first}},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/products", f.clerk, nil)
	list := decodeBody[dto.ListResponse[dto.ProductResponse]](t, resp)
	require.Len(t, list.Items, 2)
	assert.Equal(t, first, list.Items[0].ID, "order ausente se guarda como 0")
	assert.Equal(t, 0, list.Items[0].Order)
	assert.Equal(t, second, list.Items[1].ID)

	resp = f.do(t, http.MethodDelete, "/api/products/"+itoa(first), f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeBody[dto.ProductResponse](t, resp).IsDeleted)

	resp = f.do(t, http.MethodGet, "/api/products", f.clerk, nil)
	assert.Equal(t, 1, decodeBody[dto.ListResponse[dto.ProductResponse]](t, resp).Total)
}

func TestProductos_UpdateOrderVacio_Retorna400(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodPut, "/api/products/update-order", f.clerk, dto.UpdateProductOrderRequest{})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductos_IDInvalido_Retorna400(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodGet, "/api/products/abc", f.clerk, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invoices
// ──────────────────────────────────────────────────────────────────────────────

func TestFactura_CrearDetalleYPDF(t *testing.T) {
	f := newAPIFixture(t)
	pid := f.seedProduct(t, "Xoai")

	resp := f.do(t, http.MethodPost, "/api/invoices", f.clerk, invoiceBody("KH01", pid, 12, 25000))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/invoices", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[dto.ListResponse[dto.InvoiceListItemResponse]](t, resp)
	require.Len(t, list.Items, 1)
	inv := list.Items[0]
	assert.Equal(t, "vendedor", inv.CreatedBy, "created_by sale del token, no del body")
	assert.Equal(t, "Vendedor Uno", inv.UserName)
	assert.True(t, inv.IsPaid)

	resp = f.do(t, http.MethodGet, "/api/invoices/"+itoa(inv.ID), f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decodeBody[dto.InvoiceDetailResponse](t, resp)
	require.Len(t, detail.ProductList, 1)
	assert.True(t, decimal.NewFromInt(25000).Equal(detail.ProductList[0].ProductPrice))
	assert.Len(t, detail.WeightGrid, entity.WeightGridRows)

	// el precio de catálogo quedó sincronizado con la venta
	resp = f.do(t, http.MethodGet, "/api/products/"+itoa(pid), f.clerk, nil)
	assert.True(t, decimal.NewFromInt(25000).Equal(decodeBody[dto.ProductResponse](t, resp).Price))

	resp = f.do(t, http.MethodGet, "/api/invoices/"+itoa(inv.ID)+"/pdf", f.clerk, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestFactura_SinLineas_Retorna400(t *testing.T) {
	f := newAPIFixture(t)
	body := invoiceBody("KH01", 1, 1, 1)
	body["product_list"] = []map[string]any{}

	resp := f.do(t, http.MethodPost, "/api/invoices", f.clerk, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "product_list")
}

func TestFactura_ProductoInexistente_Retorna400(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodPost, "/api/invoices", f.clerk, invoiceBody("KH01", 999, 1, 1))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFactura_BorrarDosVeces(t *testing.T) {
	f := newAPIFixture(t)
	pid := f.seedProduct(t, "Xoai")
	resp := f.do(t, http.MethodPost, "/api/invoices", f.clerk, invoiceBody("KH01", pid, 5, 100))
	resp.Body.Close()

	for i := 0; i < 2; i++ {
		resp = f.do(t, http.MethodDelete, "/api/invoices/1", f.clerk, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "intento %d", i+1)
		assert.True(t, decodeBody[dto.InvoiceResponse](t, resp).IsDeleted)
	}

	resp = f.do(t, http.MethodGet, "/api/invoices/1", f.clerk, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "el detalle ignora facturas borradas")

	resp = f.do(t, http.MethodDelete, "/api/invoices/42", f.clerk, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFactura_TotalStatsSinFilas_Retorna404(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodGet, "/api/invoices/total-stats", f.clerk, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFactura_ReportesPorRango(t *testing.T) {
	f := newAPIFixture(t)
	pid := f.seedProduct(t, "Xoai")
	for _, customer := range []string{"KH01", "KH02", "KH01"} {
		resp := f.do(t, http.MethodPost, "/api/invoices", f.clerk, invoiceBody(customer, pid, 2, 1000))
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := f.do(t, http.MethodGet, "/api/invoices/total-stats?start_date=2024-03-15&end_date=2024-03-15", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	total := decodeBody[dto.TotalStatsResponse](t, resp)
	assert.True(t, decimal.NewFromInt(6000).Equal(total.TotalPrice))
	assert.True(t, decimal.NewFromInt(6).Equal(total.TotalWeight))

	resp = f.do(t, http.MethodGet, "/api/invoices/date-stats-list", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	days := decodeBody[dto.ListResponse[dto.DateStatsResponse]](t, resp)
	require.Len(t, days.Items, 1)
	assert.Equal(t, "15/03/2024", days.Items[0].Date)

	resp = f.do(t, http.MethodGet, "/api/invoices/customer-list", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decodeBody[dto.ListResponse[dto.CustomerResponse]](t, resp).Total, "sin deduplicar")

	resp = f.do(t, http.MethodGet, "/api/invoices?customer_id_list=KH01", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decodeBody[dto.ListResponse[dto.InvoiceListItemResponse]](t, resp).Total)

	resp = f.do(t, http.MethodGet, "/api/products/stats-list", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody[dto.ListResponse[dto.ProductStatsResponse]](t, resp)
	require.Len(t, stats.Items, 1)
	assert.True(t, decimal.NewFromInt(6).Equal(stats.Items[0].TotalWeight))
}

func TestDashboard_Resumen(t *testing.T) {
	f := newAPIFixture(t)
	pid := f.seedProduct(t, "Xoai")
	resp := f.do(t, http.MethodPost, "/api/invoices", f.clerk, invoiceBody("KH01", pid, 3, 1000))
	resp.Body.Close()

	resp = f.do(t, http.MethodGet, "/api/dashboard/summary", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.DashboardSummaryResponse](t, resp)
	assert.True(t, decimal.NewFromInt(3000).Equal(out.TodayPrice))
	assert.True(t, decimal.NewFromInt(3).Equal(out.MonthWeight))
	require.Len(t, out.TopProducts, 1)
	assert.Equal(t, "Tháng 3/2024", out.DateLabel)
}

func TestFactura_PaginaFueraDeRango_Retorna400(t *testing.T) {
	f := newAPIFixture(t)
	pid := f.seedProduct(t, "Xoai")
	resp := f.do(t, http.MethodPost, "/api/invoices", f.clerk, invoiceBody("KH01", pid, 2, 1000))
	resp.Body.Close()

	resp = f.do(t, http.MethodGet, "/api/invoices?page=5", f.clerk, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "NO_DATA")
}

func TestFactura_PaginaNegativa_DevuelveTodoSinPaginar(t *testing.T) {
	f := newAPIFixture(t)
	pid := f.seedProduct(t, "Xoai")
	for _, customer := range []string{"KH01", "KH02", "KH03"} {
		resp := f.do(t, http.MethodPost, "/api/invoices", f.clerk, invoiceBody(customer, pid, 2, 1000))
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := f.do(t, http.MethodGet, "/api/invoices?page=-1", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[dto.ListResponse[dto.InvoiceListItemResponse]](t, resp)
	assert.Len(t, list.Items, 3, "mayor que el tamaño de página")
	assert.Equal(t, 3, list.Total)

	resp = f.do(t, http.MethodGet, "/api/invoices/date-stats-list?page=-1", f.clerk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	days := decodeBody[dto.ListResponse[dto.DateStatsResponse]](t, resp)
	assert.Len(t, days.Items, 1)

	resp = f.do(t, http.MethodGet, "/api/invoices?page=abc", f.clerk, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFactura_FechaMalFormada_Retorna400(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodGet, "/api/invoices?start_date=15-03-2024", f.clerk, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	f := newAPIFixture(t)
	for _, path := range []string{"/api/invoices", "/api/products", "/api/users/profile"} {
		resp := f.do(t, http.MethodGet, path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
