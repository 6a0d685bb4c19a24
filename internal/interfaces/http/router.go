package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/analytics"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/auth"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/billing"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/usecase"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoiceUC     *billing.InvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
	ReportUC      *usecase.ReportUseCase
	DashboardUC   *analytics.DashboardUseCase
	ProductUC     *usecase.ProductUseCase
	UserUC        *usecase.UserUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	Logger        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	validate := NewRequestValidator()
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, validate, log.Component("auth"))
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (Bearer Token de un usuario activo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireActiveUser(deps.UserUC, log))

	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoiceUC, deps.InvoicePDF, deps.ReportUC, validate, log.Component("invoices"))
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/date-stats-list", invoiceHandler.DateStatsList)
	invoices.Get("/customer-list", invoiceHandler.CustomerList)
	invoices.Get("/total-stats", invoiceHandler.TotalStats)
	invoices.Get("/:id", invoiceHandler.GetDetail)
	invoices.Get("/:id/pdf", invoiceHandler.GetPDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log.Component("dashboard"))
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC, validate, log.Component("products"))
	products.Get("/", productHandler.List)
	products.Get("/stats-list", productHandler.StatsList)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/update-order", productHandler.UpdateOrder)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Users (escrituras solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC, validate, log.Component("users"))
	users.Get("/profile", userHandler.Profile)
	users.Get("/", userHandler.List)
	users.Get("/:username", userHandler.GetByUsername)
	users.Post("/", RequireAdmin(), userHandler.Create)
	users.Put("/toggle/:username", RequireAdmin(), userHandler.ToggleActive)
	users.Put("/:username", RequireAdmin(), userHandler.Update)
}
