package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/appdev0823/nhap-thanh-long-heroku/internal/application/analytics"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/auth"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/billing"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/usecase"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/infrastructure/memory"
	infrapdf "github.com/appdev0823/nhap-thanh-long-heroku/internal/infrastructure/pdf"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/infrastructure/postgres"
	httpRouter "github.com/appdev0823/nhap-thanh-long-heroku/internal/interfaces/http"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/config"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

// stores puertos de persistencia que consume la aplicación, sea cual sea el driver.
type stores struct {
	products repository.ProductRepository
	invoices repository.InvoiceRepository
	lines    repository.LineItemRepository
	users    repository.UserRepository
	reports  repository.ReportRepository
	tx       billing.InvoiceTxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}
	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	ctx := context.Background()
	var st stores
	switch cfg.DB.Driver {
	case config.DriverMemory:
		mem := memory.NewStore(loc)
		st = stores{
			products: mem.Products(),
			invoices: mem.Invoices(),
			lines:    mem.LineItems(),
			users:    mem.Users(),
			reports:  mem.Reports(),
			tx:       mem,
		}
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
	default:
		if cfg.DB.AutoMigrate {
			version, err := postgres.Migrate(cfg.DB.ConnectionString())
			if err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Uint("version", version).Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		st = stores{
			products: postgres.NewProductRepository(pool),
			invoices: postgres.NewInvoiceRepository(pool),
			lines:    postgres.NewLineItemRepository(pool),
			users:    postgres.NewUserRepository(pool),
			reports:  postgres.NewReportRepository(pool, loc),
			tx:       postgres.NewTxRunner(pool),
		}
	}

	now := func() time.Time { return time.Now().In(loc) }

	createInvoiceUC := billing.NewCreateInvoiceUseCase(st.tx, st.products, now)
	invoiceUC := billing.NewInvoiceUseCase(st.invoices, st.lines, st.users, now)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, loc)
	invoicePDFUC := billing.NewPDFUseCase(invoiceUC, pdfGenerator)
	reportUC := usecase.NewReportUseCase(st.reports, loc, cfg.App.PageSize)
	dashboardUC := appanalytics.NewDashboardUseCase(st.reports, loc, now)
	productUC := usecase.NewProductUseCase(st.products, cfg.App.PageSize, now)
	userUC := usecase.NewUserUseCase(st.users, cfg.App.PageSize, now)
	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, now)

	// Sin base de datos no hay usuarios previos: el admin sale de ADMIN_USERNAME / ADMIN_PASSWORD.
	if cfg.DB.Driver == config.DriverMemory && cfg.Admin.Password != "" {
		if _, err := userUC.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Name, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("crear administrador inicial")
		}
		log.Info().Str("username", cfg.Admin.Username).Msg("administrador inicial listo")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.HTTP.Swagger {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Nhap Thanh Long API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateInvoice: createInvoiceUC,
		InvoiceUC:     invoiceUC,
		InvoicePDF:    invoicePDFUC,
		ReportUC:      reportUC,
		DashboardUC:   dashboardUC,
		ProductUC:     productUC,
		UserUC:        userUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		Logger:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
