// seed_admin crea el usuario administrador en PostgreSQL o, si ya existe, le restablece la
// contraseña y lo reactiva. Aplica antes las migraciones pendientes.
//
// Uso: ADMIN_USERNAME=admin ADMIN_PASSWORD=... go run ./cmd/seed_admin
package main

import (
	"context"
	"os"
	"time"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/usecase"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/infrastructure/postgres"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/config"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed_admin")

	if cfg.DB.Driver != config.DriverPostgres {
		log.Error().Str("driver", cfg.DB.Driver).Msg("seed_admin solo funciona con DB_DRIVER=postgres")
		os.Exit(1)
	}
	if cfg.Admin.Password == "" {
		log.Error().Msg("ADMIN_PASSWORD es obligatorio")
		os.Exit(1)
	}
	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	if _, err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := usecase.NewUserUseCase(postgres.NewUserRepository(pool), cfg.App.PageSize, func() time.Time {
		return time.Now().In(loc)
	})
	created, err := users.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Name, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("administrador creado")
		return
	}
	log.Info().Str("username", cfg.Admin.Username).Msg("administrador existente actualizado")
}
