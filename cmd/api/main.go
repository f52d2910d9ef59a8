package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/minhtran-dev/shop-admin-backend/internal/config"
	"github.com/minhtran-dev/shop-admin-backend/internal/logger"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/product"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/redirect"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/shopstatus"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/template"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/variant"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/wizard"
)

func main() {
	cfg := config.Load()
	log := logger.Get()
	defer log.Sync()

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		log.Fatal("failed to ping database", zap.Error(err))
	}
	log.Info("connected to database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logger.RequestLogger(log))

	// ── Products & categories ───────────────────────────────
	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	product.NewHandler(productService).RegisterRoutes(router)

	// ── Variant templates & variants ────────────────────────
	registry := template.DefaultRegistry()
	template.NewHandler(registry).RegisterRoutes(router)

	variantRepo := variant.NewPostgresRepository(db)
	variantService := variant.NewService(variantRepo)
	variant.NewHandler(variantService).RegisterRoutes(router)

	// ── Variant wizard ──────────────────────────────────────
	wizardManager := wizard.NewManager()
	wizard.NewHandler(wizardManager, registry, variantService, log).RegisterRoutes(router)

	// ── QR redirects ────────────────────────────────────────
	redirectRepo := redirect.NewPostgresRepository(db)
	redirectService := redirect.NewService(redirectRepo)
	redirect.NewHandler(redirectService).RegisterRoutes(router)

	// ── Shop status ─────────────────────────────────────────
	statusRepo := shopstatus.NewPostgresRepository(db)
	statusService := shopstatus.NewService(statusRepo)
	shopstatus.NewHandler(statusService).RegisterRoutes(router)

	addr := ":" + cfg.Server.Port
	log.Info("shop admin API listening", zap.String("addr", addr), zap.String("env", cfg.Server.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
