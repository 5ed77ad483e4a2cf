package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ldmoraes/minimal-blog-api/internal/category"
	"github.com/ldmoraes/minimal-blog-api/internal/config"
	"github.com/ldmoraes/minimal-blog-api/internal/middleware"
	"github.com/ldmoraes/minimal-blog-api/internal/post"
	"github.com/ldmoraes/minimal-blog-api/internal/store"
	"github.com/ldmoraes/minimal-blog-api/internal/user"
)

func main() {
	cfg := config.Load()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	// ── Database ─────────────────────────────────────────────
	var (
		db  *gorm.DB
		err error
	)
	if cfg.DatabaseURL != "" {
		db, err = store.OpenPostgres(cfg.DatabaseURL)
	} else {
		logger.Info("DATABASE_URL not set, using sqlite", zap.String("path", cfg.SQLitePath))
		db, err = store.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		logger.Fatal("database connect", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.Fatal("database migrate", zap.Error(err))
	}

	// ── Stores ───────────────────────────────────────────────
	userStore := store.NewUserStore(db)
	postStore := store.NewPostStore(db)
	categoryStore := store.NewCategoryStore(db)

	// ── Services ─────────────────────────────────────────────
	userSvc := user.NewService(userStore, logger)
	postSvc := post.NewService(postStore, userStore, categoryStore, logger)
	categorySvc := category.NewService(categoryStore, logger)

	// ── Handlers ─────────────────────────────────────────────
	userHandler := user.NewHandler(userSvc)
	postHandler := post.NewHandler(postSvc)
	categoryHandler := category.NewHandler(categorySvc)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Get("/{id}", userHandler.Get)
		r.Post("/", userHandler.Create)
		r.Delete("/{id}", userHandler.Delete)
	})

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", postHandler.List)
		r.Get("/author/{authorId}", postHandler.ByAuthor)
		r.Get("/search/{searchTerm}", postHandler.Search)
		r.Get("/{id}", postHandler.Get)
		r.Post("/", postHandler.Create)
		r.Put("/{id}", postHandler.Update)
		r.Delete("/{id}", postHandler.Delete)
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Get("/{id}", categoryHandler.Get)
		r.Post("/", categoryHandler.Create)
		r.Put("/{id}", categoryHandler.Update)
		r.Delete("/{id}", categoryHandler.Delete)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
