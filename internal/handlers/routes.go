package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/obras-paraguay/natacion-api/internal/config"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, classHandler *ClassHandler, adminHandler *AdminHandler, chatHandler *ChatHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(corsMiddleware(cfg.FrontendURL))
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Obras Paraguay Natación API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "admin_token",
		},
	}
	api := humachi.New(r, humaConfig)

	adminOp := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Post("/api/chat", chatHandler.HandleChat)

	huma.Get(api, "/api/classes", classHandler.HandleListClasses)
	huma.Post(api, "/api/classes/{id}/reservations", classHandler.HandleSubmitBooking)

	// Staff panel
	huma.Post(api, "/admin/login", adminHandler.HandleLogin)
	huma.Get(api, "/admin/records", adminHandler.HandleListRecords, adminOp)
	huma.Delete(api, "/admin/records", adminHandler.HandleClearRecords, adminOp)
	huma.Patch(api, "/admin/inventory/{id}", adminHandler.HandleSetRemainingSlots, adminOp)
	huma.Put(api, "/admin/inventory", adminHandler.HandleCommitInventory, adminOp)
	r.Get("/admin/records/export", adminHandler.HandleExportCSV)
}

func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
