package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"glastor/app"
	"glastor/domain/core"
	"glastor/internal"
	"glastor/internal/export"
)

// AdminApp is the ops router: registry inspection, garbage collection of
// retired products, and the xlsx export. Served on its own port, never
// reachable from the storefront.
type AdminApp struct {
	router   *chi.Mux
	registry *app.RegistryService
	log      *internal.Logger
}

// NewAdminApp creates the admin application.
func NewAdminApp(registry *app.RegistryService, log *internal.Logger) *AdminApp {
	a := &AdminApp{
		router:   chi.NewRouter(),
		registry: registry,
		log:      log,
	}

	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/admin/registry", a.handleRegistry)
	a.router.Post("/admin/purge", a.handlePurge)
	a.router.Get("/admin/export", a.handleExport)

	return a
}

// Handler exposes the router.
func (a *AdminApp) Handler() http.Handler { return a.router }

// Run starts the admin server on the given port.
func (a *AdminApp) Run(port string) error {
	a.log.Info("admin server listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *AdminApp) handleRegistry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.registry.Snapshot()); err != nil {
		a.log.Error("failed to encode registry snapshot: %v", err)
	}
}

type purgeRequest struct {
	Keep []string `json:"keep"`
}

func (a *AdminApp) handlePurge(w http.ResponseWriter, r *http.Request) {
	var req purgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	keep := make([]core.ProductID, len(req.Keep))
	for i, s := range req.Keep {
		keep[i] = core.ProductID(s)
	}

	purged := a.registry.PurgeProducts(keep)
	a.log.Info("purged %d retired products from the registry", purged)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"purged": purged})
}

func (a *AdminApp) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="persona-assignments.xlsx"`)
	if err := export.WriteReport(w, a.registry.Snapshot()); err != nil {
		a.log.Error("failed to write export report: %v", err)
	}
}
