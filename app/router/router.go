package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"catalogo-iluminacao/app/controller"
)

// requestTimeout bounds every request; it leaves room for the 30s export session
const requestTimeout = 45 * time.Second

type Controllers struct {
	Catalog *controller.CatalogController
	Sheet   *controller.SheetController
	Photo   *controller.PhotoController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes builds the router serving the catalog page and its backend endpoints
func SetupRoutes(controllers *Controllers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", pingHandler)

	// Catalog page; ?open=N expands card N
	r.Get("/", controllers.Catalog.Index)

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/state", controllers.Catalog.State)
		r.Post("/reload", controllers.Catalog.Reload)
		r.Get("/export", controllers.Catalog.Export)

		// Backend endpoints consumed by the loader and the photo resolver
		r.Get("/sheet", controllers.Sheet.GetSheet)
		r.Get("/photos", controllers.Photo.GetPhotos)
		r.Get("/photos/thumb", controllers.Photo.GetThumbnail)
		r.Get("/produtos/{codigo}/imagens", controllers.Photo.GetProductImages)
	})

	return r
}
