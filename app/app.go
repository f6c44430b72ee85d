package app

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"catalogo-iluminacao/app/controller"
	"catalogo-iluminacao/app/router"
	"catalogo-iluminacao/config"
	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/service"
)

// App is the wired application
type App struct {
	Handler http.Handler
	Store   *service.CatalogStore
}

// Initialize initializes the application.
// Missing Google credentials are not fatal: sheets fall back to the public CSV export
// and photos to placeholders.
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	var driveService service.DriveServiceInterface
	var sheetsAPI *sheets.Service
	if cfg.CredentialsPath == "" {
		logging.L().Warnf("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set: photos use placeholders, sheets use the public CSV export")
	} else {
		imageURL := service.PublicDriveURL
		if cfg.ProxyPhotos {
			imageURL = func(fileID string) string {
				return service.ThumbnailURL(fileID, service.SizeThumb)
			}
		}
		ds, err := service.NewDriveService(ctx, imageURL,
			option.WithCredentialsFile(cfg.CredentialsPath),
			option.WithScopes(drive.DriveReadonlyScope),
		)
		if err != nil {
			logging.L().Errorf("❌ Drive disabled: %v", err)
		} else {
			driveService = ds
		}

		sheetsAPI, err = sheets.NewService(ctx,
			option.WithCredentialsFile(cfg.CredentialsPath),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope),
		)
		if err != nil {
			logging.L().Errorf("❌ Sheets API disabled, using CSV export: %v", err)
			sheetsAPI = nil
		}
	}

	catalogService, err := service.NewCatalogService(cfg.PublicBaseURL, cfg.ChromePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog service: %w", err)
	}

	loader := service.NewCatalogLoader(httpClient, cfg.PublicBaseURL, cfg.FallbackBaseURL)
	resolver := service.NewPhotoResolver(httpClient, cfg.PublicBaseURL, cfg.ShareURL)
	store := service.NewCatalogStore(loader, resolver, cfg.SheetURL)

	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(store, catalogService),
		Sheet:   controller.NewSheetController(service.NewSheetService(httpClient, sheetsAPI)),
		Photo:   controller.NewPhotoController(service.NewPhotoService(driveService)),
	}

	return &App{
		Handler: router.SetupRoutes(controllers),
		Store:   store,
	}, nil
}
