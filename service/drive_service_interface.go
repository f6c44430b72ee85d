package service

import (
	"context"

	"catalogo-iluminacao/models"
)

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListFolderImages(ctx context.Context, folderID string) ([]models.DriveImage, error)
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}

// SheetServiceInterface defines the contract for reading spreadsheet rows
type SheetServiceInterface interface {
	FetchRows(ctx context.Context, sheetURL string) ([]map[string]any, error)
}
