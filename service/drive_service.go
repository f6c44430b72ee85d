package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/models"
	"catalogo-iluminacao/utils"
)

// imageMimeTypes are the Drive files treated as product photos
var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
}

// DriveService handles Google Drive API operations
type DriveService struct {
	client   *drive.Service
	imageURL func(fileID string) string
}

// NewDriveService creates a new DriveService.
// Pass option.WithCredentialsFile with the Service Account JSON in production.
// imageURL builds the URL published for each image; nil uses the public Drive link.
func NewDriveService(ctx context.Context, imageURL func(fileID string) string, opts ...option.ClientOption) (*DriveService, error) {
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	if imageURL == nil {
		imageURL = PublicDriveURL
	}
	return &DriveService{
		client:   driveService,
		imageURL: imageURL,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// PublicDriveURL is the direct link of a file shared publicly
func PublicDriveURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?id=%s", fileID)
}

// ListFolderImages lists all image files directly inside a Drive folder
func (ds *DriveService) ListFolderImages(ctx context.Context, folderID string) ([]models.DriveImage, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)").
			SupportsAllDrives(true).
			IncludeItemsFromAllDrives(true)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	var images []models.DriveImage
	for _, file := range allFiles {
		if !isImageFile(file) {
			continue
		}
		images = append(images, models.DriveImage{
			FileID: file.Id,
			Name:   file.Name,
			URL:    ds.imageURL(file.Id),
		})
	}

	logging.L().Debugf("📦 Folder %s: %d images out of %d files", folderID, len(images), len(allFiles))
	return images, nil
}

// isImageFile trusts the mime type, falling back to the extension for untyped uploads
func isImageFile(file *drive.File) bool {
	mime := strings.ToLower(file.MimeType)
	if mime == "" || mime == "application/octet-stream" {
		return utils.IsImageFileName(file.Name)
	}
	return imageMimeTypes[mime]
}

// DownloadImage downloads the raw bytes of a Drive file
func (ds *DriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).SupportsAllDrives(true).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}
