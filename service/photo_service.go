package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/models"
	"catalogo-iluminacao/utils"
)

// ErrDriveNotConfigured is returned when no Drive credentials were provided
var ErrDriveNotConfigured = errors.New("drive credentials not configured")

// ThumbnailPath is the route serving optimised Drive photos
const ThumbnailPath = "/catalog/photos/thumb"

// ThumbnailURL is the proxied URL of a Drive file at the given size
func ThumbnailURL(fileID, size string) string {
	return ThumbnailPath + "?" + url.Values{"fileId": {fileID}, "size": {size}}.Encode()
}

// PhotoService answers the photo-lookup endpoints from a shared Drive folder
type PhotoService struct {
	drive DriveServiceInterface
}

// NewPhotoService creates a new PhotoService. A nil drive disables lookups.
func NewPhotoService(drive DriveServiceInterface) *PhotoService {
	return &PhotoService{drive: drive}
}

// PhotosForCode returns the categorised photo set of code inside the shared folder
func (s *PhotoService) PhotosForCode(ctx context.Context, shareURL, code string) (models.PhotoSet, error) {
	images, err := s.folderImages(ctx, shareURL)
	if err != nil {
		return models.PhotoSet{}, err
	}
	return utils.CategorizePhotos(images, code), nil
}

// ImagesForCode returns every image of the shared folder whose name contains code
func (s *PhotoService) ImagesForCode(ctx context.Context, shareURL, code string) ([]models.DriveImage, error) {
	images, err := s.folderImages(ctx, shareURL)
	if err != nil {
		return nil, err
	}
	matched := []models.DriveImage{}
	for _, img := range images {
		if utils.MatchesCode(img.Name, code) {
			matched = append(matched, img)
		}
	}
	return matched, nil
}

// Thumbnail downloads a Drive file and returns it optimised for size
func (s *PhotoService) Thumbnail(ctx context.Context, fileID, size string) ([]byte, error) {
	if s.drive == nil {
		return nil, ErrDriveNotConfigured
	}
	data, err := s.drive.DownloadImage(ctx, fileID)
	if err != nil {
		return nil, err
	}
	optimized, err := OptimizeImage(data, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize %s: %w", fileID, err)
	}
	logging.L().Debugf("✓ Thumbnail %s (%s): %d -> %d bytes", fileID, size, len(data), len(optimized))
	return optimized, nil
}

func (s *PhotoService) folderImages(ctx context.Context, shareURL string) ([]models.DriveImage, error) {
	if s.drive == nil {
		return nil, ErrDriveNotConfigured
	}
	folderID, err := utils.ExtractFolderID(shareURL)
	if err != nil {
		return nil, err
	}
	return s.drive.ListFolderImages(ctx, folderID)
}
