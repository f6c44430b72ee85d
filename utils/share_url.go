package utils

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	// ErrInvalidSheetURL is returned when no sheet ID can be found in a Google Sheets link
	ErrInvalidSheetURL = errors.New("invalid Google Sheets URL")
	// ErrInvalidShareURL is returned when no folder ID can be found in a Drive share link
	ErrInvalidShareURL = errors.New("invalid Drive share URL")
)

var (
	sheetIDRegex  = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)
	folderIDRegex = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)
	bareIDRegex   = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,}$`)
)

// ExtractSheetID returns the sheet ID from a link such as
// https://docs.google.com/spreadsheets/d/ID/edit?usp=sharing
func ExtractSheetID(sheetURL string) (string, error) {
	m := sheetIDRegex.FindStringSubmatch(sheetURL)
	if len(m) != 2 {
		return "", ErrInvalidSheetURL
	}
	return m[1], nil
}

// ExtractFolderID accepts a Drive folder link (.../drive/folders/ID?usp=sharing),
// a legacy open?id=ID link, or a bare folder ID
func ExtractFolderID(shareURL string) (string, error) {
	shareURL = strings.TrimSpace(shareURL)
	if shareURL == "" {
		return "", ErrInvalidShareURL
	}
	if bareIDRegex.MatchString(shareURL) {
		return shareURL, nil
	}
	if m := folderIDRegex.FindStringSubmatch(shareURL); len(m) == 2 {
		return m[1], nil
	}
	if u, err := url.Parse(shareURL); err == nil {
		if id := u.Query().Get("id"); bareIDRegex.MatchString(id) {
			return id, nil
		}
	}
	return "", ErrInvalidShareURL
}
