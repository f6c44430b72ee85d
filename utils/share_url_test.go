package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSheetID(t *testing.T) {
	id, err := ExtractSheetID("https://docs.google.com/spreadsheets/d/ABC123xyz/edit?usp=sharing")
	require.NoError(t, err)
	assert.Equal(t, "ABC123xyz", id)

	id, err = ExtractSheetID("https://docs.google.com/spreadsheets/d/14C-BtunMb82_fY/export?format=csv")
	require.NoError(t, err)
	assert.Equal(t, "14C-BtunMb82_fY", id)
}

func TestExtractSheetIDInvalid(t *testing.T) {
	_, err := ExtractSheetID("https://example.com/not-a-sheet")
	assert.ErrorIs(t, err, ErrInvalidSheetURL)
}

func TestExtractFolderID(t *testing.T) {
	tests := []struct {
		name     string
		shareURL string
		want     string
	}{
		{"folder link", "https://drive.google.com/drive/folders/1TtK0fnadxl3r1-8iYlv2GFf5LgdKxmID?usp=sharing", "1TtK0fnadxl3r1-8iYlv2GFf5LgdKxmID"},
		{"user folder link", "https://drive.google.com/drive/u/0/folders/abcdefghij_12", "abcdefghij_12"},
		{"legacy open link", "https://drive.google.com/open?id=abcdefghij_12", "abcdefghij_12"},
		{"bare id", "  1TtK0fnadxl3r1-8iYlv2GFf5LgdKxmID ", "1TtK0fnadxl3r1-8iYlv2GFf5LgdKxmID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFolderID(tt.shareURL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFolderIDInvalid(t *testing.T) {
	for _, shareURL := range []string{"", "x", "https://example.com/share", "https://1drv.ms/f/c/abc123?e=xyz"} {
		_, err := ExtractFolderID(shareURL)
		assert.ErrorIsf(t, err, ErrInvalidShareURL, "share url %q", shareURL)
	}
}
