package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"google.golang.org/api/sheets/v4"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/utils"
)

const (
	defaultExportBaseURL = "https://docs.google.com/spreadsheets/d"
	sheetFetchTimeout    = 10 * time.Second
	// sheetRange covers every column of the first sheet
	sheetRange = "A:ZZ"
)

// markupRegex matches a well-formed tag such as <b> or <span class="x">.
// A bare "<" in plain text ("a<b", "Largura<Profundidade") does not match.
var markupRegex = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)

// SheetService reads catalog rows from a Google Sheet.
// With an authenticated Sheets API client it reads values directly; otherwise it
// downloads the public CSV export.
// Implements SheetServiceInterface
type SheetService struct {
	api           *sheets.Service
	httpClient    *http.Client
	exportBaseURL string
	policy        *bluemonday.Policy
}

// NewSheetService creates a new SheetService. api may be nil.
func NewSheetService(httpClient *http.Client, api *sheets.Service) *SheetService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SheetService{
		api:           api,
		httpClient:    httpClient,
		exportBaseURL: defaultExportBaseURL,
		policy:        bluemonday.StrictPolicy(),
	}
}

// Ensure SheetService implements SheetServiceInterface
var _ SheetServiceInterface = (*SheetService)(nil)

// FetchRows returns one object per data row, keyed by the header row
func (s *SheetService) FetchRows(ctx context.Context, sheetURL string) ([]map[string]any, error) {
	sheetID, err := utils.ExtractSheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, sheetFetchTimeout)
	defer cancel()

	var rows [][]string
	if s.api != nil {
		rows, err = s.fetchValues(ctx, sheetID)
	} else {
		rows, err = s.fetchCSV(ctx, sheetID)
	}
	if err != nil {
		return nil, err
	}

	records := s.rowsToRecords(rows)
	logging.L().Infof("✓ Sheet %s: %d rows", sheetID, len(records))
	return records, nil
}

func (s *SheetService) fetchValues(ctx context.Context, sheetID string) ([][]string, error) {
	resp, err := s.api.Spreadsheets.Values.Get(sheetID, sheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet values: %w", err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (s *SheetService) fetchCSV(ctx context.Context, sheetID string) ([][]string, error) {
	exportURL := fmt.Sprintf("%s/%s/export?format=csv", s.exportBaseURL, sheetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build export request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("Google Sheets server timed out (%s)", sheetFetchTimeout)
		}
		return nil, fmt.Errorf("network error connecting to Google Sheets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("Google Sheets returned HTTP %d. The sheet may not be public or the URL may be invalid", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV from Google Sheets: %w", err)
	}
	return rows, nil
}

// rowsToRecords turns the header row into keys. Blank rows are skipped, missing
// cells become null and unnamed columns are called "Unnamed: N".
func (s *SheetService) rowsToRecords(rows [][]string) []map[string]any {
	records := []map[string]any{}
	if len(rows) == 0 {
		return records
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		headers[i] = h
	}

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		record := make(map[string]any, len(headers))
		for i, h := range headers {
			if i >= len(row) {
				record[h] = nil
				continue
			}
			record[h] = utils.ParseCell(s.sanitize(row[i]))
		}
		records = append(records, record)
	}
	return records
}

// sanitize strips tags typed into a cell, keeping its text.
// Cells without a well-formed tag are returned verbatim.
func (s *SheetService) sanitize(cell string) string {
	if !markupRegex.MatchString(cell) {
		return cell
	}
	return html.UnescapeString(s.policy.Sanitize(cell))
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
