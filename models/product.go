package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Column names emitted by the catalog spreadsheet
const (
	FieldID             = "id"
	FieldCode           = "Codigo"
	FieldName           = "Nome"
	FieldDescription    = "Descrição"
	FieldCategory       = "Categoria"
	FieldImageURL       = "URLFoto"
	FieldSpecifications = "Especificacoes"
)

// fieldAliases lists alternative spellings seen in hand-edited sheets
var fieldAliases = map[string][]string{
	FieldCode:           {"Código", "codigo"},
	FieldDescription:    {"Descricao"},
	FieldSpecifications: {"Especificações"},
}

// Product represents a single catalog entry (one spreadsheet row)
type Product struct {
	ID             string `json:"id"`
	Code           string `json:"Codigo"`
	Name           string `json:"Nome"`
	Description    string `json:"Descrição"`
	Category       string `json:"Categoria"`
	ImageURL       string `json:"URLFoto"`
	Specifications string `json:"Especificacoes"`
}

// UnmarshalJSON accepts rows where any cell may be a string, a number or null.
// Spreadsheet exports frequently turn codes like "3" into 3 or 3.0.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode product row: %w", err)
	}

	*p = Product{
		ID:             cellString(raw, FieldID),
		Code:           cellString(raw, FieldCode),
		Name:           cellString(raw, FieldName),
		Description:    cellString(raw, FieldDescription),
		Category:       cellString(raw, FieldCategory),
		ImageURL:       cellString(raw, FieldImageURL),
		Specifications: cellString(raw, FieldSpecifications),
	}
	return nil
}

// MarshalJSON writes the row back with the sheet's column names, omitting empty cells.
// Numeric identifiers are emitted as JSON numbers.
func (p Product) MarshalJSON() ([]byte, error) {
	row := make(map[string]any, 7)
	if p.ID != "" {
		if _, err := strconv.ParseInt(p.ID, 10, 64); err == nil {
			row[FieldID] = json.Number(p.ID)
		} else {
			row[FieldID] = p.ID
		}
	}
	for field, value := range map[string]string{
		FieldCode:           p.Code,
		FieldName:           p.Name,
		FieldDescription:    p.Description,
		FieldCategory:       p.Category,
		FieldImageURL:       p.ImageURL,
		FieldSpecifications: p.Specifications,
	} {
		if value != "" {
			row[field] = value
		}
	}
	return json.Marshal(row)
}

func cellString(raw map[string]any, field string) string {
	names := append([]string{field}, fieldAliases[field]...)
	for _, name := range names {
		value, ok := raw[name]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return normalizeNumber(v)
		case bool:
			return strconv.FormatBool(v)
		default:
			return fmt.Sprint(v)
		}
	}
	return ""
}

// normalizeNumber renders integral floats ("3.0") as plain integers ("3")
func normalizeNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}
