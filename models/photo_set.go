package models

import "encoding/json"

// PhotoSet represents the three photo variants of one product.
// Empty strings mean the variant is absent.
type PhotoSet struct {
	WhiteBackground string
	Ambient         string
	Measures        string
}

type photoSetJSON struct {
	WhiteBackground *string `json:"white_background"`
	Ambient         *string `json:"ambient"`
	Measures        *string `json:"measures"`
}

// IsEmpty reports whether no variant has a URL
func (p PhotoSet) IsEmpty() bool {
	return p.WhiteBackground == "" && p.Ambient == "" && p.Measures == ""
}

// MarshalJSON emits null for absent variants
func (p PhotoSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(photoSetJSON{
		WhiteBackground: nullable(p.WhiteBackground),
		Ambient:         nullable(p.Ambient),
		Measures:        nullable(p.Measures),
	})
}

func (p *PhotoSet) UnmarshalJSON(data []byte) error {
	var raw photoSetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PhotoSet{
		WhiteBackground: deref(raw.WhiteBackground),
		Ambient:         deref(raw.Ambient),
		Measures:        deref(raw.Measures),
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
