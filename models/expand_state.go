package models

import (
	"net/url"
	"sort"
	"strconv"
)

// ExpandParam is the query parameter carrying the indices of expanded cards
const ExpandParam = "open"

// ExpandState maps a card index to its expanded flag.
// It is owned by the view; cards not present are collapsed.
type ExpandState map[int]bool

// ParseExpandState reads repeated "open" values, ignoring anything that is not a card index
func ParseExpandState(values []string) ExpandState {
	state := ExpandState{}
	for _, v := range values {
		idx, err := strconv.Atoi(v)
		if err != nil || idx < 0 {
			continue
		}
		state[idx] = true
	}
	return state
}

// IsExpanded reports whether card idx is expanded
func (s ExpandState) IsExpanded(idx int) bool {
	return s[idx]
}

// Toggle returns a copy with card idx flipped; the receiver is left untouched
func (s ExpandState) Toggle(idx int) ExpandState {
	next := make(ExpandState, len(s)+1)
	for k, v := range s {
		if v {
			next[k] = true
		}
	}
	if next[idx] {
		delete(next, idx)
	} else {
		next[idx] = true
	}
	return next
}

// Encode renders the state as a sorted query string ("open=0&open=3")
func (s ExpandState) Encode() string {
	indices := make([]int, 0, len(s))
	for k, v := range s {
		if v {
			indices = append(indices, k)
		}
	}
	sort.Ints(indices)

	q := url.Values{}
	for _, idx := range indices {
		q.Add(ExpandParam, strconv.Itoa(idx))
	}
	return q.Encode()
}

// Href returns path with the encoded state appended
func (s ExpandState) Href(path string) string {
	if q := s.Encode(); q != "" {
		return path + "?" + q
	}
	return path
}
