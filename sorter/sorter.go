// Package sorter provides utilities for parsing and applying sorting options.
// It supports parsing sorting strings (e.g., "size:desc,display_name:asc") into
// structured options and ordering in-memory slices by them.
package sorter

import (
	"slices"
	"strings"
)

type (
	SortOpts []Opt

	SortDirection string
)

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"

	// expectedPartsCount is the expected number of parts in a sort option (field:direction).
	expectedPartsCount = 2
)

// MakeFromStr parses a sorting string (e.g., "size:desc,created_at:asc") into a slice of Opt.
// It filters out invalid or disallowed fields and directions, ensuring only valid options are returned.
// The allowedFields parameter specifies the list of fields that are permitted for sorting.
func MakeFromStr(sortString string, allowedFields ...string) SortOpts {
	if sortString == "" {
		return nil
	}

	var options []Opt
	pairs := strings.SplitSeq(sortString, ",")
	for pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) != expectedPartsCount {
			continue
		}

		key := strings.TrimSpace(parts[0])
		if !slices.Contains(allowedFields, key) {
			continue
		}

		direction := strings.ToLower(strings.TrimSpace(parts[1]))
		if direction != string(Asc) && direction != string(Desc) {
			continue
		}

		options = append(options, Opt{
			F: key,
			D: SortDirection(direction),
		})
	}

	return options
}

// Make creates a slice of Opt from a variadic list of Opt.
func Make(sortOptions ...Opt) SortOpts {
	return sortOptions
}

// First returns the first option, or nil when there is none.
func (s SortOpts) First() *Opt {
	if len(s) == 0 {
		return nil
	}
	o := s[0]
	return &o
}

// Opt represents a single sorting option, consisting of a field and a direction.
type Opt struct {
	F string        `json:"field"     validate:"required"`       // F is the field to sort by.
	D SortDirection `json:"direction" validate:"oneof=asc desc"` // D is the sorting direction (asc or desc).
}

// Sort orders items in place by o using the ascending comparator cmp.
// Desc reverses the comparison. Equal elements keep their relative order.
func Sort[T any](items []T, o Opt, cmp func(a, b T) int) {
	if o.D == Desc {
		slices.SortStableFunc(items, func(a, b T) int { return cmp(b, a) })
		return
	}
	slices.SortStableFunc(items, cmp)
}
