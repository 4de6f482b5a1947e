// Package sorter_test contains tests for the sorter package.
package sorter_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/filescom/sorter"
)

func TestMakeFromStr(t *testing.T) {
	tests := []struct {
		name          string
		sortString    string
		allowedFields []string
		expected      sorter.SortOpts
	}{
		{
			name:          "empty string",
			sortString:    "",
			allowedFields: []string{"size", "mtime"},
			expected:      nil,
		},
		{
			name:          "valid single sort option",
			sortString:    "size:asc",
			allowedFields: []string{"size", "mtime"},
			expected: sorter.Make(
				sorter.Opt{F: "size", D: "asc"},
			),
		},
		{
			name:          "valid multiple sort options",
			sortString:    "size:asc,mtime:desc",
			allowedFields: []string{"size", "mtime"},
			expected: sorter.Make(
				sorter.Opt{F: "size", D: "asc"},
				sorter.Opt{F: "mtime", D: "desc"},
			),
		},
		{
			name:          "invalid field not in allowed list",
			sortString:    "size:asc,owner:desc",
			allowedFields: []string{"size", "mtime"},
			expected: sorter.Make(
				sorter.Opt{F: "size", D: "asc"},
			),
		},
		{
			name:          "invalid direction",
			sortString:    "size:ascending,mtime:desc",
			allowedFields: []string{"size", "mtime"},
			expected: sorter.Make(
				sorter.Opt{F: "mtime", D: "desc"},
			),
		},
		{
			name:          "invalid format missing colon",
			sortString:    "size_asc,mtime:desc",
			allowedFields: []string{"size", "mtime"},
			expected: sorter.Make(
				sorter.Opt{F: "mtime", D: "desc"},
			),
		},
		{
			name:          "with spaces to trim",
			sortString:    " size : asc , mtime : desc ",
			allowedFields: []string{"size", "mtime"},
			expected: sorter.Make(
				sorter.Opt{F: "size", D: "asc"},
				sorter.Opt{F: "mtime", D: "desc"},
			),
		},
		{
			name:          "mixed case direction",
			sortString:    "size:ASC,mtime:DESC",
			allowedFields: []string{"size", "mtime"},
			expected: sorter.Make(
				sorter.Opt{F: "size", D: "asc"},
				sorter.Opt{F: "mtime", D: "desc"},
			),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := sorter.MakeFromStr(tc.sortString, tc.allowedFields...)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestSortOptsFirst(t *testing.T) {
	assert.Nil(t, sorter.SortOpts(nil).First())

	opts := sorter.Make(sorter.Opt{F: "size", D: "desc"}, sorter.Opt{F: "mtime", D: "asc"})
	assert.Equal(t, &sorter.Opt{F: "size", D: "desc"}, opts.First())
}

func TestSort(t *testing.T) {
	type item struct {
		name string
		size int
	}
	bySize := func(a, b item) int { return cmp.Compare(a.size, b.size) }

	tests := []struct {
		name     string
		opt      sorter.Opt
		expected []string
	}{
		{
			name:     "ascending keeps ties in order",
			opt:      sorter.Opt{F: "size", D: sorter.Asc},
			expected: []string{"c", "a", "d", "b"},
		},
		{
			name:     "descending keeps ties in order",
			opt:      sorter.Opt{F: "size", D: sorter.Desc},
			expected: []string{"b", "a", "d", "c"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items := []item{{"a", 2}, {"b", 3}, {"c", 1}, {"d", 2}}
			sorter.Sort(items, tc.opt, bySize)

			names := make([]string, 0, len(items))
			for _, it := range items {
				names = append(names, it.name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}
