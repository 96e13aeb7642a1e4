package materials

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortByName        SortKey = "name"
	SortByDescription SortKey = "description"
	SortByQuantity    SortKey = "quantity"
	SortByDate        SortKey = "purchaseDate"
	SortByThreshold   SortKey = "lowStockThreshold"
)

// ParseSortKey falls back to the default column (name) for anything it does
// not recognize, so a hand-edited query string cannot break the page.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByName, SortByDescription, SortByQuantity, SortByDate, SortByThreshold:
		return SortKey(s)
	}
	return SortByName
}

// Filter returns the items whose name or description contains term,
// case-insensitively. An empty term matches everything.
func Filter(list []Material, term string) []Material {
	if term == "" {
		return list
	}
	term = strings.ToLower(term)
	out := make([]Material, 0, len(list))
	for _, m := range list {
		if strings.Contains(strings.ToLower(m.Name), term) ||
			strings.Contains(strings.ToLower(m.Description), term) {
			out = append(out, m)
		}
	}
	return out
}

// SortBy orders a copy of list by key. Text columns use locale-aware
// collation, numeric columns compare numerically and the purchase date
// compares by instant rather than by its rendered form.
func SortBy(list []Material, key SortKey, desc bool, tag language.Tag) []Material {
	out := make([]Material, len(list))
	copy(out, list)

	col := collate.New(tag)
	less := func(a, b Material) bool {
		switch key {
		case SortByDescription:
			return col.CompareString(a.Description, b.Description) < 0
		case SortByQuantity:
			return a.Quantity < b.Quantity
		case SortByDate:
			return a.PurchaseDate.Before(b.PurchaseDate)
		case SortByThreshold:
			return a.LowStockThreshold < b.LowStockThreshold
		default:
			return col.CompareString(a.Name, b.Name) < 0
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
