package materials

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilter(t *testing.T) {
	list := []Material{
		{ID: "1", Name: "Screws", Description: "stainless"},
		{ID: "2", Name: "Bolts", Description: "zinc plated"},
		{ID: "3", Name: "Paint", Description: "screen-grade primer"},
	}

	t.Run("empty term matches everything", func(t *testing.T) {
		assert.Len(t, Filter(list, ""), 3)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := Filter(list, "scr")
		require.Len(t, got, 2) // Screws by name, Paint by description
		assert.Equal(t, "Screws", got[0].Name)
		assert.Equal(t, "Paint", got[1].Name)
	})

	t.Run("matches description", func(t *testing.T) {
		got := Filter(list, "ZINC")
		require.Len(t, got, 1)
		assert.Equal(t, "Bolts", got[0].Name)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, Filter(list, "granite"))
	})
}

func TestSortBy(t *testing.T) {
	list := []Material{
		{ID: "1", Name: "Zinc", Quantity: 5, PurchaseDate: day(2024, 1, 10)},
		{ID: "2", Name: "Árbol", Quantity: 20, PurchaseDate: day(2023, 6, 1)},
		{ID: "3", Name: "Bolts", Quantity: 1, PurchaseDate: day(2024, 5, 2)},
	}

	t.Run("name ascending uses collation, not bytes", func(t *testing.T) {
		got := SortBy(list, SortByName, false, language.Spanish)
		// byte order would put Árbol last; collation puts it first
		assert.Equal(t, []string{"Árbol", "Bolts", "Zinc"}, names(got))
	})

	t.Run("name descending", func(t *testing.T) {
		got := SortBy(list, SortByName, true, language.Spanish)
		assert.Equal(t, []string{"Zinc", "Bolts", "Árbol"}, names(got))
	})

	t.Run("quantity is numeric", func(t *testing.T) {
		got := SortBy(list, SortByQuantity, false, language.Spanish)
		assert.Equal(t, []string{"Bolts", "Zinc", "Árbol"}, names(got))
	})

	t.Run("date compares by instant", func(t *testing.T) {
		got := SortBy(list, SortByDate, true, language.Spanish)
		assert.Equal(t, []string{"Bolts", "Zinc", "Árbol"}, names(got))
	})

	t.Run("input slice is untouched", func(t *testing.T) {
		_ = SortBy(list, SortByQuantity, false, language.Spanish)
		assert.Equal(t, "Zinc", list[0].Name)
	})
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByQuantity, ParseSortKey("quantity"))
	assert.Equal(t, SortByName, ParseSortKey(""))
	assert.Equal(t, SortByName, ParseSortKey("nonsense"))
}

func names(list []Material) []string {
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = m.Name
	}
	return out
}
