package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      bool
	}{
		{"below threshold", 3, 5, true},
		{"at threshold", 5, 5, true},
		{"above threshold", 6, 5, false},
		{"threshold zero disables alerting", 0, 0, false},
		{"zero quantity with threshold zero", 0, 0, false},
		{"zero quantity with positive threshold", 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Material{Quantity: tt.quantity, LowStockThreshold: tt.threshold}
			assert.Equal(t, tt.want, m.IsLowStock())
		})
	}
}
