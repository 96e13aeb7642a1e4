package materials

import "time"

// Material is one inventory line item. PurchaseDate marshals as RFC-3339,
// which is what both store backends persist.
type Material struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Quantity          int       `json:"quantity"`
	PurchaseDate      time.Time `json:"purchaseDate"`
	LowStockThreshold int       `json:"lowStockThreshold"`
}

// IsLowStock reports whether the item sits at or below its threshold.
// A threshold of 0 means alerting is disabled for the item, never "always
// low".
func (m Material) IsLowStock() bool {
	return m.LowStockThreshold > 0 && m.Quantity <= m.LowStockThreshold
}

// FormValues is a validated form submission: a Material without an assigned
// id. The service assigns one on Add and preserves the existing one on
// Update.
type FormValues struct {
	Name              string    `validate:"required,max=100"`
	Description       string    `validate:"max=500"`
	Quantity          int       `validate:"min=0"`
	PurchaseDate      time.Time `validate:"required,purchasedate"`
	LowStockThreshold int       `validate:"min=0"`
}
