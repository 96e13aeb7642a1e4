package materials

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// minPurchaseDate is the lower bound of the date picker in the form; the
// upper bound is the end of the current day.
var minPurchaseDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// FormInput is the raw material form as it arrives over HTTP, before any
// coercion.
type FormInput struct {
	Name              string
	Description       string
	Quantity          string
	PurchaseDate      string // "2006-01-02" from <input type="date">
	LowStockThreshold string
}

// Validator turns raw form input into FormValues, collecting one message id
// per offending field. An empty error map means the submission is valid.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("purchasedate", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(time.Time)
		if !ok || d.IsZero() {
			return false
		}
		// the picker value parses as a UTC instant; bound it with the local
		// calendar day so "today" stays valid in every timezone
		now := time.Now()
		endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		return !d.Before(minPurchaseDate) && d.Before(endOfToday)
	})
	return &Validator{v: v}
}

// Parse coerces and validates in. The returned map is keyed by form field
// name (name, description, quantity, purchaseDate, lowStockThreshold) and
// holds i18n message ids, not display text.
func (va *Validator) Parse(in FormInput) (FormValues, map[string]string) {
	errs := map[string]string{}
	var out FormValues

	out.Name = strings.TrimSpace(in.Name)
	out.Description = strings.TrimSpace(in.Description)

	out.Quantity = parseCount(in.Quantity, "quantity", "val.quantity.int", errs)
	out.LowStockThreshold = parseCount(in.LowStockThreshold, "lowStockThreshold", "val.threshold.int", errs)

	switch d := strings.TrimSpace(in.PurchaseDate); d {
	case "":
		errs["purchaseDate"] = "val.date.required"
	default:
		t, err := time.ParseInLocation("2006-01-02", d, time.UTC)
		if err != nil {
			errs["purchaseDate"] = "val.date.invalid"
		} else {
			out.PurchaseDate = t
		}
	}

	if err := va.v.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				field, id := messageFor(fe)
				if _, taken := errs[field]; !taken {
					errs[field] = id
				}
			}
		}
	}

	if len(errs) > 0 {
		return out, errs
	}
	return out, nil
}

func parseCount(raw, field, intMsg string, errs map[string]string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0 // blank numeric inputs coerce to zero, as the form defaults do
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs[field] = intMsg
		return 0
	}
	return n
}

func messageFor(fe validator.FieldError) (field, id string) {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "max" {
			return "name", "val.name.max"
		}
		return "name", "val.name.required"
	case "Description":
		return "description", "val.description.max"
	case "Quantity":
		return "quantity", "val.quantity.min"
	case "LowStockThreshold":
		return "lowStockThreshold", "val.threshold.min"
	case "PurchaseDate":
		if fe.Tag() == "required" {
			return "purchaseDate", "val.date.required"
		}
		return "purchaseDate", "val.date.range"
	}
	return strings.ToLower(fe.StructField()), "val.invalid"
}
