package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/svaldez/stockwise/internal/domain/materials"
	"github.com/svaldez/stockwise/internal/i18n"
)

//go:embed templates/*.html
var templatesFS embed.FS

func parseTemplates() map[string]*template.Template {
	pages := []string{"index.html", "form.html", "delete.html"}
	out := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		out[p] = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+p))
	}
	return out
}

// baseData carries what every page needs: the message bundle and the
// pending flash.
type baseData struct {
	bundle *i18n.Bundle
	Flash  *Flash
}

func (d baseData) T(id string, args ...any) string { return d.bundle.T(id, args...) }
func (d baseData) Lang() string                    { return d.bundle.Tag().String() }

type indexData struct {
	baseData
	Summary       materials.Summary
	LowStockNames string
	Query         string
	SortKey       materials.SortKey
	Desc          bool
	Rows          []materials.Material
	Empty         bool
	NoResults     bool
}

func (d indexData) Dir() string {
	if d.Desc {
		return "desc"
	}
	return "asc"
}

// SortURL is the header link for a column: toggles direction on the active
// column, switches to ascending otherwise. The search term survives the
// click.
func (d indexData) SortURL(key string) string {
	dir := "asc"
	if materials.SortKey(key) == d.SortKey && !d.Desc {
		dir = "desc"
	}
	q := url.Values{}
	if d.Query != "" {
		q.Set("q", d.Query)
	}
	q.Set("sort", key)
	q.Set("dir", dir)
	return "/?" + q.Encode()
}

func (d indexData) SortMark(key string) string {
	if materials.SortKey(key) != d.SortKey {
		return ""
	}
	if d.Desc {
		return "▼"
	}
	return "▲"
}

// StateQuery reproduces the current view state as a query string, so the
// stepper forms land back on the same filtered, sorted page.
func (d indexData) StateQuery() string {
	q := url.Values{}
	if d.Query != "" {
		q.Set("q", d.Query)
	}
	q.Set("sort", string(d.SortKey))
	q.Set("dir", d.Dir())
	return "?" + q.Encode()
}

type formData struct {
	baseData
	Editing bool
	Action  string
	Values  materials.FormInput
	Errors  map[string]string
	Today   string
}

type deleteData struct {
	baseData
	ID   string
	Name string
}

func (h *Handler) render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := h.tmpl[page]
	if !ok {
		h.log.Error("unknown template", "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	// render to a buffer first so a template failure does not leave a torn page
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		h.log.Error("render failed", "page", page, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func formInputFrom(m materials.Material) materials.FormInput {
	return materials.FormInput{
		Name:              m.Name,
		Description:       m.Description,
		Quantity:          fmt.Sprintf("%d", m.Quantity),
		PurchaseDate:      m.PurchaseDate.Format("2006-01-02"),
		LowStockThreshold: fmt.Sprintf("%d", m.LowStockThreshold),
	}
}
