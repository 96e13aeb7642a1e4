// Package web is the page surface: one server-rendered inventory page plus
// the form, confirmation and download routes around it. Handlers translate
// requests into service calls and never touch the list themselves.
package web

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/svaldez/stockwise/internal/domain/materials"
	"github.com/svaldez/stockwise/internal/export"
	"github.com/svaldez/stockwise/internal/i18n"
	"github.com/svaldez/stockwise/internal/infra/metrics"
)

type Handler struct {
	svc    *materials.Service
	val    *materials.Validator
	bundle *i18n.Bundle
	log    *slog.Logger
	tmpl   map[string]*template.Template
}

func New(svc *materials.Service, bundle *i18n.Bundle, log *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		val:    materials.NewValidator(),
		bundle: bundle,
		log:    log,
		tmpl:   parseTemplates(),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.index)
	r.Get("/materials/new", h.newForm)
	r.Post("/materials", h.create)
	r.Get("/materials/{id}/edit", h.editForm)
	r.Post("/materials/{id}", h.update)
	r.Get("/materials/{id}/delete", h.confirmDelete)
	r.Post("/materials/{id}/delete", h.delete)
	r.Post("/materials/{id}/quantity", h.quantity)
	r.Get("/export.csv", h.exportCSV)
	r.Get("/export.xlsx", h.exportXLSX)
	return r
}

func (h *Handler) base(w http.ResponseWriter, r *http.Request) baseData {
	return baseData{bundle: h.bundle, Flash: popFlash(w, r)}
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	sortKey := materials.ParseSortKey(r.URL.Query().Get("sort"))
	desc := r.URL.Query().Get("dir") == "desc"

	list := h.svc.List()
	rows := materials.SortBy(materials.Filter(list, query), sortKey, desc, h.bundle.Tag())

	names := make([]string, 0)
	for _, m := range h.svc.LowStock() {
		names = append(names, m.Name)
	}

	h.render(w, http.StatusOK, "index.html", indexData{
		baseData:      h.base(w, r),
		Summary:       h.svc.Summary(),
		LowStockNames: strings.Join(names, ", "),
		Query:         query,
		SortKey:       sortKey,
		Desc:          desc,
		Rows:          rows,
		Empty:         len(list) == 0 && query == "",
		NoResults:     len(rows) == 0 && query != "",
	})
}

func (h *Handler) newForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "form.html", formData{
		baseData: h.base(w, r),
		Action:   "/materials",
		Values: materials.FormInput{
			Quantity:          "0",
			PurchaseDate:      time.Now().Format("2006-01-02"),
			LowStockThreshold: "0",
		},
		Today: time.Now().Format("2006-01-02"),
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	in := readForm(r)
	values, fieldErrs := h.val.Parse(in)
	if fieldErrs != nil {
		h.render(w, http.StatusUnprocessableEntity, "form.html", formData{
			baseData: h.base(w, r),
			Action:   "/materials",
			Values:   in,
			Errors:   h.localize(fieldErrs),
			Today:    time.Now().Format("2006-01-02"),
		})
		return
	}

	m, saveErr := h.svc.Add(r.Context(), values)
	h.mutationFlash(w, saveErr, "toast.added.title", h.bundle.T("toast.added.body", m.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := h.svc.Get(id)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	// seed from the live record on every open; abandoned edits never linger
	h.render(w, http.StatusOK, "form.html", formData{
		baseData: h.base(w, r),
		Editing:  true,
		Action:   "/materials/" + id,
		Values:   formInputFrom(m),
		Today:    time.Now().Format("2006-01-02"),
	})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	in := readForm(r)
	values, fieldErrs := h.val.Parse(in)
	if fieldErrs != nil {
		h.render(w, http.StatusUnprocessableEntity, "form.html", formData{
			baseData: h.base(w, r),
			Editing:  true,
			Action:   "/materials/" + id,
			Values:   in,
			Errors:   h.localize(fieldErrs),
			Today:    time.Now().Format("2006-01-02"),
		})
		return
	}

	m, err := h.svc.Update(r.Context(), id, values)
	if errors.Is(err, materials.ErrNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.mutationFlash(w, err, "toast.updated.title", h.bundle.T("toast.updated.body", m.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := h.svc.Get(id)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "delete.html", deleteData{
		baseData: h.base(w, r),
		ID:       m.ID,
		Name:     m.Name,
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := h.svc.Delete(r.Context(), id)
	if errors.Is(err, materials.ErrNotFound) {
		// already gone: silent no-op
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.saveWarning(w)
	} else {
		setFlash(w, Flash{
			Level: "destructive",
			Title: h.bundle.T("toast.deleted.title"),
			Body:  h.bundle.T("toast.deleted.body", m.Name),
		})
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) quantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	back := backURL(r)

	m, err := h.svc.Get(id)
	if err != nil {
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	next := m.Quantity
	if raw := r.PostFormValue("value"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			next = n
		}
	} else if delta, err := strconv.Atoi(r.PostFormValue("delta")); err == nil {
		next += delta
	}

	if _, err := h.svc.SetQuantity(r.Context(), id, next); err != nil && !errors.Is(err, materials.ErrNotFound) {
		h.saveWarning(w)
	}
	// no flash on success: steppers fire on every click
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	list := h.svc.List()
	if len(list) == 0 {
		h.emptyExportFlash(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.downloadFlash(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(h.bundle, "csv", time.Now())))
	if err := export.CSV(w, list, h.bundle); err != nil {
		h.log.Error("csv export failed", "err", err)
		return
	}
	metrics.Exports.WithLabelValues("csv").Inc()
}

func (h *Handler) exportXLSX(w http.ResponseWriter, r *http.Request) {
	list := h.svc.List()
	if len(list) == 0 {
		h.emptyExportFlash(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	raw, err := export.XLSX(list, h.bundle)
	if err != nil {
		h.log.Error("xlsx export failed", "err", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	h.downloadFlash(w)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(h.bundle, "xlsx", time.Now())))
	_, _ = w.Write(raw)
	metrics.Exports.WithLabelValues("xlsx").Inc()
}

func (h *Handler) localize(fieldErrs map[string]string) map[string]string {
	out := make(map[string]string, len(fieldErrs))
	for field, id := range fieldErrs {
		out[field] = h.bundle.T(id)
	}
	return out
}

// mutationFlash reports a successful mutation, downgraded to a warning when
// the write-through to the store failed (the change is still live in
// memory).
func (h *Handler) mutationFlash(w http.ResponseWriter, saveErr error, titleID, body string) {
	if saveErr != nil {
		h.saveWarning(w)
		return
	}
	setFlash(w, Flash{Level: "default", Title: h.bundle.T(titleID), Body: body})
}

func (h *Handler) saveWarning(w http.ResponseWriter) {
	setFlash(w, Flash{Level: "warning", Title: h.bundle.T("app.title"), Body: h.bundle.T("toast.savefailed")})
}

// downloadFlash queues the "download started" toast; the browser keeps the
// list page open during an attachment download, so it shows on the next view.
func (h *Handler) downloadFlash(w http.ResponseWriter) {
	setFlash(w, Flash{
		Level: "default",
		Title: h.bundle.T("toast.download.title"),
		Body:  h.bundle.T("toast.download.body"),
	})
}

func (h *Handler) emptyExportFlash(w http.ResponseWriter) {
	setFlash(w, Flash{
		Level: "default",
		Title: h.bundle.T("toast.empty.title"),
		Body:  h.bundle.T("toast.empty.body"),
	})
}

func readForm(r *http.Request) materials.FormInput {
	return materials.FormInput{
		Name:              r.PostFormValue("name"),
		Description:       r.PostFormValue("description"),
		Quantity:          r.PostFormValue("quantity"),
		PurchaseDate:      r.PostFormValue("purchaseDate"),
		LowStockThreshold: r.PostFormValue("lowStockThreshold"),
	}
}

// backURL rebuilds the list URL the stepper was clicked from, using the
// view state carried in the action's query string.
func backURL(r *http.Request) string {
	q := url.Values{}
	for _, k := range []string{"q", "sort", "dir"} {
		if v := r.URL.Query().Get(k); v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
