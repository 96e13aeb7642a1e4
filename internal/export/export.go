// Package export renders the inventory as a downloadable document: CSV for
// interchange and XLSX for spreadsheet users. Headers and the filename
// prefix follow the active locale.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/svaldez/stockwise/internal/domain/materials"
	"github.com/svaldez/stockwise/internal/i18n"
)

const dateLayout = "2006-01-02"

// Filename builds the download name, e.g. inventario_stockwise_20260831.csv.
func Filename(b *i18n.Bundle, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", b.T("export.prefix"), now.Format("20060102"), ext)
}

func headerRow(b *i18n.Bundle) []string {
	return []string{
		b.T("csv.id"),
		b.T("csv.name"),
		b.T("csv.description"),
		b.T("csv.quantity"),
		b.T("csv.date"),
		b.T("csv.threshold"),
	}
}

func row(m materials.Material) []string {
	return []string{
		m.ID,
		m.Name,
		m.Description,
		strconv.Itoa(m.Quantity),
		m.PurchaseDate.Format(dateLayout),
		strconv.Itoa(m.LowStockThreshold),
	}
}

// CSV writes the inventory as RFC-4180 CSV: cells holding a comma, a quote
// or a newline come out quoted with inner quotes doubled.
func CSV(w io.Writer, list []materials.Material, b *i18n.Bundle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headerRow(b)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, m := range list {
		if err := cw.Write(row(m)); err != nil {
			return fmt.Errorf("write row %s: %w", m.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// XLSX builds the same table as a single-sheet workbook.
func XLSX(list []materials.Material, b *i18n.Bundle) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := toAny(headerRow(b))
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, m := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		// quantities stay numeric so the sheet can be summed directly
		r := []interface{}{m.ID, m.Name, m.Description, m.Quantity, m.PurchaseDate.Format(dateLayout), m.LowStockThreshold}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, fmt.Errorf("write row %s: %w", m.ID, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func toAny(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
