// Package catalog loads the ordered coupon list from the source spreadsheet.
// The catalog is read once at startup; a reload requires a restart.
package catalog

import (
	"fmt"
	"strings"

	"github.com/discountcoupon/coupon-channel-bot/internal/domain/contract"
	"github.com/discountcoupon/coupon-channel-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// requiredColumns are the header names every catalog file must carry.
var requiredColumns = []string{"title", "description", "code", "countries", "note", "link", "image"}

type xlsxLoader struct {
	path string
	log  zerolog.Logger
}

// NewXLSXLoader creates a loader reading coupons from an xlsx file. The first
// sheet is used; the first row holds the column headers and every following
// row is one coupon, in rotation order.
func NewXLSXLoader(path string, log zerolog.Logger) contract.CatalogLoader {
	return &xlsxLoader{
		path: path,
		log:  log.With().Str("component", "catalog-loader").Logger(),
	}
}

func (l *xlsxLoader) Load() ([]entity.Coupon, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", l.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", l.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog file %s has no header row", l.path)
	}

	columns := make(map[string]int)
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("catalog file %s is missing column %q", l.path, name)
		}
	}

	cell := func(row []string, name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var coupons []entity.Coupon
	for _, row := range rows[1:] {
		coupon := entity.Coupon{
			Title:       cell(row, "title"),
			Description: cell(row, "description"),
			Code:        cell(row, "code"),
			Countries:   cell(row, "countries"),
			Note:        cell(row, "note"),
			Link:        cell(row, "link"),
			Image:       cell(row, "image"),
		}
		if coupon == (entity.Coupon{}) {
			// fully blank row
			continue
		}
		coupons = append(coupons, coupon)
	}

	l.log.Info().Str("file", l.path).Int("coupons_loaded", len(coupons)).Msg("catalog loaded")
	return coupons, nil
}
