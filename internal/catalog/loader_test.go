package catalog

import (
	"path/filepath"
	"testing"

	"github.com/discountcoupon/coupon-channel-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCatalogFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "coupons.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var headerRow = []interface{}{"title", "description", "code", "countries", "note", "link", "image"}

func TestLoad_PreservesRowOrder(t *testing.T) {
	path := writeCatalogFile(t, [][]interface{}{
		headerRow,
		{"Noon", "50% off", "SAVE50", "GCC", "app only", "https://noon.com", "https://img.example/noon.jpg"},
		{"Amazon", "10% off", "AMZ10", "EG", "first order", "https://amazon.eg", "https://img.example/amz.jpg"},
		{"Shein", "free shipping", "SHIP0", "Worldwide", "min 200", "https://shein.com", "https://img.example/shein.jpg"},
	})

	coupons, err := NewXLSXLoader(path, zerolog.Nop()).Load()
	require.NoError(t, err)
	require.Len(t, coupons, 3)

	assert.Equal(t, entity.Coupon{
		Title:       "Noon",
		Description: "50% off",
		Code:        "SAVE50",
		Countries:   "GCC",
		Note:        "app only",
		Link:        "https://noon.com",
		Image:       "https://img.example/noon.jpg",
	}, coupons[0])
	assert.Equal(t, "Amazon", coupons[1].Title)
	assert.Equal(t, "Shein", coupons[2].Title)
}

func TestLoad_HeaderMatchIsCaseInsensitive(t *testing.T) {
	path := writeCatalogFile(t, [][]interface{}{
		{" Title ", "DESCRIPTION", "Code", "Countries", "Note", "Link", "Image"},
		{"Noon", "50% off", "SAVE50", "GCC", "app only", "https://noon.com", "https://img.example/noon.jpg"},
	})

	coupons, err := NewXLSXLoader(path, zerolog.Nop()).Load()
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "Noon", coupons[0].Title)
	assert.Equal(t, "SAVE50", coupons[0].Code)
}

func TestLoad_ShortRowsGetEmptyCells(t *testing.T) {
	path := writeCatalogFile(t, [][]interface{}{
		headerRow,
		{"Noon", "50% off", "SAVE50"},
	})

	coupons, err := NewXLSXLoader(path, zerolog.Nop()).Load()
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "SAVE50", coupons[0].Code)
	assert.Empty(t, coupons[0].Link)
	assert.Empty(t, coupons[0].Image)
}

func TestLoad_SkipsBlankRows(t *testing.T) {
	path := writeCatalogFile(t, [][]interface{}{
		headerRow,
		{"", "", "", "", "", "", ""},
		{"Noon", "50% off", "SAVE50", "GCC", "app only", "https://noon.com", "https://img.example/noon.jpg"},
	})

	coupons, err := NewXLSXLoader(path, zerolog.Nop()).Load()
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "Noon", coupons[0].Title)
}

func TestLoad_EmptyCatalogIsNotAnError(t *testing.T) {
	path := writeCatalogFile(t, [][]interface{}{headerRow})

	coupons, err := NewXLSXLoader(path, zerolog.Nop()).Load()
	require.NoError(t, err)
	assert.Empty(t, coupons)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewXLSXLoader(filepath.Join(t.TempDir(), "nope.xlsx"), zerolog.Nop()).Load()
	assert.Error(t, err)
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeCatalogFile(t, [][]interface{}{
		{"title", "description", "code", "countries", "note", "link"}, // no image
		{"Noon", "50% off", "SAVE50", "GCC", "app only", "https://noon.com"},
	})

	_, err := NewXLSXLoader(path, zerolog.Nop()).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"image"`)
}
