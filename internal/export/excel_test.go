package export_test

import (
	"path/filepath"
	"testing"

	"grocery-pos/internal/core"
	"grocery-pos/internal/export"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteInventory(t *testing.T) {
	milk, err := core.NewItem(1, "Milk", decimal.NewFromInt(50), 10, core.Dairy)
	require.NoError(t, err)
	oil, err := core.NewItem(2, "Olive Oil", decimal.NewFromInt(250), 4, core.CookingMaterial)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, export.WriteInventory([]core.Item{milk, oil}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "NAME", "CATEGORY", "PRICE", "DISCOUNT %", "FINAL PRICE", "QTY"}, rows[0])

	assert.Equal(t, "Milk", rows[1][1])
	assert.Equal(t, "Dairy", rows[1][2])
	assert.Equal(t, "10", rows[1][4])
	assert.Equal(t, "10", rows[1][6])

	assert.Equal(t, "Olive Oil", rows[2][1])
	assert.Equal(t, "Cooking Material", rows[2][2])
	assert.Equal(t, "20", rows[2][4])
	assert.Equal(t, "4", rows[2][6])
}

func TestWriteInventory_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, export.WriteInventory(nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
