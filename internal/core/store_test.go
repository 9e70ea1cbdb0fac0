package core_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"grocery-pos/internal/core"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *core.Store {
	return core.NewStore(zerolog.Nop())
}

func mustItem(t *testing.T, id int, name, price string, qty int, category core.Category) core.Item {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	item, err := core.NewItem(id, name, p, qty, category)
	require.NoError(t, err)
	return item
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.csv")

	store := newTestStore()
	store.Add(mustItem(t, 1, "Milk", "55.5", 10, core.Dairy))
	store.Add(mustItem(t, 2, "Peas", "40", 8, core.FrozenVeggies))
	store.Add(mustItem(t, 3, "Apple", "30", 25, core.Fruits))
	store.Add(mustItem(t, 4, "Olive Oil", "250", 4, core.CookingMaterial))
	require.NoError(t, store.SaveFile(path))

	loaded := newTestStore()
	require.NoError(t, loaded.LoadFile(path))
	require.Equal(t, store.Len(), loaded.Len())
	for i, want := range store.Items() {
		got := loaded.Items()[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Category, got.Category)
		assert.True(t, want.Price.Equal(got.Price), "price %s != %s", want.Price, got.Price)
		assert.Equal(t, want.Quantity, got.Quantity)
	}
}

func TestStoreSaveIdempotent(t *testing.T) {
	store := newTestStore()
	store.Add(mustItem(t, 1, "Milk", "55.5", 10, core.Dairy))
	store.Add(mustItem(t, 2, "Apple", "30", 25, core.Fruits))

	var first, second bytes.Buffer
	require.NoError(t, store.Save(&first))
	require.NoError(t, store.Save(&second))
	assert.Equal(t, first.String(), second.String())
}

func TestStoreLoad_SkipsMalformedRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "bad price",
			input: "1,Milk,Dairy,55,10,10\n2,Ghee,Dairy,notaprice,5,10\n",
			want:  1,
		},
		{
			name:  "bad id",
			input: "x,Milk,Dairy,55,10,10\n2,Ghee,Dairy,400,5,10\n",
			want:  1,
		},
		{
			name:  "bad quantity",
			input: "1,Milk,Dairy,55,many,10\n",
			want:  0,
		},
		{
			name:  "short record",
			input: "1,Milk,Dairy\n2,Ghee,Dairy,400,5,10\n",
			want:  1,
		},
		{
			name:  "empty field",
			input: "1,,Dairy,55,10,10\n",
			want:  0,
		},
		{
			name:  "unknown category",
			input: "1,Cola,Beverages,55,10,10\n",
			want:  0,
		},
		{
			name:  "no discount field is fine",
			input: "1,Milk,Dairy,55,10\n",
			want:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore()
			require.NoError(t, store.Load(strings.NewReader(tt.input)))
			assert.Equal(t, tt.want, store.Len())
		})
	}
}

func TestStoreLoad_DiscountAlwaysDerivedFromCategory(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Load(strings.NewReader("1,Milk,Dairy,100,10,99\n")))
	require.Equal(t, 1, store.Len())

	item := store.Items()[0]
	assert.Equal(t, core.Dairy, item.Category)
	assert.Equal(t, "10", item.Category.DiscountPercent().String())
	assert.Equal(t, "90.00", item.FinalPrice().StringFixed(2))
}

func TestStoreLoadFile_MissingFileIsEmptyInventory(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.LoadFile(filepath.Join(t.TempDir(), "absent.csv")))
	assert.Equal(t, 0, store.Len())
}

func TestStore_DuplicateIDsFirstMatchWins(t *testing.T) {
	store := newTestStore()
	store.Add(mustItem(t, 7, "First", "10", 1, core.Fruits))
	store.Add(mustItem(t, 7, "Second", "20", 2, core.Fruits))

	idx, ok := store.Find(7)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	require.NoError(t, store.Delete(7))
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "Second", store.Items()[0].Name)

	require.NoError(t, store.Delete(7))
	assert.Equal(t, 0, store.Len())
	assert.ErrorIs(t, store.Delete(7), core.ErrNotFound)
}

func TestStoreEdit(t *testing.T) {
	store := newTestStore()
	store.Add(mustItem(t, 1, "Milk", "55", 10, core.Dairy))

	err := store.Edit(2, "Ghee", decimal.NewFromInt(400), 3)
	assert.True(t, errors.Is(err, core.ErrNotFound))

	require.NoError(t, store.Edit(1, "Ghee", decimal.NewFromInt(400), 3))
	item := store.Items()[0]
	assert.Equal(t, "Ghee", item.Name)
	assert.Equal(t, "400", item.Price.String())
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, core.Dairy, item.Category)
}

func TestStoreEdit_DuplicateIDsTouchesFirstOnly(t *testing.T) {
	store := newTestStore()
	store.Add(mustItem(t, 7, "First", "10", 1, core.Fruits))
	store.Add(mustItem(t, 7, "Second", "20", 2, core.Fruits))

	require.NoError(t, store.Edit(7, "Renamed", decimal.NewFromInt(15), 5))
	assert.Equal(t, "Renamed", store.Items()[0].Name)
	assert.Equal(t, "Second", store.Items()[1].Name)
}

func TestStoreRoundTrip_NameWithComma(t *testing.T) {
	store := newTestStore()
	store.Add(mustItem(t, 1, "Salt, Rock", "12", 6, core.CookingMaterial))

	var buf bytes.Buffer
	require.NoError(t, store.Save(&buf))

	loaded := newTestStore()
	require.NoError(t, loaded.Load(&buf))
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, "Salt, Rock", loaded.Items()[0].Name)
}
