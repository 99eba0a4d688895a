package quote

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.QuoteCart{}))
	return NewStore(db)
}

func TestStoreRoundTrip(t *testing.T) {
	store := testStore(t)

	carts := []Cart{
		{},
		{Items: []Item{{ProductID: "a", ProductName: "A", Quantity: 1}}},
		{Items: []Item{
			{ProductID: "bread-racks", ProductName: "Bread Racks", Quantity: 2},
			{ProductID: "dough-troughs", ProductName: "Tröge für Teig", Quantity: 5},
			{ProductID: "carts", ProductName: "运输车", Quantity: 1},
		}},
	}

	for i, cart := range carts {
		visitor := fmt.Sprintf("visitor-%d", i)
		require.NoError(t, store.Save(visitor, cart))

		loaded := store.Load(visitor)
		assert.Equal(t, cart.Format(), loaded.Format())
		assert.Equal(t, cart.TotalCount(), loaded.TotalCount())
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := testStore(t)

	var cart Cart
	cart.AddItem("a", "A", 1)
	require.NoError(t, store.Save("v1", cart))

	cart.AddItem("b", "B", 2)
	require.NoError(t, store.Save("v1", cart))

	loaded := store.Load("v1")
	assert.Equal(t, 3, loaded.TotalCount())
	assert.Len(t, loaded.Items, 2)
}

func TestStoreLoadMissingVisitor(t *testing.T) {
	store := testStore(t)
	loaded := store.Load("nobody")
	assert.Empty(t, loaded.Items)
}

func TestStoreLoadMalformedPayload(t *testing.T) {
	store := testStore(t)

	row := models.QuoteCart{VisitorID: "broken", Payload: "{not json"}
	require.NoError(t, store.db.Create(&row).Error)

	loaded := store.Load("broken")
	assert.Empty(t, loaded.Items, "malformed payload degrades to an empty cart")
}

func TestStoreClear(t *testing.T) {
	store := testStore(t)

	var cart Cart
	cart.AddItem("a", "A", 4)
	require.NoError(t, store.Save("v1", cart))
	require.NoError(t, store.Clear("v1"))

	loaded := store.Load("v1")
	assert.Empty(t, loaded.Items)
}
