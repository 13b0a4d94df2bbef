package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() model.CartData {
	return model.CartData{
		Items: []model.LineItem{
			{ID: 1, ProductID: 1, Title: "Essence Mascara Lash Princess", UnitPrice: 9.99, Quantity: 2, Subtotal: 19.98},
			{ID: 2, ProductID: 7, Title: "Chanel Coco Noir Eau De", UnitPrice: 129.99, Quantity: 1, Subtotal: 129.99},
		},
		Summary: model.Summary{Subtotal: 149.97, Tax: 15.00, Shipping: 10.00, Total: 174.97},
	}
}

// TestFileStorage_RoundTrip verifies save then load returns identical items.
func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := NewFileStorage(path)

	snapshot := testSnapshot()
	require.NoError(t, s.Save(snapshot))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snapshot.Items, loaded.Items)
	assert.Equal(t, snapshot.Summary, loaded.Summary)
}

// TestFileStorage_LoadAbsent verifies an absent slot reads as empty.
func TestFileStorage_LoadAbsent(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "missing.json"))

	loaded, err := s.Load()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

// TestFileStorage_LoadCorrupt verifies corrupt JSON is treated as absent and
// the stale file is removed rather than surfaced as an error.
func TestFileStorage_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewFileStorage(path)
	loaded, err := s.Load()
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupt slot should be removed")
}

// TestFileStorage_Delete verifies delete removes the slot and is idempotent.
func TestFileStorage_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := NewFileStorage(path)

	require.NoError(t, s.Save(testSnapshot()))
	require.NoError(t, s.Delete())

	loaded, err := s.Load()
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting an already-absent slot is not an error.
	assert.NoError(t, s.Delete())
}

// TestFileStorage_SaveOverwrites verifies a second save replaces the slot.
func TestFileStorage_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := NewFileStorage(path)

	require.NoError(t, s.Save(testSnapshot()))

	updated := model.CartData{
		Items:   []model.LineItem{{ID: 3, ProductID: 16, Title: "Apple", UnitPrice: 1.99, Quantity: 5, Subtotal: 9.95}},
		Summary: model.Summary{Subtotal: 9.95, Tax: 1.00, Shipping: 10.00, Total: 20.95},
	}
	require.NoError(t, s.Save(updated))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, updated.Items, loaded.Items)
}

// TestFileStorage_CreatesParentDirectory verifies nested paths work.
func TestFileStorage_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "nested", "cart.json")
	s := NewFileStorage(path)

	require.NoError(t, s.Save(testSnapshot()))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
}
