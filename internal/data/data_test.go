package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllIDsUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, rec := range All() {
		require.NotEmpty(t, rec.ID, "record %q has an empty id", rec.Name)
		prev, dup := seen[rec.ID]
		require.False(t, dup, "id %q used by both %q and %q", rec.ID, prev, rec.Name)
		seen[rec.ID] = rec.Name
	}
}

func TestAllCategoriesValid(t *testing.T) {
	for _, rec := range All() {
		assert.True(t, rec.Category.Valid(), "record %s has category %q outside the enumeration", rec.ID, rec.Category)
	}
}

func TestAllPreservesDatasetOrder(t *testing.T) {
	all := All()
	var n int
	for _, ds := range Datasets() {
		for _, rec := range ds {
			require.Equal(t, rec.ID, all[n].ID)
			n++
		}
	}
	assert.Len(t, all, n)
}

func TestLastActivityNeverInFuture(t *testing.T) {
	for _, rec := range All() {
		if rec.LastActivity == nil {
			continue
		}
		assert.False(t, rec.LastActivity.After(loadedAt), "record %s has a future activity seed", rec.ID)
	}
}
