package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotInventory(t *testing.T) {
	inv := NewSlotInventory(2)

	require.True(t, inv.AddItem(ItemKey))
	require.True(t, inv.AddItem("gem"))
	assert.False(t, inv.AddItem("coin"), "full inventory rejects items")
	assert.False(t, inv.AddItem(""))

	assert.Equal(t, ItemKey, inv.Get(0))
	assert.Equal(t, "gem", inv.Get(1))
	assert.Equal(t, "", inv.Get(5))

	require.True(t, inv.RemoveFirstOfKind(ItemKey))
	assert.Equal(t, "", inv.Get(0))
	assert.Equal(t, "gem", inv.Get(1), "later slots do not shift")
	assert.False(t, inv.RemoveFirstOfKind(ItemKey))
	assert.False(t, inv.Contains(ItemKey))

	require.True(t, inv.AddItem("coin"))
	assert.Equal(t, "coin", inv.Get(0), "holes are refilled first")
}
