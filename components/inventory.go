package components

// ItemKey is the inventory kind of a door key.
const ItemKey = "key"

// Inventory is the player's item storage. Empty slots read back as "".
type Inventory interface {
	AddItem(kind string) bool
	RemoveFirstOfKind(kind string) bool
	Get(index int) string
	Contains(kind string) bool
	Capacity() int
}

// SlotInventory is a fixed-capacity ordered inventory. Items fill the first
// free slot; removal leaves a hole rather than shifting later items.
type SlotInventory struct {
	slots []string
}

func NewSlotInventory(capacity int) *SlotInventory {
	if capacity < 0 {
		capacity = 0
	}
	return &SlotInventory{slots: make([]string, capacity)}
}

// AddItem stores kind in the first empty slot. It reports false when full.
func (inv *SlotInventory) AddItem(kind string) bool {
	if kind == "" {
		return false
	}
	for i, s := range inv.slots {
		if s == "" {
			inv.slots[i] = kind
			return true
		}
	}
	return false
}

// RemoveFirstOfKind clears the lowest slot holding kind.
func (inv *SlotInventory) RemoveFirstOfKind(kind string) bool {
	for i, s := range inv.slots {
		if s == kind && s != "" {
			inv.slots[i] = ""
			return true
		}
	}
	return false
}

func (inv *SlotInventory) Get(index int) string {
	if index < 0 || index >= len(inv.slots) {
		return ""
	}
	return inv.slots[index]
}

func (inv *SlotInventory) Contains(kind string) bool {
	for _, s := range inv.slots {
		if s == kind && s != "" {
			return true
		}
	}
	return false
}

func (inv *SlotInventory) Capacity() int {
	return len(inv.slots)
}
