package domain

// ItemType is the category of an inventory item
type ItemType string

const (
	ItemTypeResource  ItemType = "resource"
	ItemTypeHarvester ItemType = "harvester"
	ItemTypeComponent ItemType = "component"
)

// InventoryItem is a quantity of a fungible item owned by a user.
// Rows are removed when their quantity reaches zero.
type InventoryItem struct {
	UserID   string   `json:"user_id"`
	ItemID   string   `json:"item_id"`
	ItemType ItemType `json:"item_type"`
	Quantity int      `json:"quantity"`
}
