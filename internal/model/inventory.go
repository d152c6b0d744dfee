package model

import (
	"github.com/savrlabs/savr/internal/category"
	"github.com/savrlabs/savr/internal/expiry"
)

// InventoryItem is one decoded pantry item. ID is the item's ordinal position
// in the owning list for this load — not a stable key; deleting an item
// invalidates the ids of everything after it.
type InventoryItem struct {
	ID         int             `json:"id"`
	Emoji      string          `json:"emoji"`
	Name       string          `json:"name"`
	Quantity   string          `json:"quantity"`
	ExpiryDate string          `json:"expiry_date"`
	Status     expiry.Status   `json:"status"`
	Category   string          `json:"category"`
	Bucket     category.Bucket `json:"bucket"`
}

// GroceryItem is one decoded grocery-list entry. Its category is not part of
// the decoded struct; it travels in the encoded record and is recovered with
// codec.GroceryCategory. ID is the ordinal position in the owning list.
type GroceryItem struct {
	ID       int    `json:"id"`
	Emoji    string `json:"emoji"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Checked  bool   `json:"checked"`
}
