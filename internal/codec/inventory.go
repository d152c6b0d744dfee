// Package codec converts domain records to and from the flat string and
// primitive-map forms stored in profile document fields. Decode failures are
// local and silent: a malformed record is dropped (or its bad sub-field
// defaulted), never surfaced as an error.
package codec

import (
	"strings"
	"time"

	"github.com/savrlabs/savr/internal/category"
	"github.com/savrlabs/savr/internal/expiry"
	"github.com/savrlabs/savr/internal/model"
)

// Delimiter separates fields inside an encoded record. Field values must not
// contain it; callers are responsible for rejecting such input before
// encoding, the codec does not escape.
const Delimiter = "|"

// EncodeInventoryItem produces the persisted form of an inventory item:
//
//	emoji|name|category|quantity|expiryDateDDMMYYYY|statusName
//
// Category is the free-text catalog label, not the bucket name. The encoded
// status is a cache only; decoding always recomputes it from the expiry date.
func EncodeInventoryItem(it model.InventoryItem) string {
	return strings.Join([]string{
		it.Emoji,
		it.Name,
		it.Category,
		it.Quantity,
		it.ExpiryDate,
		string(it.Status),
	}, Delimiter)
}

// DecodeInventoryItem parses an encoded inventory record. The id is the
// record's ordinal position in its owning list and becomes the item's session
// identifier. Records with fewer than six fields are dropped (ok=false).
//
// The urgency tier is re-derived from the expiry date field against today;
// the persisted tier is never trusted.
func DecodeInventoryItem(encoded string, id int, today time.Time) (model.InventoryItem, bool) {
	parts := strings.Split(encoded, Delimiter)
	if len(parts) < 6 {
		return model.InventoryItem{}, false
	}
	return model.InventoryItem{
		ID:         id,
		Emoji:      parts[0],
		Name:       parts[1],
		Category:   parts[2],
		Bucket:     category.MapBucket(parts[2]),
		Quantity:   parts[3],
		ExpiryDate: parts[4],
		Status:     expiry.Classify(parts[4], today),
	}, true
}

// DecodeInventoryItems decodes a whole persisted list, silently dropping
// malformed records. Ids reflect positions in the encoded list, so a dropped
// record leaves a gap rather than renumbering its successors.
func DecodeInventoryItems(encoded []string, today time.Time) []model.InventoryItem {
	items := make([]model.InventoryItem, 0, len(encoded))
	for i, s := range encoded {
		if it, ok := DecodeInventoryItem(s, i, today); ok {
			items = append(items, it)
		}
	}
	return items
}

// InventoryCategory extracts the raw category label from an encoded inventory
// record without fully decoding it. ok is false when the record is too short.
func InventoryCategory(encoded string) (string, bool) {
	parts := strings.Split(encoded, Delimiter)
	if len(parts) < 3 {
		return "", false
	}
	return parts[2], true
}
