package codec

import (
	"strings"

	"github.com/savrlabs/savr/internal/model"
)

// checkedSuffix marks a grocery record as checked off. It rides outside the
// delimited fields, appended to the whole encoded string.
const checkedSuffix = Delimiter + "checked"

// EncodeGroceryItem produces the persisted form of a grocery item:
//
//	emoji|name|category|quantity
//
// with the literal suffix "|checked" appended when the item is checked off.
// Quantity carries its unit as free text.
func EncodeGroceryItem(it model.GroceryItem, categoryLabel string) string {
	s := strings.Join([]string{it.Emoji, it.Name, categoryLabel, it.Quantity}, Delimiter)
	if it.Checked {
		s += checkedSuffix
	}
	return s
}

// DecodeGroceryItem parses an encoded grocery record. The checked suffix is
// stripped before field-splitting; the checked flag itself comes from the
// caller, which normally derives it with GroceryChecked over the raw record.
// Records with fewer than four fields are dropped (ok=false).
func DecodeGroceryItem(encoded string, id int, checked bool) (model.GroceryItem, bool) {
	parts := strings.Split(strings.TrimSuffix(encoded, checkedSuffix), Delimiter)
	if len(parts) < 4 {
		return model.GroceryItem{}, false
	}
	return model.GroceryItem{
		ID:       id,
		Emoji:    parts[0],
		Name:     parts[1],
		Quantity: parts[3],
		Checked:  checked,
	}, true
}

// GroceryChecked reports whether an encoded grocery record carries the
// checked suffix.
func GroceryChecked(encoded string) bool {
	return strings.HasSuffix(encoded, checkedSuffix)
}

// SetGroceryChecked rewrites the checked suffix on an encoded grocery record.
func SetGroceryChecked(encoded string, checked bool) string {
	s := strings.TrimSuffix(encoded, checkedSuffix)
	if checked {
		s += checkedSuffix
	}
	return s
}

// GroceryCategory extracts the category label from an encoded grocery record.
// ok is false when the record is too short to carry one.
func GroceryCategory(encoded string) (string, bool) {
	parts := strings.Split(strings.TrimSuffix(encoded, checkedSuffix), Delimiter)
	if len(parts) < 3 {
		return "", false
	}
	return parts[2], true
}
