package codec

import (
	"testing"
	"time"

	"github.com/savrlabs/savr/internal/category"
	"github.com/savrlabs/savr/internal/expiry"
	"github.com/savrlabs/savr/internal/model"
)

var today = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func TestInventoryRoundTrip(t *testing.T) {
	item := model.InventoryItem{
		ID:         3,
		Emoji:      "🥬",
		Name:       "Spinach",
		Category:   "Produce",
		Quantity:   "1 bag",
		ExpiryDate: "16/06/2026",
		Status:     expiry.StatusUrgent,
	}

	encoded := EncodeInventoryItem(item)
	if encoded != "🥬|Spinach|Produce|1 bag|16/06/2026|URGENT" {
		t.Fatalf("encoded = %q", encoded)
	}

	got, ok := DecodeInventoryItem(encoded, 3, today)
	if !ok {
		t.Fatal("decode failed")
	}
	if got.Emoji != item.Emoji || got.Name != item.Name || got.Quantity != item.Quantity ||
		got.Category != item.Category || got.ExpiryDate != item.ExpiryDate || got.ID != 3 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Bucket != category.BucketVegetables {
		t.Errorf("bucket = %s, want %s", got.Bucket, category.BucketVegetables)
	}
}

func TestInventoryDecodeRecomputesStatus(t *testing.T) {
	// Persisted tier says FRESH but the date is one day out: the tier is a
	// cache and must never be trusted.
	encoded := "🧀|Feta|Dairy|150g|16/06/2026|FRESH"
	got, ok := DecodeInventoryItem(encoded, 0, today)
	if !ok {
		t.Fatal("decode failed")
	}
	if got.Status != expiry.StatusUrgent {
		t.Errorf("status = %s, want %s", got.Status, expiry.StatusUrgent)
	}
}

func TestInventoryDecodeDropsShortRecords(t *testing.T) {
	tests := []string{
		"",
		"🥕|Carrots",
		"🥕|Carrots|Produce|4 medium|20/06/2026",
	}
	for _, encoded := range tests {
		if _, ok := DecodeInventoryItem(encoded, 0, today); ok {
			t.Errorf("DecodeInventoryItem(%q) should drop the record", encoded)
		}
	}
}

func TestInventoryDecodeCategorySynonyms(t *testing.T) {
	tests := []struct {
		label string
		want  category.Bucket
	}{
		{"fruits", category.BucketFruit},
		{"Vegetable", category.BucketVegetables},
		{"produce", category.BucketVegetables},
		{"Dairy & Eggs", category.BucketDairy},
		{"eggs", category.BucketDairy},
		{"meat", category.BucketProtein},
		{"PROTEIN", category.BucketProtein},
		{"pantry", category.BucketGrains},
		{"baking", category.BucketGrains},
		{"grains", category.BucketGrains},
		{"mystery", category.BucketOther},
	}
	for _, tt := range tests {
		encoded := "🍽|Thing|" + tt.label + "|1|20/06/2026|FRESH"
		got, ok := DecodeInventoryItem(encoded, 0, today)
		if !ok {
			t.Fatalf("decode failed for label %q", tt.label)
		}
		if got.Bucket != tt.want {
			t.Errorf("label %q: bucket = %s, want %s", tt.label, got.Bucket, tt.want)
		}
	}
}

func TestDecodeInventoryItemsSkipsMalformed(t *testing.T) {
	encoded := []string{
		"🥬|Spinach|Produce|1 bag|16/06/2026|URGENT",
		"corrupt",
		"🥛|Milk|Dairy|500ml|19/06/2026|WARNING",
	}
	items := DecodeInventoryItems(encoded, today)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// Ids keep their positions in the encoded list.
	if items[0].ID != 0 || items[1].ID != 2 {
		t.Errorf("ids = %d, %d; want 0, 2", items[0].ID, items[1].ID)
	}
}

func TestInventoryCategory(t *testing.T) {
	if cat, ok := InventoryCategory("🥬|Spinach|Produce|1 bag|16/06/2026|URGENT"); !ok || cat != "Produce" {
		t.Errorf("got %q, %v", cat, ok)
	}
	if _, ok := InventoryCategory("🥬|Spinach"); ok {
		t.Error("short record should not yield a category")
	}
}
