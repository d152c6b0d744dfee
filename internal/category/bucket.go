package category

import "strings"

// Bucket is the closed category set inventory items are displayed under.
// Persisted records carry a free-text catalog label instead; MapBucket folds
// those labels into this set.
type Bucket string

const (
	BucketFruit      Bucket = "Fruit"
	BucketVegetables Bucket = "Vegetables"
	BucketDairy      Bucket = "Dairy"
	BucketProtein    Bucket = "Protein"
	BucketGrains     Bucket = "Grains"
	BucketOther      Bucket = "Other"
)

// MapBucket maps a free-text catalog category label to its inventory bucket.
// Matching is case-insensitive against a fixed synonym table; anything
// unrecognized lands in Other.
func MapBucket(label string) Bucket {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "fruit", "fruits":
		return BucketFruit
	case "vegetables", "vegetable", "produce":
		return BucketVegetables
	case "dairy", "dairy & eggs", "eggs":
		return BucketDairy
	case "protein", "meat":
		return BucketProtein
	case "grain", "grains", "pantry", "baking":
		return BucketGrains
	default:
		return BucketOther
	}
}
