package enums

// Collection identifies one of the persisted shopper collections. Used as
// a metric label and in sync snapshots.
type Collection string

const (
	CollectionCart     Collection = "cart"
	CollectionWishlist Collection = "wishlist"
	CollectionCompare  Collection = "compare"
)

func (c Collection) String() string {
	return string(c)
}
