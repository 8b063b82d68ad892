package domain

// ItemFilter defines parameters for listing items.
type ItemFilter struct {
	// GroupID restricts the listing to one group. nil means no group filter.
	GroupID *int64

	// TypeID restricts the listing to one item type.
	TypeID *int64

	// OwnerID restricts the listing to items held by one user.
	OwnerID *int64

	// OnlyFree restricts the listing to items that are available to take.
	OnlyFree bool

	// Limit is the maximum number of items to return. Zero means the
	// repository default.
	Limit int

	// Offset is the number of items to skip. The listing is ordered by item
	// name, so limit/offset pages form a restartable, deterministic sequence.
	Offset int
}
