package catalog

import "slices"

// IDPolicy decides the id of a newly inserted record.
//
// The admin and storefront views assign max(existing)+1, while the seller view
// assigns count+1. The two disagree once a record has been removed, and the
// seller policy can then reissue an id that is still in use. Both are kept as
// they are; pick one per store.
type IDPolicy int

const (
	// MaxPlusOne assigns one more than the largest existing id, or 1 when empty
	MaxPlusOne IDPolicy = iota
	// CountPlusOne assigns the collection size plus one
	CountPlusOne
)

// NextID computes the id for a record appended after the given ids
func (p IDPolicy) NextID(ids []int) int {
	switch p {
	case CountPlusOne:
		return len(ids) + 1
	default:
		if len(ids) == 0 {
			return 1
		}
		return slices.Max(ids) + 1
	}
}

func (p IDPolicy) String() string {
	switch p {
	case MaxPlusOne:
		return "max+1"
	case CountPlusOne:
		return "count+1"
	default:
		return "unknown"
	}
}
