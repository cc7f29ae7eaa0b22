package domain

import "strings"

// ListingState selects which side of the sold transition a query targets
type ListingState string

const (
	// ListingStateActive selects unsold listings (buyer unset)
	ListingStateActive ListingState = "active"
	// ListingStateInactive selects sold listings (buyer set)
	ListingStateInactive ListingState = "inactive"
)

// IsValidListingState checks if a state string is a known selector
func IsValidListingState(state string) bool {
	return ListingState(state) == ListingStateActive || ListingState(state) == ListingStateInactive
}

// SortField identifies a comparable listing field for ordering
type SortField string

const (
	SortFieldPrice       SortField = "Price"
	SortFieldPublishedAt SortField = "PublishedAt"
	SortFieldItemName    SortField = "ItemName"
	SortFieldSellerName  SortField = "SellerName"
	SortFieldBuyerName   SortField = "BuyerName"
	SortFieldBoughtAt    SortField = "BoughtAt"
)

// ListingSpecification is the compiled form of a validated listing query:
// a state predicate, a case-insensitive substring search over a
// state-specific field set, and an allow-listed sort field. It carries no
// storage concerns; the postgres layer translates it to SQL and the
// in-memory fakes evaluate it directly through Matches/Compare.
type ListingSpecification struct {
	State      ListingState
	Search     string // lowercased phrase; empty matches everything
	SortField  SortField
	Descending bool
}

// Matches applies the state predicate and the search predicate to one view.
// Active listings are searched over item name, item type and seller name;
// inactive listings additionally over the buyer name.
func (s ListingSpecification) Matches(v ListingView) bool {
	sold := v.BoughtAt != nil
	if s.State == ListingStateActive && sold {
		return false
	}
	if s.State == ListingStateInactive && !sold {
		return false
	}
	if s.Search == "" {
		return true
	}
	if containsFold(v.ItemName, s.Search) ||
		containsFold(string(v.ItemType), s.Search) ||
		containsFold(v.SellerName, s.Search) {
		return true
	}
	if s.State == ListingStateInactive && containsFold(v.BuyerName, s.Search) {
		return true
	}
	return false
}

// Compare orders two views by the specification's sort field and direction.
// Ties always break by listing id ascending so pagination stays stable
// across calls regardless of direction.
func (s ListingSpecification) Compare(a, b ListingView) int {
	c := s.compareField(a, b)
	if s.Descending {
		c = -c
	}
	if c == 0 {
		return strings.Compare(a.ListingID, b.ListingID)
	}
	return c
}

func (s ListingSpecification) compareField(a, b ListingView) int {
	switch s.SortField {
	case SortFieldPrice:
		return compareInt64(a.Price, b.Price)
	case SortFieldItemName:
		return strings.Compare(strings.ToLower(a.ItemName), strings.ToLower(b.ItemName))
	case SortFieldSellerName:
		return strings.Compare(strings.ToLower(a.SellerName), strings.ToLower(b.SellerName))
	case SortFieldBuyerName:
		return strings.Compare(strings.ToLower(a.BuyerName), strings.ToLower(b.BuyerName))
	case SortFieldBoughtAt:
		switch {
		case a.BoughtAt == nil && b.BoughtAt == nil:
			return 0
		case a.BoughtAt == nil:
			return -1
		case b.BoughtAt == nil:
			return 1
		default:
			return a.BoughtAt.Compare(*b.BoughtAt)
		}
	default:
		return a.PublishedAt.Compare(b.PublishedAt)
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
