package marketplace

import (
	"fmt"
	"strings"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/paging"
)

// ContractFor returns the paging contract for a listing state. Each state is
// its own call site with its own sort-key allow-list.
func ContractFor(state domain.ListingState) paging.Contract {
	keys := ActiveSortKeys
	if state == domain.ListingStateInactive {
		keys = InactiveSortKeys
	}
	return paging.Contract{
		AllowedSizes:    AllowedPageSizes,
		AllowedSortKeys: keys,
		MaxSearchLen:    MaxSearchPhraseLen,
	}
}

// sortFields maps allow-listed sort keys to comparable listing fields
var sortFields = map[string]domain.SortField{
	"Price":       domain.SortFieldPrice,
	"PublishedAt": domain.SortFieldPublishedAt,
	"ItemName":    domain.SortFieldItemName,
	"SellerName":  domain.SortFieldSellerName,
	"BuyerName":   domain.SortFieldBuyerName,
	"BoughtAt":    domain.SortFieldBoughtAt,
}

// BuildSpecification compiles a normalized query and a state selector into
// the storage-agnostic specification executed by the query engine. The query
// must already have passed the state's paging contract.
func BuildSpecification(q paging.Query, state domain.ListingState) (domain.ListingSpecification, error) {
	field, ok := sortFields[q.SortBy]
	if q.SortBy == "" {
		field = domain.SortFieldPublishedAt
	} else if !ok {
		return domain.ListingSpecification{}, fmt.Errorf(ErrMsgUnknownSortKeyFmt, q.SortBy, domain.ErrInvalidInput)
	}

	return domain.ListingSpecification{
		State:      state,
		Search:     strings.ToLower(q.SearchPhrase),
		SortField:  field,
		Descending: q.SortDirection == paging.Descending,
	}, nil
}
