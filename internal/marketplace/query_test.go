package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/paging"
)

func TestContractFor_ActiveExcludesBuyerKeys(t *testing.T) {
	contract := ContractFor(domain.ListingStateActive)

	assert.Equal(t, AllowedPageSizes, contract.AllowedSizes)
	assert.NotContains(t, contract.AllowedSortKeys, "BuyerName")
	assert.NotContains(t, contract.AllowedSortKeys, "BoughtAt")
}

func TestContractFor_InactiveIncludesBuyerKeys(t *testing.T) {
	contract := ContractFor(domain.ListingStateInactive)

	assert.Contains(t, contract.AllowedSortKeys, "BuyerName")
	assert.Contains(t, contract.AllowedSortKeys, "BoughtAt")
}

func TestBuildSpecification_Defaults(t *testing.T) {
	spec, err := BuildSpecification(paging.Query{PageNumber: 1, PageSize: 10}, domain.ListingStateActive)

	require.NoError(t, err)
	assert.Equal(t, domain.SortFieldPublishedAt, spec.SortField)
	assert.False(t, spec.Descending)
	assert.Empty(t, spec.Search)
}

func TestBuildSpecification_MapsEveryAllowedKey(t *testing.T) {
	expected := map[string]domain.SortField{
		"Price":       domain.SortFieldPrice,
		"PublishedAt": domain.SortFieldPublishedAt,
		"ItemName":    domain.SortFieldItemName,
		"SellerName":  domain.SortFieldSellerName,
		"BuyerName":   domain.SortFieldBuyerName,
		"BoughtAt":    domain.SortFieldBoughtAt,
	}

	for _, key := range InactiveSortKeys {
		query := paging.Query{PageNumber: 1, PageSize: 10, SortBy: key, SortDirection: paging.Descending}
		spec, err := BuildSpecification(query, domain.ListingStateInactive)

		require.NoError(t, err, "key %q", key)
		assert.Equal(t, expected[key], spec.SortField, "key %q", key)
		assert.True(t, spec.Descending)
	}
}

func TestBuildSpecification_UnknownKey(t *testing.T) {
	query := paging.Query{PageNumber: 1, PageSize: 10, SortBy: "Karma"}

	_, err := BuildSpecification(query, domain.ListingStateActive)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildSpecification_LowercasesSearch(t *testing.T) {
	query := paging.Query{PageNumber: 1, PageSize: 10, SearchPhrase: "Iron Sword"}

	spec, err := BuildSpecification(query, domain.ListingStateActive)

	require.NoError(t, err)
	assert.Equal(t, "iron sword", spec.Search)
}
