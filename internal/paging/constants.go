package paging

// Field names used in validation failure maps
const (
	FieldPageNumber    = "pageNumber"
	FieldPageSize      = "pageSize"
	FieldSearchPhrase  = "searchPhrase"
	FieldSortBy        = "sortBy"
	FieldSortDirection = "sortDirection"
)

// Validation limits
const (
	MinPageNumber       = 1
	DefaultMaxSearchLen = 100
)

// Validation messages
const (
	MsgPageNumberTooSmallFmt  = "must be at least %d"
	MsgPageSizeNotAllowedFmt  = "must be one of: %s"
	MsgSearchPhraseTooLongFmt = "must be at most %d characters"
	MsgSortKeyNotAllowedFmt   = "unknown sort key %q, allowed: %s"
	MsgSortDirectionInvalid   = "must be ascending or descending"
)
