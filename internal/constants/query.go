package constants

// Query parameters consumed by the paged-query engine
const (
	QueryParamFilter         = "$filter"
	QueryParamOrderBy        = "$orderby"
	QueryParamTop            = "$top"
	QueryParamSkip           = "$skip"
	QueryParamSearch         = "searchValue"
	QueryParamIncludeDeleted = "includeDeleted"
)

// Default paging values
const (
	DefaultOrderBy = "Name asc"
	DefaultTop     = 10
	DefaultSkip    = 0
	MaxTop         = 100
)

// Sort directions
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)
