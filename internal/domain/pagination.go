package domain

type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	HasNext     bool
	HasPrev     bool
}

func NewPagination(totalItems, page, limit int) Pagination {
	totalPages := totalItems / limit
	if totalItems%limit != 0 {
		totalPages++
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

type MoviePage struct {
	Items      []*Movie
	Pagination Pagination
}
