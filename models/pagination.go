package models

// PageInfo describes one window of a paginated listing. Pages past the last
// one are valid: they carry an empty item set and HasNextPage=false.
type PageInfo struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalItems  int  `json:"total_items"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
	NextPage    int  `json:"next_page"`
	PrevPage    int  `json:"prev_page"`
	LastPage    int  `json:"last_page"`
}

func NewPageInfo(page, perPage, total int) PageInfo {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	lastPage := (total + perPage - 1) / perPage

	return PageInfo{
		CurrentPage: page,
		PerPage:     perPage,
		TotalItems:  total,
		HasNextPage: perPage*page < total,
		HasPrevPage: page > 1,
		NextPage:    page + 1,
		PrevPage:    page - 1,
		LastPage:    lastPage,
	}
}
