package dto

import "HelpDesk/model"

// OrderView is an order with its derived status attached.
type OrderView struct {
	model.Order
	Status string `json:"status"`
}

// FileListResponse is one page of the file listing.
type FileListResponse struct {
	Files   []model.File `json:"files"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
}
