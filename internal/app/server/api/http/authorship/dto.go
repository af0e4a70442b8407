package authorship

import "registre/internal/domain/authorship"

type listInput struct{}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Entries []authorship.Entry `json:"entries"`
	Total   int                `json:"total"`
}
