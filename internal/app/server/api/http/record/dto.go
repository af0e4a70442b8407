package record

import "registre/internal/domain/record"

// RecordRequest carries the full mutable field set; an update replaces all of
// them.
type RecordRequest struct {
	Nature     string `json:"nature,omitempty" doc:"Category of the act (arrêt, lettre, édit...)"`
	Regeste    string `json:"regeste" doc:"Summary of the act, required"`
	DocDate    string `json:"doc_date,omitempty" doc:"Date of the document"`
	Motive     string `json:"motive,omitempty" doc:"Motive or object of the act"`
	RegDate    string `json:"reg_date" doc:"Date of registration by the parliament, required"`
	RegMode    string `json:"reg_mode,omitempty" doc:"Mode of registration"`
	ChamberRef string `json:"chamber_ref,omitempty" doc:"Chambre des comptes reference; 0 means not registered there"`
}

type listInput struct {
	OrderBy     string `query:"order_by" example:"nature" doc:"Sort field: id, nature, regeste, doc_date, motive, reg_date, reg_mode, chamber_ref"`
	FilterField string `query:"field" doc:"Attribute to filter on"`
	FilterValue string `query:"value" doc:"Filter value"`
	Substring   bool   `query:"substring" doc:"Match the filter value as a substring instead of exactly"`
	Page        int    `query:"page" doc:"Page number, 1-based; 0 disables pagination"`
	PerPage     int    `query:"per_page" doc:"Records per page, defaults to 5"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Records []record.Record `json:"records"`
	Total   int             `json:"total"`
}

type findInput struct {
	ID int64 `path:"id" example:"1" doc:"Record identifier"`
}

type findOutput struct {
	Body FindResponse
}

type FindResponse struct {
	Status string         `json:"status"`
	Record *record.Record `json:"record"`
}

type createInput struct {
	Body RecordRequest
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"Record identifier"`
	Body RecordRequest
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Record identifier"`
}

type mutationOutput struct {
	Body MutationResponse
}

type MutationResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type searchInput struct {
	Keyword string `query:"keyword" doc:"Keyword matched against every attribute"`
}

type searchOutput struct {
	Body SearchResponse
}

type SearchResponse struct {
	Keyword string              `json:"keyword"`
	Groups  []record.FieldGroup `json:"groups"`
}

type chamberInput struct{}
