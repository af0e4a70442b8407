package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list",
		Method:      http.MethodGet,
		Path:        "/api/records",
		Summary:     "List catalogue records with optional sort, filter and pagination",
		Tags:        []string{"records"},
		Middlewares: h.public,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-search",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Search every attribute, results grouped per matching field",
		Tags:        []string{"records"},
		Middlewares: h.public,
	}
}

func (h *Handler) chamberOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-chamber",
		Method:      http.MethodGet,
		Path:        "/api/records/chamber",
		Summary:     "Records also registered at the Chambre des comptes",
		Tags:        []string{"records"},
		Middlewares: h.public,
	}
}

func (h *Handler) noChamberOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-no-chamber",
		Method:      http.MethodGet,
		Path:        "/api/records/no-chamber",
		Summary:     "Records not registered at the Chambre des comptes",
		Tags:        []string{"records"},
		Middlewares: h.public,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-find",
		Method:      http.MethodGet,
		Path:        "/api/records/{id}",
		Summary:     "Get one record",
		Tags:        []string{"records"},
		Middlewares: h.public,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-create",
		Method:      http.MethodPost,
		Path:        "/api/records",
		Summary:     "Add a record to the catalogue",
		Tags:        []string{"records"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-update",
		Method:      http.MethodPut,
		Path:        "/api/records/{id}",
		Summary:     "Replace all fields of a record",
		Tags:        []string{"records"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-delete",
		Method:      http.MethodDelete,
		Path:        "/api/records/{id}",
		Summary:     "Delete a record; its authorship entries remain",
		Tags:        []string{"records"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
