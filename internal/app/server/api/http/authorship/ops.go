package authorship

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "authorship-list",
		Method:      http.MethodGet,
		Path:        "/api/authorship",
		Summary:     "Full audit trail of catalogue mutations",
		Tags:        []string{"authorship"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
