package record

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"registre/internal/app/server/api/http/middleware/auth"
	"registre/internal/domain/record"
)

type MockServicer struct {
	mock.Mock
}

func (m *MockServicer) Create(ctx context.Context, actorID int64, fields record.Fields) (*record.Record, error) {
	args := m.Called(ctx, actorID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Record), args.Error(1)
}

func (m *MockServicer) Update(ctx context.Context, actorID, recordID int64, fields record.Fields) (*record.Record, error) {
	args := m.Called(ctx, actorID, recordID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Record), args.Error(1)
}

func (m *MockServicer) Delete(ctx context.Context, actorID, recordID int64) error {
	args := m.Called(ctx, actorID, recordID)
	return args.Error(0)
}

func (m *MockServicer) Get(ctx context.Context, recordID int64) (*record.Record, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Record), args.Error(1)
}

func (m *MockServicer) List(ctx context.Context, query record.ListQuery) ([]record.Record, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Record), args.Error(1)
}

func (m *MockServicer) ListByChamber(ctx context.Context, registered bool) ([]record.Record, error) {
	args := m.Called(ctx, registered)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Record), args.Error(1)
}

func (m *MockServicer) Search(ctx context.Context, keyword string) ([]record.FieldGroup, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.FieldGroup), args.Error(1)
}

func newTestHandler(service record.Servicer) *Handler {
	return NewHandler(service, slog.Default(), huma.Middlewares{}, huma.Middlewares{})
}

func authedCtx(userID int64) context.Context {
	return auth.WithUserID(context.Background(), userID)
}

func validRequest() RecordRequest {
	return RecordRequest{
		Nature:  "arrêt",
		Regeste: "Arrêt du Parlement",
		RegDate: "1400-01-01",
	}
}

func TestHandler_create(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("Create", mock.Anything, int64(42), mock.MatchedBy(func(f record.Fields) bool {
		return f.Regeste == "Arrêt du Parlement" && f.RegDate == "1400-01-01"
	})).Return(&record.Record{ID: 7, Regeste: "Arrêt du Parlement"}, nil)

	output, err := handler.create(authedCtx(42), &createInput{Body: validRequest()})

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.Body.ID)
	assert.Equal(t, "Ok", output.Body.Status)
	mockService.AssertExpectations(t)
}

func TestHandler_create_Unauthorized(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	_, err := handler.create(context.Background(), &createInput{Body: validRequest()})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
	mockService.AssertNotCalled(t, "Create")
}

func TestHandler_create_Validation(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("Create", mock.Anything, int64(1), mock.Anything).
		Return(nil, record.ErrValidation)

	_, err := handler.create(authedCtx(1), &createInput{Body: RecordRequest{}})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.GetStatus())
}

func TestHandler_update_NotFound(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("Update", mock.Anything, int64(1), int64(999), mock.Anything).
		Return(nil, record.ErrNotFound)

	_, err := handler.update(authedCtx(1), &updateInput{ID: 999, Body: validRequest()})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandler_update_Unauthorized(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	_, err := handler.update(context.Background(), &updateInput{ID: 1, Body: validRequest()})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
	mockService.AssertNotCalled(t, "Update")
}

func TestHandler_delete(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("Delete", mock.Anything, int64(42), int64(7)).Return(nil)

	output, err := handler.delete(authedCtx(42), &deleteInput{ID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.Body.ID)
	mockService.AssertExpectations(t)
}

func TestHandler_delete_Unauthorized(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	_, err := handler.delete(context.Background(), &deleteInput{ID: 7})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
	mockService.AssertNotCalled(t, "Delete")
}

func TestHandler_find(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("Get", mock.Anything, int64(7)).
		Return(&record.Record{ID: 7, Regeste: "R"}, nil)

	output, err := handler.find(context.Background(), &findInput{ID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.Body.Record.ID)
}

func TestHandler_find_NotFound(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("Get", mock.Anything, int64(404)).Return(nil, record.ErrNotFound)

	_, err := handler.find(context.Background(), &findInput{ID: 404})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandler_list_Pagination(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("List", mock.Anything, mock.MatchedBy(func(q record.ListQuery) bool {
		return q.Limit == perPageDefault && q.Offset == 2*perPageDefault
	})).Return([]record.Record{}, nil)

	_, err := handler.list(context.Background(), &listInput{Page: 3})

	require.NoError(t, err)
	mockService.AssertExpectations(t)
}

func TestHandler_list_UnknownField(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("List", mock.Anything, mock.Anything).Return(nil, record.ErrValidation)

	_, err := handler.list(context.Background(), &listInput{OrderBy: "password"})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.GetStatus())
}

func TestHandler_search(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	groups := []record.FieldGroup{
		{Field: record.FieldNature, Records: []record.Record{{ID: 1}}},
		{Field: record.FieldRegeste, Records: []record.Record{}},
	}
	mockService.On("Search", mock.Anything, "lettre").Return(groups, nil)

	output, err := handler.search(context.Background(), &searchInput{Keyword: "lettre"})

	require.NoError(t, err)
	assert.Equal(t, "lettre", output.Body.Keyword)
	assert.Len(t, output.Body.Groups, 2)
}

func TestHandler_chamber(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("ListByChamber", mock.Anything, true).
		Return([]record.Record{{ID: 2, ChamberRef: "B 12"}}, nil)

	output, err := handler.chamber(context.Background(), &chamberInput{})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Body.Total)
}

func TestHandler_noChamber(t *testing.T) {
	mockService := new(MockServicer)
	handler := newTestHandler(mockService)

	mockService.On("ListByChamber", mock.Anything, false).
		Return([]record.Record{}, nil)

	output, err := handler.noChamber(context.Background(), &chamberInput{})

	require.NoError(t, err)
	assert.Equal(t, 0, output.Body.Total)
}
