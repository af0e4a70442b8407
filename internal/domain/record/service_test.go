package record

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, actorID int64, rec *Record) (int64, error) {
	args := m.Called(ctx, actorID, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, actorID int64, rec *Record) error {
	args := m.Called(ctx, actorID, rec)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, actorID, recordID int64) error {
	args := m.Called(ctx, actorID, recordID)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, recordID int64) (*Record, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Record), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, query ListQuery) ([]Record, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockRepository) ListByChamber(ctx context.Context, registered bool) ([]Record, error) {
	args := m.Called(ctx, registered)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func validFields() Fields {
	return Fields{
		Nature:     "arrêt",
		Regeste:    "R1",
		RegDate:    "1400-01-01",
		ChamberRef: "0",
	}
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, int64(42), mock.MatchedBy(func(rec *Record) bool {
		return rec.Regeste == "R1" && rec.RegDate == "1400-01-01" && rec.ChamberRef == "0"
	})).Return(int64(7), nil)

	rec, err := service.Create(context.Background(), 42, validFields())
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, "arrêt", rec.Nature)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_ChamberDefault(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	fields := validFields()
	fields.ChamberRef = ""

	mockRepo.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(rec *Record) bool {
		return rec.ChamberRef == ChamberNone
	})).Return(int64(1), nil)

	rec, err := service.Create(context.Background(), 1, fields)
	require.NoError(t, err)
	assert.Equal(t, ChamberNone, rec.ChamberRef)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
	}{
		{name: "missing regeste", mutate: func(f *Fields) { f.Regeste = "" }},
		{name: "missing registration date", mutate: func(f *Fields) { f.RegDate = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			fields := validFields()
			tt.mutate(&fields)

			_, err := service.Create(context.Background(), 1, fields)
			assert.ErrorIs(t, err, ErrValidation)

			// Nothing persisted, nothing logged.
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestService_Update_Validation(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	fields := validFields()
	fields.RegDate = ""

	_, err := service.Update(context.Background(), 1, 7, fields)
	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Update", mock.Anything, int64(1), mock.Anything).Return(ErrNotFound)

	_, err := service.Update(context.Background(), 1, 999, validFields())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_KeepsIdentifier(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	fields := validFields()
	fields.Nature = "édit"

	mockRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(rec *Record) bool {
		return rec.ID == 7 && rec.Nature == "édit"
	})).Return(nil)

	rec, err := service.Update(context.Background(), 1, 7, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, "édit", rec.Nature)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, int64(1), int64(7)).Return(nil)

	err := service.Delete(context.Background(), 1, 7)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, int64(1), int64(999)).Return(ErrNotFound)

	err := service.Delete(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, int64(404)).Return(nil, ErrNotFound)

	_, err := service.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_DefaultsToID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q ListQuery) bool {
		return q.OrderBy == FieldID
	})).Return([]Record{}, nil)

	_, err := service.List(context.Background(), ListQuery{})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_List_UnknownSortField(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.List(context.Background(), ListQuery{OrderBy: Field("password")})
	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "List")
}

func TestService_List_UnknownFilterField(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.List(context.Background(), ListQuery{
		Filter: &Filter{Field: Field("secret"), Value: "x"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_List_FilterByNature(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	matching := []Record{
		{ID: 1, Nature: "arrêt", Regeste: "R1", RegDate: "1400", ChamberRef: "0"},
		{ID: 3, Nature: "arrêt", Regeste: "R3", RegDate: "1402", ChamberRef: "0"},
	}

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q ListQuery) bool {
		return q.Filter != nil && q.Filter.Field == FieldNature && q.Filter.Value == "arrêt" && !q.Filter.Substring
	})).Return(matching, nil)

	records, err := service.List(context.Background(), ListQuery{
		Filter: &Filter{Field: FieldNature, Value: "arrêt"},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(3), records[1].ID)
}

func TestService_Search_EmptyKeyword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Search(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Search_GroupsPerField(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(q ListQuery) bool {
		return q.Filter != nil && q.Filter.Substring && q.Filter.Value == "lettre"
	})).Return([]Record{}, nil)

	groups, err := service.Search(context.Background(), "lettre")
	require.NoError(t, err)
	require.Len(t, groups, len(SearchFields()))
	for i, field := range SearchFields() {
		assert.Equal(t, field, groups[i].Field)
	}
	mockRepo.AssertNumberOfCalls(t, "List", len(SearchFields()))
}

func TestService_ListByChamber(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("ListByChamber", mock.Anything, true).
		Return([]Record{{ID: 2, ChamberRef: "B 12"}}, nil)

	records, err := service.ListByChamber(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "B 12", records[0].ChamberRef)
}

func TestService_Create_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, int64(1), mock.Anything).
		Return(int64(0), errors.New("database error"))

	_, err := service.Create(context.Background(), 1, validFields())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}
