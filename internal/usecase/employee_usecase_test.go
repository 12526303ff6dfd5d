package usecase_test

import (
	"context"
	"testing"

	"erp/internal/domain/model"
	repo "erp/internal/repository"
	"erp/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type EmployeeRepoMock struct{ mock.Mock }

func (m *EmployeeRepoMock) List(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]model.Employee)
	return employees, args.Error(1)
}

func (m *EmployeeRepoMock) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(model.Employee)
	return e, args.Error(1)
}

func (m *EmployeeRepoMock) FindByCode(ctx context.Context, code string) (model.Employee, error) {
	args := m.Called(ctx, code)
	e, _ := args.Get(0).(model.Employee)
	return e, args.Error(1)
}

func (m *EmployeeRepoMock) Create(ctx context.Context, e model.Employee) (model.Employee, error) {
	args := m.Called(ctx, e)
	created, _ := args.Get(0).(model.Employee)
	return created, args.Error(1)
}

func (m *EmployeeRepoMock) Update(ctx context.Context, e model.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *EmployeeRepoMock) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *EmployeeRepoMock) LastEmployeeCode(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func validEmployeeInput() usecase.EmployeeInput {
	return usecase.EmployeeInput{
		FirstName:  "Maria",
		LastName:   "Santos",
		Email:      "maria@opzon.example",
		Position:   "Press Operator",
		Department: "Production",
		DateHired:  "2024-06-01",
	}
}

func TestEmployeeCreate_GeneratesNextCode(t *testing.T) {
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewEmployeeUsecase(eRepo)

	eRepo.On("EmailExists", mock.Anything, "maria@opzon.example", int64(0)).Return(false, nil)
	eRepo.On("LastEmployeeCode", mock.Anything).Return("EMP007", nil)
	eRepo.On("Create", mock.Anything, mock.MatchedBy(func(e model.Employee) bool {
		return e.EmployeeCode == "EMP008" && e.Status == "Active"
	})).Return(model.Employee{ID: 8, EmployeeCode: "EMP008"}, nil)

	out, err := uc.Create(context.Background(), validEmployeeInput())
	assert.NoError(t, err)
	assert.Equal(t, "EMP008", out.EmployeeCode)
	eRepo.AssertExpectations(t)
}

func TestEmployeeCreate_FirstEmployeeGetsEMP001(t *testing.T) {
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewEmployeeUsecase(eRepo)

	eRepo.On("EmailExists", mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	eRepo.On("LastEmployeeCode", mock.Anything).Return("", nil)
	eRepo.On("Create", mock.Anything, mock.MatchedBy(func(e model.Employee) bool {
		return e.EmployeeCode == "EMP001"
	})).Return(model.Employee{ID: 1, EmployeeCode: "EMP001"}, nil)

	out, err := uc.Create(context.Background(), validEmployeeInput())
	assert.NoError(t, err)
	assert.Equal(t, "EMP001", out.EmployeeCode)
}

func TestEmployeeCreate_DuplicateEmail(t *testing.T) {
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewEmployeeUsecase(eRepo)

	eRepo.On("EmailExists", mock.Anything, "maria@opzon.example", int64(0)).Return(true, nil)

	_, err := uc.Create(context.Background(), validEmployeeInput())
	assertStatus(t, err, 400)
	eRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeUpdate_DuplicateEmailExcludesSelf(t *testing.T) {
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewEmployeeUsecase(eRepo)

	// 自分のid=3は重複チェックから除外される
	eRepo.On("EmailExists", mock.Anything, "maria@opzon.example", int64(3)).Return(false, nil)
	eRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	err := uc.Update(context.Background(), 3, validEmployeeInput())
	assert.NoError(t, err)
	eRepo.AssertCalled(t, "EmailExists", mock.Anything, "maria@opzon.example", int64(3))
}

func TestEmployeeUpdate_NotFound(t *testing.T) {
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewEmployeeUsecase(eRepo)

	eRepo.On("EmailExists", mock.Anything, mock.Anything, int64(99)).Return(false, nil)
	eRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.Update(context.Background(), 99, validEmployeeInput())
	assertStatus(t, err, 404)
}

func TestEmployeeCreate_MissingRequiredFields(t *testing.T) {
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewEmployeeUsecase(eRepo)

	in := validEmployeeInput()
	in.Email = ""
	_, err := uc.Create(context.Background(), in)
	assertStatus(t, err, 400)
	eRepo.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything, mock.Anything)
}
