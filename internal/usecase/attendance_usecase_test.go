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

type AttendanceRepoMock struct{ mock.Mock }

func (m *AttendanceRepoMock) ListByDate(ctx context.Context, session model.AttendanceSession, date string) ([]model.AttendanceEntry, error) {
	args := m.Called(ctx, session, date)
	rows, _ := args.Get(0).([]model.AttendanceEntry)
	return rows, args.Error(1)
}

func (m *AttendanceRepoMock) ListBetween(ctx context.Context, session model.AttendanceSession, startDate, endDate string) ([]model.AttendanceEntry, error) {
	args := m.Called(ctx, session, startDate, endDate)
	rows, _ := args.Get(0).([]model.AttendanceEntry)
	return rows, args.Error(1)
}

func (m *AttendanceRepoMock) Find(ctx context.Context, session model.AttendanceSession, employeeCode, date string) (model.Attendance, error) {
	args := m.Called(ctx, session, employeeCode, date)
	a, _ := args.Get(0).(model.Attendance)
	return a, args.Error(1)
}

func (m *AttendanceRepoMock) Create(ctx context.Context, session model.AttendanceSession, a model.Attendance) error {
	args := m.Called(ctx, session, a)
	return args.Error(0)
}

func (m *AttendanceRepoMock) Update(ctx context.Context, session model.AttendanceSession, a model.Attendance) error {
	args := m.Called(ctx, session, a)
	return args.Error(0)
}

func validAttendanceInput() usecase.AttendanceInput {
	return usecase.AttendanceInput{
		EmployeeCode: "EMP003",
		Date:         "2025-03-14",
		TimeIn:       "08:00",
		TimeOut:      "12:00",
		Status:       "Present",
	}
}

func TestAttendanceRecord_MissingFields(t *testing.T) {
	aRepo := new(AttendanceRepoMock)
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewAttendanceUsecase(aRepo, eRepo)

	in := validAttendanceInput()
	in.TimeIn = ""
	err := uc.Record(context.Background(), model.SessionMorning, in)
	assertStatus(t, err, 400)
	eRepo.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
}

func TestAttendanceRecord_UnknownEmployee(t *testing.T) {
	aRepo := new(AttendanceRepoMock)
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewAttendanceUsecase(aRepo, eRepo)

	eRepo.On("FindByCode", mock.Anything, "EMP003").Return(model.Employee{}, repo.ErrNotFound)

	err := uc.Record(context.Background(), model.SessionMorning, validAttendanceInput())
	assertStatus(t, err, 404)
	aRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendanceRecord_CreatesWhenNew(t *testing.T) {
	aRepo := new(AttendanceRepoMock)
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewAttendanceUsecase(aRepo, eRepo)

	eRepo.On("FindByCode", mock.Anything, "EMP003").Return(model.Employee{ID: 3, EmployeeCode: "EMP003"}, nil)
	aRepo.On("Find", mock.Anything, model.SessionMorning, "EMP003", "2025-03-14").
		Return(model.Attendance{}, repo.ErrNotFound)
	aRepo.On("Create", mock.Anything, model.SessionMorning, mock.Anything).Return(nil)

	err := uc.Record(context.Background(), model.SessionMorning, validAttendanceInput())
	assert.NoError(t, err)
	aRepo.AssertCalled(t, "Create", mock.Anything, model.SessionMorning, mock.Anything)
	aRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendanceRecord_UpdatesExisting(t *testing.T) {
	aRepo := new(AttendanceRepoMock)
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewAttendanceUsecase(aRepo, eRepo)

	eRepo.On("FindByCode", mock.Anything, "EMP003").Return(model.Employee{ID: 3, EmployeeCode: "EMP003"}, nil)
	aRepo.On("Find", mock.Anything, model.SessionAfternoon, "EMP003", "2025-03-14").
		Return(model.Attendance{ID: 11, EmployeeCode: "EMP003", Date: "2025-03-14"}, nil)
	aRepo.On("Update", mock.Anything, model.SessionAfternoon, mock.Anything).Return(nil)

	// 同じ(employeeId, date)の打刻は上書き
	err := uc.Record(context.Background(), model.SessionAfternoon, validAttendanceInput())
	assert.NoError(t, err)
	aRepo.AssertCalled(t, "Update", mock.Anything, model.SessionAfternoon, mock.Anything)
	aRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendanceReport_RequiresDates(t *testing.T) {
	aRepo := new(AttendanceRepoMock)
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewAttendanceUsecase(aRepo, eRepo)

	_, err := uc.Report(context.Background(), "", "2025-03-31")
	assertStatus(t, err, 400)
}

func TestAttendanceReport_CombinesSessions(t *testing.T) {
	aRepo := new(AttendanceRepoMock)
	eRepo := new(EmployeeRepoMock)
	uc := usecase.NewAttendanceUsecase(aRepo, eRepo)

	morning := []model.AttendanceEntry{{ID: 1, EmployeeCode: "EMP003", Date: "2025-03-14"}}
	afternoon := []model.AttendanceEntry{{ID: 2, EmployeeCode: "EMP003", Date: "2025-03-14"}}
	aRepo.On("ListBetween", mock.Anything, model.SessionMorning, "2025-03-01", "2025-03-31").Return(morning, nil)
	aRepo.On("ListBetween", mock.Anything, model.SessionAfternoon, "2025-03-01", "2025-03-31").Return(afternoon, nil)

	out, err := uc.Report(context.Background(), "2025-03-01", "2025-03-31")
	assert.NoError(t, err)
	assert.Len(t, out.Morning, 1)
	assert.Len(t, out.Afternoon, 1)
}
