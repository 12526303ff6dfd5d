package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"erp/internal/domain/model"
	repo "erp/internal/repository"
)

type AttendanceUsecase struct {
	attendance repo.AttendanceRepository
	employees  repo.EmployeeRepository
}

// DI
func NewAttendanceUsecase(attendance repo.AttendanceRepository, employees repo.EmployeeRepository) *AttendanceUsecase {
	return &AttendanceUsecase{attendance: attendance, employees: employees}
}

type AttendanceInput struct {
	EmployeeCode string `json:"employeeId"`
	Date         string `json:"date"`
	TimeIn       string `json:"timeIn"`
	TimeOut      string `json:"timeOut"`
	Status       string `json:"status"`
}

// 期間レポート（午前・午後をまとめて返す）
type AttendanceReportOutput struct {
	Morning   []model.AttendanceEntry `json:"morning"`
	Afternoon []model.AttendanceEntry `json:"afternoon"`
}

func (u *AttendanceUsecase) ListByDate(ctx context.Context, session model.AttendanceSession, date string) ([]model.AttendanceEntry, error) {
	if strings.TrimSpace(date) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "date is required")
	}

	rows, err := u.attendance.ListByDate(ctx, session, date)
	if err != nil {
		return nil, NewDBError("Error fetching attendance", err)
	}
	return rows, nil
}

// 記録。既存の(employeeId, date)があれば上書き、なければ新規作成。
func (u *AttendanceUsecase) Record(ctx context.Context, session model.AttendanceSession, in AttendanceInput) error {
	if in.EmployeeCode == "" || in.Date == "" || in.TimeIn == "" || in.TimeOut == "" || in.Status == "" {
		return NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	// 従業員の存在チェック
	if _, err := u.employees.FindByCode(ctx, in.EmployeeCode); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Employee not found")
		}
		return NewDBError("Error recording attendance", err)
	}

	rec := model.Attendance{
		EmployeeCode: in.EmployeeCode,
		Date:         in.Date,
		TimeIn:       in.TimeIn,
		TimeOut:      in.TimeOut,
		Status:       in.Status,
	}

	_, err := u.attendance.Find(ctx, session, in.EmployeeCode, in.Date)
	switch {
	case err == nil:
		if err := u.attendance.Update(ctx, session, rec); err != nil {
			return NewDBError("Error recording attendance", err)
		}
	case errors.Is(err, repo.ErrNotFound):
		if err := u.attendance.Create(ctx, session, rec); err != nil {
			return NewDBError("Error recording attendance", err)
		}
	default:
		return NewDBError("Error recording attendance", err)
	}

	return nil
}

func (u *AttendanceUsecase) Report(ctx context.Context, startDate, endDate string) (AttendanceReportOutput, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return AttendanceReportOutput{}, NewHTTPError(http.StatusBadRequest, "Start date and end date are required")
	}

	morning, err := u.attendance.ListBetween(ctx, model.SessionMorning, startDate, endDate)
	if err != nil {
		return AttendanceReportOutput{}, NewDBError("Error generating attendance report", err)
	}
	afternoon, err := u.attendance.ListBetween(ctx, model.SessionAfternoon, startDate, endDate)
	if err != nil {
		return AttendanceReportOutput{}, NewDBError("Error generating attendance report", err)
	}

	return AttendanceReportOutput{Morning: morning, Afternoon: afternoon}, nil
}
