package repository

import (
	"context"

	"erp/internal/domain/model"
)

type AttendanceRepository interface {
	// 指定日の勤怠（従業員名JOIN済み）
	ListByDate(ctx context.Context, session model.AttendanceSession, date string) ([]model.AttendanceEntry, error)

	// 期間内の勤怠（レポート用）
	ListBetween(ctx context.Context, session model.AttendanceSession, startDate, endDate string) ([]model.AttendanceEntry, error)

	Find(ctx context.Context, session model.AttendanceSession, employeeCode, date string) (model.Attendance, error)
	Create(ctx context.Context, session model.AttendanceSession, a model.Attendance) error
	Update(ctx context.Context, session model.AttendanceSession, a model.Attendance) error
}
