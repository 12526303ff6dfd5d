package repository

import (
	"context"
	"errors"

	"erp/internal/domain/model"
	repo "erp/internal/repository"

	"gorm.io/gorm"
)

// 午前・午後で同じ構造のテーブルを2つ持つ（元システムのスキーマを踏襲）
const (
	MorningTable   = "morning_attendances"
	AfternoonTable = "afternoon_attendances"
)

func tableFor(session model.AttendanceSession) string {
	if session == model.SessionAfternoon {
		return AfternoonTable
	}
	return MorningTable
}

type AttendanceGormRepository struct {
	db *gorm.DB
}

// DI
func NewAttendanceGormRepository(db *gorm.DB) *AttendanceGormRepository {
	return &AttendanceGormRepository{db: db}
}

// 指定日の勤怠を従業員名付きで返す
func (r *AttendanceGormRepository) ListByDate(ctx context.Context, session model.AttendanceSession, date string) ([]model.AttendanceEntry, error) {
	return r.listEntries(ctx, session, "a.date = ?", date)
}

// 期間内の勤怠（レポート用）
func (r *AttendanceGormRepository) ListBetween(ctx context.Context, session model.AttendanceSession, startDate, endDate string) ([]model.AttendanceEntry, error) {
	return r.listEntries(ctx, session, "a.date BETWEEN ? AND ?", startDate, endDate)
}

func (r *AttendanceGormRepository) listEntries(ctx context.Context, session model.AttendanceSession, cond string, args ...interface{}) ([]model.AttendanceEntry, error) {
	var rows []model.AttendanceEntry
	err := r.db.WithContext(ctx).
		Table(tableFor(session)+" AS a").
		Select("a.id, a.employee_code, a.date, a.time_in, a.time_out, a.status, e.first_name, e.last_name").
		Joins("LEFT JOIN employees e ON a.employee_code = e.employee_code").
		Where(cond, args...).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.AttendanceEntry{}
	}
	return rows, nil
}

func (r *AttendanceGormRepository) Find(ctx context.Context, session model.AttendanceSession, employeeCode, date string) (model.Attendance, error) {
	var a model.Attendance
	err := r.db.WithContext(ctx).
		Table(tableFor(session)).
		Where("employee_code = ? AND date = ?", employeeCode, date).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Attendance{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Attendance{}, err
	}
	return a, nil
}

func (r *AttendanceGormRepository) Create(ctx context.Context, session model.AttendanceSession, a model.Attendance) error {
	return r.db.WithContext(ctx).Table(tableFor(session)).Create(&a).Error
}

// (employeeCode, date)をキーに時刻とステータスを上書き
func (r *AttendanceGormRepository) Update(ctx context.Context, session model.AttendanceSession, a model.Attendance) error {
	res := r.db.WithContext(ctx).
		Table(tableFor(session)).
		Where("employee_code = ? AND date = ?", a.EmployeeCode, a.Date).
		Updates(map[string]interface{}{
			"time_in":  a.TimeIn,
			"time_out": a.TimeOut,
			"status":   a.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
