package repository

import (
	"context"
	"errors"

	"erp/internal/domain/model"
	repo "erp/internal/repository"

	"gorm.io/gorm"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

// DI
func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

// 従業員一覧（新しいものから）
func (r *EmployeeGormRepository) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := r.db.WithContext(ctx).Order("id desc").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeGormRepository) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Employee{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Employee{}, err
	}
	return e, nil
}

// EMPコードで従業員を取得（勤怠の存在チェックで使う）
func (r *EmployeeGormRepository) FindByCode(ctx context.Context, code string) (model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).Where("employee_code = ?", code).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Employee{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeGormRepository) Create(ctx context.Context, e model.Employee) (model.Employee, error) {
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return model.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeGormRepository) Update(ctx context.Context, e model.Employee) error {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).Where("id = ?", e.ID).Updates(map[string]interface{}{
		"first_name":     e.FirstName,
		"middle_initial": e.MiddleInitial,
		"last_name":      e.LastName,
		"email":          e.Email,
		"contact_number": e.ContactNumber,
		"position":       e.Position,
		"department":     e.Department,
		"date_hired":     e.DateHired,
		"status":         e.Status,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// excludeID以外のレコードでemailが使われているか
func (r *EmployeeGormRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&model.Employee{}).Where("email = ?", email)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// 採番用に最後のEmployeeCodeを返す。未登録なら""。
func (r *EmployeeGormRepository) LastEmployeeCode(ctx context.Context) (string, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).Order("id desc").First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return e.EmployeeCode, nil
}
