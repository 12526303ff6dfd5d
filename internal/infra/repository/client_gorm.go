package repository

import (
	"context"
	"errors"

	"erp/internal/domain/model"
	repo "erp/internal/repository"

	"gorm.io/gorm"
)

type ClientGormRepository struct {
	db *gorm.DB
}

// DI
func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := r.db.WithContext(ctx).Order("id asc").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) FindByID(ctx context.Context, id int64) (model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Client{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Client{}, err
	}
	return c, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c model.Client) (model.Client, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Client{}, err
	}
	return c, nil
}

func (r *ClientGormRepository) Update(ctx context.Context, c model.Client) error {
	res := r.db.WithContext(ctx).Model(&model.Client{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"client_name":      c.ClientName,
		"business_address": c.BusinessAddress,
		"contact_no":       c.ContactNo,
		"email":            c.Email,
		"business_name":    c.BusinessName,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
