package repository

import (
	"context"
	"errors"

	"erp/internal/domain/model"
	repo "erp/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫一覧（id昇順・ページングなし）
func (r *InventoryGormRepository) List(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// IDで在庫品目を取得
func (r *InventoryGormRepository) FindByID(ctx context.Context, id int64) (model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.InventoryItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventoryGormRepository) Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventoryGormRepository) Update(ctx context.Context, item model.InventoryItem) error {
	res := r.db.WithContext(ctx).Model(&model.InventoryItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"item_name":     item.ItemName,
		"description":   item.Description,
		"current_stock": item.CurrentStock,
		"minimum_stock": item.MinimumStock,
		"unit":          item.Unit,
		"category":      item.Category,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *InventoryGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// currentStockへの差分適用。read-modify-writeを避けて1文で更新する。
func (r *InventoryGormRepository) ApplyStockDelta(ctx context.Context, itemID int64, delta int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.InventoryItem{}).
		Where("id = ?", itemID).
		Update("current_stock", gorm.Expr("current_stock + ?", delta))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
