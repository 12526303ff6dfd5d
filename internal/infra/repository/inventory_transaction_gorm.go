package repository

import (
	"context"

	"erp/internal/domain/model"

	"gorm.io/gorm"
)

type InventoryTransactionGormRepository struct {
	db *gorm.DB
}

// DI
func NewInventoryTransactionGormRepository(db *gorm.DB) *InventoryTransactionGormRepository {
	return &InventoryTransactionGormRepository{db: db}
}

// 品目の取引履歴をsupplier名付きで返す（date降順）
func (r *InventoryTransactionGormRepository) ListByItem(ctx context.Context, itemID int64) ([]model.InventoryTransactionEntry, error) {
	var rows []model.InventoryTransactionEntry
	err := r.db.WithContext(ctx).
		Table("inventory_transactions AS it").
		Select("it.id, it.inventory_item_id, it.transaction_type, it.quantity, it.date, it.reason, s.supplier_name").
		Joins("LEFT JOIN suppliers s ON it.supplier_id = s.id").
		Where("it.inventory_item_id = ?", itemID).
		Order("it.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.InventoryTransactionEntry{}
	}
	return rows, nil
}

func (r *InventoryTransactionGormRepository) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.InventoryTransaction{}).
		Where("inventory_item_id = ?", itemID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InventoryTransactionGormRepository) Create(ctx context.Context, t model.InventoryTransaction) (model.InventoryTransaction, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.InventoryTransaction{}, err
	}
	return t, nil
}
