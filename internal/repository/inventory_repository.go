package repository

import (
	"context"

	"erp/internal/domain/model"
)

// 在庫品目の永続化だけを約束。currentStockの増減はApplyStockDelta経由。
type InventoryRepository interface {
	List(ctx context.Context) ([]model.InventoryItem, error)
	FindByID(ctx context.Context, id int64) (model.InventoryItem, error)
	Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error)
	Update(ctx context.Context, item model.InventoryItem) error
	Delete(ctx context.Context, id int64) error

	// currentStockへ差分を原子的に適用（current_stock = current_stock + delta）
	ApplyStockDelta(ctx context.Context, itemID int64, delta int64) error
}

// ストック取引台帳。追記のみ。
type InventoryTransactionRepository interface {
	ListByItem(ctx context.Context, itemID int64) ([]model.InventoryTransactionEntry, error)
	CountByItem(ctx context.Context, itemID int64) (int64, error)
	Create(ctx context.Context, t model.InventoryTransaction) (model.InventoryTransaction, error)
}
