package repository

import (
	"context"

	repo "erp/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	inventory    repo.InventoryRepository
	transactions repo.InventoryTransactionRepository
	suppliers    repo.SupplierRepository
}

func (r *txReposGorm) Inventory() repo.InventoryRepository { return r.inventory }
func (r *txReposGorm) InventoryTransactions() repo.InventoryTransactionRepository {
	return r.transactions
}
func (r *txReposGorm) Suppliers() repo.SupplierRepository { return r.suppliers }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがerrorを返せばrollback、nilならcommit。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			inventory:    NewInventoryGormRepository(tx),
			transactions: NewInventoryTransactionGormRepository(tx),
			suppliers:    NewSupplierGormRepository(tx),
		}
		return fn(r)
	})
}
