package model

import "time"

// ストック取引の種別
const (
	TransactionTypeStockIn  = "Stock In"
	TransactionTypeStockOut = "Stock Out"
)

// 在庫移動の台帳。作成のみで編集・削除はしない。
type InventoryTransaction struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	InventoryItemID int64     `gorm:"not null;index" json:"inventoryItemId"`
	TransactionType string    `gorm:"type:varchar(20);not null" json:"transactionType"`
	Quantity        int64     `gorm:"not null" json:"quantity"`
	Date            time.Time `gorm:"not null" json:"date"`
	Reason          string    `gorm:"type:varchar(255)" json:"reason"`
	SupplierID      *int64    `gorm:"index" json:"supplierId"`
}

// 台帳一覧用（supplier名をJOINした行）
type InventoryTransactionEntry struct {
	ID              int64     `json:"id"`
	InventoryItemID int64     `json:"inventoryItemId"`
	TransactionType string    `json:"transactionType"`
	Quantity        int64     `json:"quantity"`
	Date            time.Time `json:"date"`
	Reason          string    `json:"reason"`
	SupplierName    *string   `json:"supplierName"`
}
