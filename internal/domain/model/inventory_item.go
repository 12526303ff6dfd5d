package model

// 印刷資材の在庫品目。currentStockはストック取引でのみ増減する。
type InventoryItem struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemName     string `gorm:"type:varchar(255);not null" json:"itemName"`
	Description  string `gorm:"type:text" json:"description"`
	CurrentStock int64  `gorm:"not null;default:0" json:"currentStock"`
	MinimumStock int64  `gorm:"not null;default:0" json:"minimumStock"`
	Unit         string `gorm:"type:varchar(50)" json:"unit"`
	Category     string `gorm:"type:varchar(100)" json:"category"`
}
