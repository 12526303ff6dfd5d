package model

// 受注。OrderRefは帳票用の注文番号（APIではorderId）。
type Order struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID     int64   `gorm:"not null;index" json:"clientId"`
	OrderDate    string  `gorm:"type:varchar(10)" json:"orderDate"`
	Status       string  `gorm:"type:varchar(50)" json:"status"`
	OrderName    string  `gorm:"type:varchar(255)" json:"orderName"`
	OrderRef     string  `gorm:"column:order_ref;type:varchar(100)" json:"orderId"`
	Description  string  `gorm:"type:text" json:"description"`
	Quantity     int64   `gorm:"not null;default:0" json:"quantity"`
	PricePerUnit float64 `gorm:"not null;default:0" json:"pricePerUnit"`
	TotalPrice   float64 `gorm:"not null;default:0" json:"totalPrice"`
}
