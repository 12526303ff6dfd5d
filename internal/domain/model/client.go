package model

// 取引先（発注元）
type Client struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientName      string `gorm:"type:varchar(255);not null" json:"clientName"`
	BusinessAddress string `gorm:"type:varchar(255)" json:"businessAddress"`
	ContactNo       string `gorm:"type:varchar(50)" json:"contactNo"`
	Email           string `gorm:"type:varchar(255)" json:"email"`
	BusinessName    string `gorm:"type:varchar(255)" json:"businessName"`
}
