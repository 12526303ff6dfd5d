package model

// 仕入先。ProductCategoriesはJSONエンコード済み文字列で保持する。
type Supplier struct {
	ID                     int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	SupplierName           string  `gorm:"type:varchar(255);not null" json:"supplierName"`
	TIN                    string  `gorm:"column:tin;type:varchar(50)" json:"tin"`
	BusinessRegNo          string  `gorm:"type:varchar(100)" json:"businessRegNo"`
	PrimaryContact         string  `gorm:"type:varchar(255)" json:"primaryContact"`
	PrimaryContactNumber   string  `gorm:"type:varchar(50)" json:"primaryContactNumber"`
	SecondaryContact       string  `gorm:"type:varchar(255)" json:"secondaryContact"`
	SecondaryContactNumber string  `gorm:"type:varchar(50)" json:"secondaryContactNumber"`
	Email                  string  `gorm:"type:varchar(255)" json:"email"`
	AlternativeEmail       string  `gorm:"type:varchar(255)" json:"alternativeEmail"`
	Website                string  `gorm:"type:varchar(255)" json:"website"`
	Address                string  `gorm:"type:varchar(255)" json:"address"`
	ProductCategories      string  `gorm:"type:text" json:"productCategories"`
	PaymentTerms           string  `gorm:"type:varchar(100)" json:"paymentTerms"`
	CreditLimit            float64 `gorm:"not null;default:0" json:"creditLimit"`
	LeadTime               int64   `gorm:"not null;default:0" json:"leadTime"`
	Status                 string  `gorm:"type:varchar(50)" json:"status"`
	SupplyRating           int64   `gorm:"not null;default:0" json:"supplyRating"`
	QualityRating          int64   `gorm:"not null;default:0" json:"qualityRating"`
	DeliveryRating         int64   `gorm:"not null;default:0" json:"deliveryRating"`
	PaymentMethod          string  `gorm:"type:varchar(100)" json:"paymentMethod"`
}
