package model

// 従業員。EmployeeCodeは「EMP001」形式で自動採番される（APIではemployeeId）。
type Employee struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeCode  string `gorm:"column:employee_code;type:varchar(20);not null;uniqueIndex" json:"employeeId"`
	FirstName     string `gorm:"type:varchar(100);not null" json:"firstName"`
	MiddleInitial string `gorm:"type:varchar(10)" json:"middleInitial"`
	LastName      string `gorm:"type:varchar(100);not null" json:"lastName"`
	Email         string `gorm:"type:varchar(255);not null" json:"email"`
	ContactNumber string `gorm:"type:varchar(50)" json:"contactNumber"`
	Position      string `gorm:"type:varchar(100)" json:"position"`
	Department    string `gorm:"type:varchar(100)" json:"department"`
	DateHired     string `gorm:"type:varchar(10)" json:"dateHired"`
	Status        string `gorm:"type:varchar(50);not null;default:'Active'" json:"status"`
}
