package model

// 勤怠のセッション（午前・午後で別テーブル）
type AttendanceSession string

const (
	SessionMorning   AttendanceSession = "morning"
	SessionAfternoon AttendanceSession = "afternoon"
)

// 勤怠1件。EmployeeCodeはEmployee.EmployeeCodeを参照する。
type Attendance struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeCode string `gorm:"column:employee_code;type:varchar(20);not null;index" json:"employeeId"`
	Date         string `gorm:"type:varchar(10);not null;index" json:"date"`
	TimeIn       string `gorm:"type:varchar(10);not null" json:"timeIn"`
	TimeOut      string `gorm:"type:varchar(10);not null" json:"timeOut"`
	Status       string `gorm:"type:varchar(20);not null" json:"status"`
}

// 勤怠一覧用（従業員名をJOINした行）
type AttendanceEntry struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employeeId"`
	Date         string `json:"date"`
	TimeIn       string `json:"timeIn"`
	TimeOut      string `json:"timeOut"`
	Status       string `json:"status"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}
