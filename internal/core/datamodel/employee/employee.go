package employee

import "time"

// Employee is a read-mostly profile record. IDs are HR codes like "EMP001"
// rather than surrogate keys so they match the payroll export.
type Employee struct {
	ID           string    `json:"id" gorm:"primaryKey;column:id"`
	Name         string    `json:"name" gorm:"column:name;not null"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Title        string    `json:"title" gorm:"column:title"`
	Department   string    `json:"department" gorm:"column:department"`
	Grade        string    `json:"grade" gorm:"column:grade"`
	Manager      string    `json:"manager" gorm:"column:manager"`
	BasicSalary  float64   `json:"basic_salary" gorm:"column:basic_salary"`
	TotalSalary  float64   `json:"total_salary" gorm:"column:total_salary"`
	IsManager    bool      `json:"is_manager" gorm:"column:is_manager;default:false"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	StartDate    string    `json:"start_date" gorm:"column:start_date"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Employee) TableName() string {
	return "employees"
}

// VacationBalance is maintained by the request-approval workflow; readers
// must surface remaining_days as stored, never recompute it.
type VacationBalance struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	EmployeeID    string    `json:"employee_id" gorm:"column:employee_id;uniqueIndex:idx_balance_employee_year;not null"`
	Year          int       `json:"year" gorm:"column:year;uniqueIndex:idx_balance_employee_year;not null"`
	TotalDays     int       `json:"total_days" gorm:"column:total_days;not null"`
	UsedDays      int       `json:"used_days" gorm:"column:used_days;not null"`
	RemainingDays int       `json:"remaining_days" gorm:"column:remaining_days;not null"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (VacationBalance) TableName() string {
	return "vacation_balances"
}

type SalaryPayment struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	EmployeeID  string    `json:"employee_id" gorm:"column:employee_id;index;not null"`
	Amount      float64   `json:"amount" gorm:"column:amount;not null"`
	Date        time.Time `json:"date" gorm:"column:date;not null"`
	Status      string    `json:"status" gorm:"column:status"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (SalaryPayment) TableName() string {
	return "salary_payments"
}
