package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
)

// Profile is the employee view returned to clients; salary structure fields
// stay internal.
type Profile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	Grade      string    `json:"grade"`
	Manager    string    `json:"manager"`
	IsManager  bool      `json:"is_manager"`
	StartDate  string    `json:"start_date"`
	CreatedAt  time.Time `json:"created_at"`
}

type Balance struct {
	EmployeeID    string `json:"employee_id"`
	Year          int    `json:"year"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}

type Payment struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
}

func ProfileFromDataModel(m *employeeDatamodel.Employee) *Profile {
	return &Profile{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Title:      m.Title,
		Department: m.Department,
		Grade:      m.Grade,
		Manager:    m.Manager,
		IsManager:  m.IsManager,
		StartDate:  m.StartDate,
		CreatedAt:  m.CreatedAt,
	}
}

func BalanceFromDataModel(m *employeeDatamodel.VacationBalance) *Balance {
	return &Balance{
		EmployeeID:    m.EmployeeID,
		Year:          m.Year,
		TotalDays:     m.TotalDays,
		UsedDays:      m.UsedDays,
		RemainingDays: m.RemainingDays,
	}
}

func PaymentFromDataModel(m *employeeDatamodel.SalaryPayment) *Payment {
	return &Payment{
		ID:          m.ID,
		Amount:      m.Amount,
		Date:        m.Date,
		Status:      m.Status,
		Description: m.Description,
	}
}

func PaymentsFromDataModelSlice(models []*employeeDatamodel.SalaryPayment) []*Payment {
	result := make([]*Payment, len(models))
	for i, m := range models {
		result[i] = PaymentFromDataModel(m)
	}
	return result
}
