package postgres

import (
	"fmt"

	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
	"github.com/frahmantamala/hr-assistant/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) FindByID(id string) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) FindByEmail(email string) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("email = ?", email).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

// GetPasswordForEmail backs the login flow.
func (r *EmployeeRepository) GetPasswordForEmail(email string) (passwordHash string, employeeID string, err error) {
	emp, err := r.FindByEmail(email)
	if err != nil {
		return "", "", err
	}
	if emp == nil {
		return "", "", gorm.ErrRecordNotFound
	}
	return emp.PasswordHash, emp.ID, nil
}

type BalanceRepository struct {
	db *gorm.DB
}

func NewBalanceRepository(db *gorm.DB) employee.BalanceRepository {
	return &BalanceRepository{db: db}
}

// FindByEmployee returns the latest-year balance row for the employee.
func (r *BalanceRepository) FindByEmployee(employeeID string) (*employeeDatamodel.VacationBalance, error) {
	var balance employeeDatamodel.VacationBalance
	err := r.db.Where("employee_id = ?", employeeID).
		Order("year DESC").
		First(&balance).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &balance, nil
}

// ConsumeVacationDays bumps used_days and recomputes remaining_days in one
// statement so the stored invariant remaining = total - used holds.
func (r *BalanceRepository) ConsumeVacationDays(employeeID string, days int) error {
	result := r.db.Model(&employeeDatamodel.VacationBalance{}).
		Where("employee_id = ?", employeeID).
		Updates(map[string]interface{}{
			"used_days":      gorm.Expr("used_days + ?", days),
			"remaining_days": gorm.Expr("total_days - used_days - ?", days),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no vacation balance for employee %s", employeeID)
	}
	return nil
}

type SalaryRepository struct {
	db *gorm.DB
}

func NewSalaryRepository(db *gorm.DB) employee.SalaryRepository {
	return &SalaryRepository{db: db}
}

func (r *SalaryRepository) FindMostRecentByEmployee(employeeID string) (*employeeDatamodel.SalaryPayment, error) {
	var payment employeeDatamodel.SalaryPayment
	err := r.db.Where("employee_id = ?", employeeID).
		Order("date DESC").
		First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *SalaryRepository) ListByEmployee(employeeID string, limit int) ([]*employeeDatamodel.SalaryPayment, error) {
	var payments []*employeeDatamodel.SalaryPayment
	err := r.db.Where("employee_id = ?", employeeID).
		Order("date DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}
