package employee

import (
	"log/slog"

	"github.com/frahmantamala/hr-assistant/internal"
	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
)

type Repository interface {
	FindByID(id string) (*employeeDatamodel.Employee, error)
	FindByEmail(email string) (*employeeDatamodel.Employee, error)
}

type BalanceRepository interface {
	FindByEmployee(employeeID string) (*employeeDatamodel.VacationBalance, error)
	ConsumeVacationDays(employeeID string, days int) error
}

type SalaryRepository interface {
	FindMostRecentByEmployee(employeeID string) (*employeeDatamodel.SalaryPayment, error)
	ListByEmployee(employeeID string, limit int) ([]*employeeDatamodel.SalaryPayment, error)
}

type Service struct {
	repo     Repository
	balances BalanceRepository
	salaries SalaryRepository
	logger   *slog.Logger
}

func NewService(repo Repository, balances BalanceRepository, salaries SalaryRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		balances: balances,
		salaries: salaries,
		logger:   logger,
	}
}

func (s *Service) GetProfile(employeeID string) (*Profile, error) {
	model, err := s.repo.FindByID(employeeID)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if model == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return ProfileFromDataModel(model), nil
}

func (s *Service) GetVacationBalance(employeeID string) (*Balance, error) {
	model, err := s.balances.FindByEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to get vacation balance", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if model == nil {
		return nil, internal.NewNotFoundError("Vacation balance not found", internal.ErrCodeBalanceNotFound)
	}
	return BalanceFromDataModel(model), nil
}

func (s *Service) ListSalaryPayments(employeeID string, limit int) ([]*Payment, error) {
	if limit <= 0 || limit > 100 {
		limit = 12
	}
	models, err := s.salaries.ListByEmployee(employeeID, limit)
	if err != nil {
		s.logger.Error("failed to list salary payments", "error", err, "employee_id", employeeID)
		return nil, err
	}
	return PaymentsFromDataModelSlice(models), nil
}

// ConsumeVacationDays satisfies the request-approval workflow's
// BalanceUpdater contract.
func (s *Service) ConsumeVacationDays(employeeID string, days int) error {
	return s.balances.ConsumeVacationDays(employeeID, days)
}
