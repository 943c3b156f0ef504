package assistant

import (
	chatDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/chat"
	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
	requestDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/hrrequest"
	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
)

// Store contracts consumed by the chat subsystem. All lookups return
// (nil, nil) for absent records; errors mean the store itself failed.

type EmployeeStore interface {
	FindByID(id string) (*employeeDatamodel.Employee, error)
}

type BalanceStore interface {
	FindByEmployee(employeeID string) (*employeeDatamodel.VacationBalance, error)
}

type RequestStore interface {
	FindRecentByEmployee(employeeID string, limit int) ([]*requestDatamodel.HRRequest, error)
}

type PolicyStore interface {
	FindAll(limit int) ([]*policyDatamodel.Policy, error)
	FindByCategory(category string) ([]*policyDatamodel.Policy, error)
}

type SalaryStore interface {
	FindMostRecentByEmployee(employeeID string) (*employeeDatamodel.SalaryPayment, error)
}

type ChatStore interface {
	Create(message *chatDatamodel.ChatMessage) error
	RecentByEmployee(employeeID string, limit int) ([]*chatDatamodel.ChatMessage, error)
	BySession(sessionID string) ([]*chatDatamodel.ChatMessage, error)
}
