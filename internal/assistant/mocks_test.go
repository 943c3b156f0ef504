package assistant_test

import (
	"context"
	"log/slog"
	"os"

	chatDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/chat"
	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
	requestDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/hrrequest"
	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
	"github.com/frahmantamala/hr-assistant/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockEmployeeStore struct {
	employees map[string]*employeeDatamodel.Employee
	findError error
}

func newMockEmployeeStore() *mockEmployeeStore {
	return &mockEmployeeStore{employees: make(map[string]*employeeDatamodel.Employee)}
}

func (m *mockEmployeeStore) FindByID(id string) (*employeeDatamodel.Employee, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	return m.employees[id], nil
}

type mockBalanceStore struct {
	balances  map[string]*employeeDatamodel.VacationBalance
	findError error
}

func newMockBalanceStore() *mockBalanceStore {
	return &mockBalanceStore{balances: make(map[string]*employeeDatamodel.VacationBalance)}
}

func (m *mockBalanceStore) FindByEmployee(employeeID string) (*employeeDatamodel.VacationBalance, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	return m.balances[employeeID], nil
}

type mockRequestStore struct {
	requests  map[string][]*requestDatamodel.HRRequest
	findError error
}

func newMockRequestStore() *mockRequestStore {
	return &mockRequestStore{requests: make(map[string][]*requestDatamodel.HRRequest)}
}

func (m *mockRequestStore) FindRecentByEmployee(employeeID string, limit int) ([]*requestDatamodel.HRRequest, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	requests := m.requests[employeeID]
	if len(requests) > limit {
		requests = requests[:limit]
	}
	return requests, nil
}

type mockSalaryStore struct {
	payments  map[string]*employeeDatamodel.SalaryPayment
	findError error
}

func newMockSalaryStore() *mockSalaryStore {
	return &mockSalaryStore{payments: make(map[string]*employeeDatamodel.SalaryPayment)}
}

func (m *mockSalaryStore) FindMostRecentByEmployee(employeeID string) (*employeeDatamodel.SalaryPayment, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	return m.payments[employeeID], nil
}

type mockPolicyStore struct {
	policies  []*policyDatamodel.Policy
	findError error
}

func newMockPolicyStore() *mockPolicyStore {
	return &mockPolicyStore{}
}

func (m *mockPolicyStore) FindAll(limit int) ([]*policyDatamodel.Policy, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	if len(m.policies) > limit {
		return m.policies[:limit], nil
	}
	return m.policies, nil
}

func (m *mockPolicyStore) FindByCategory(category string) ([]*policyDatamodel.Policy, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	var matched []*policyDatamodel.Policy
	for _, p := range m.policies {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

type mockChatStore struct {
	created     []*chatDatamodel.ChatMessage
	createError error
	findError   error
	nextID      int64
}

func newMockChatStore() *mockChatStore {
	return &mockChatStore{nextID: 1}
}

func (m *mockChatStore) Create(message *chatDatamodel.ChatMessage) error {
	if m.createError != nil {
		return m.createError
	}
	message.ID = m.nextID
	m.nextID++
	m.created = append(m.created, message)
	return nil
}

func (m *mockChatStore) RecentByEmployee(employeeID string, limit int) ([]*chatDatamodel.ChatMessage, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	var turns []*chatDatamodel.ChatMessage
	for i := len(m.created) - 1; i >= 0 && len(turns) < limit; i-- {
		if m.created[i].EmployeeID == employeeID {
			turns = append(turns, m.created[i])
		}
	}
	return turns, nil
}

func (m *mockChatStore) BySession(sessionID string) ([]*chatDatamodel.ChatMessage, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	var turns []*chatDatamodel.ChatMessage
	for _, turn := range m.created {
		if turn.SessionID == sessionID {
			turns = append(turns, turn)
		}
	}
	return turns, nil
}

type mockProvider struct {
	response    string
	err         error
	calls       int
	lastRequest llm.CompletionRequest
}

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	m.calls++
	m.lastRequest = req
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}
