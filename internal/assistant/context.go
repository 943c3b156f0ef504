package assistant

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/frahmantamala/hr-assistant/internal/hrrequest"
)

// recentRequestCount is how many requests the context surfaces per employee.
const recentRequestCount = 3

// ContextBuilder renders an employee's current HR status into the text block
// injected into every model prompt. Every section is optional: missing data
// silently drops the section, and a store failure is treated the same way.
type ContextBuilder struct {
	balances BalanceStore
	requests RequestStore
	salaries SalaryStore
	logger   *slog.Logger
}

func NewContextBuilder(balances BalanceStore, requests RequestStore, salaries SalaryStore, logger *slog.Logger) *ContextBuilder {
	return &ContextBuilder{
		balances: balances,
		requests: requests,
		salaries: salaries,
		logger:   logger,
	}
}

// Build returns the newline-joined status text, or the empty string when the
// employee has no data at all.
func (b *ContextBuilder) Build(employeeID string) string {
	var parts []string

	balance, err := b.balances.FindByEmployee(employeeID)
	if err != nil {
		b.logger.Warn("context: vacation balance lookup failed", "error", err, "employee_id", employeeID)
	} else if balance != nil {
		// remaining/total come from the store as written by the approval
		// workflow; never recompute here
		parts = append(parts, fmt.Sprintf("Vacation Days: %d/%d remaining", balance.RemainingDays, balance.TotalDays))
	}

	requests, err := b.requests.FindRecentByEmployee(employeeID, recentRequestCount)
	if err != nil {
		b.logger.Warn("context: recent requests lookup failed", "error", err, "employee_id", employeeID)
	} else if len(requests) > 0 {
		parts = append(parts, "Recent Requests:")
		for _, req := range requests {
			parts = append(parts, fmt.Sprintf("- %s: %s", hrrequest.TypeLabel(req.Type), hrrequest.StatusLabel(req.Status)))
		}
	}

	payment, err := b.salaries.FindMostRecentByEmployee(employeeID)
	if err != nil {
		b.logger.Warn("context: salary payment lookup failed", "error", err, "employee_id", employeeID)
	} else if payment != nil {
		parts = append(parts, fmt.Sprintf("Last Salary: %.2f SAR on %s", payment.Amount, payment.Date.Format("2006-01-02")))
	}

	return strings.Join(parts, "\n")
}
