package assistant

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/frahmantamala/hr-assistant/internal/policy"
)

const (
	policyExcerptLength = 200
	policyMatchLimit    = 2
)

const (
	policyNotFoundMessage = "I could not find policy information matching your question. Please check the Policy Center or contact HR directly for assistance."

	sickLeaveGuidance = "I can help you request sick leave. You'll need to provide a medical certificate. Would you like me to guide you to the sick leave request form?"

	genericFallbackMessage = "I'm here to help with HR questions about policies, leave requests, salary information, and more. Could you please be more specific about what you'd like to know?"
)

// categoryRules maps message keywords to a policy category for the degraded
// policy search. The first rule with a keyword present in the message wins.
var categoryRules = []struct {
	keywords []string
	category string
}{
	{[]string{"leave", "vacation", "sick"}, policy.CategoryLeaves},
	{[]string{"travel", "business trip"}, policy.CategoryTravel},
	{[]string{"salary", "compensation", "pay"}, policy.CategoryCompensation},
	{[]string{"conduct", "rules", "dress", "hours"}, policy.CategoryConduct},
}

// Fallback produces deterministic responses when the language-model provider
// fails. Its methods never return an error; store failures degrade to the
// fixed canned messages.
type Fallback struct {
	policies PolicyStore
	balances BalanceStore
	logger   *slog.Logger
}

func NewFallback(policies PolicyStore, balances BalanceStore, logger *slog.Logger) *Fallback {
	return &Fallback{
		policies: policies,
		balances: balances,
		logger:   logger,
	}
}

func matchCategory(message string) (string, bool) {
	lowered := strings.ToLower(message)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.category, true
			}
		}
	}
	return "", false
}

func excerpt(content string) string {
	if len(content) <= policyExcerptLength {
		return content
	}
	return cutOnRuneBoundary(content, policyExcerptLength) + "..."
}

// PolicyResponse answers a policy-path message from stored policy records.
func (f *Fallback) PolicyResponse(message string) Response {
	category, ok := matchCategory(message)
	if !ok {
		return Response{Response: policyNotFoundMessage, Type: CategoryPolicy}
	}

	records, err := f.policies.FindByCategory(category)
	if err != nil {
		f.logger.Warn("fallback: policy lookup failed", "error", err, "category", category)
		return Response{Response: policyNotFoundMessage, Type: CategoryPolicy}
	}
	if len(records) == 0 {
		return Response{Response: policyNotFoundMessage, Type: CategoryPolicy}
	}
	if len(records) > policyMatchLimit {
		records = records[:policyMatchLimit]
	}

	var b strings.Builder
	b.WriteString("Here is what I found in our company policies:\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "\n%s\n%s\n", rec.Title, excerpt(rec.Content))
	}
	b.WriteString("\nFor the full policy text, please check the Policy Center.")

	return Response{Response: b.String(), Type: CategoryPolicy}
}

// GeneralResponse answers a general-path message from a small rule table.
func (f *Fallback) GeneralResponse(message, employeeID string) Response {
	lowered := strings.ToLower(message)

	if strings.Contains(lowered, "vacation") && strings.Contains(lowered, "days") {
		balance, err := f.balances.FindByEmployee(employeeID)
		if err != nil {
			f.logger.Warn("fallback: vacation balance lookup failed", "error", err, "employee_id", employeeID)
		} else if balance != nil {
			return Response{
				Response: fmt.Sprintf("You currently have %d vacation days remaining out of your annual %d-day entitlement.",
					balance.RemainingDays, balance.TotalDays),
				Type: CategoryQuery,
			}
		}
	}

	if strings.Contains(lowered, "sick leave") && strings.Contains(lowered, "request") {
		return Response{Response: sickLeaveGuidance, Type: CategoryAction}
	}

	return Response{Response: genericFallbackMessage, Type: CategoryQuery}
}
