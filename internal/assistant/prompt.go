package assistant

import (
	"fmt"
	"strings"
	"unicode/utf8"

	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
)

const companyPersona = "You are an AI HR Assistant for 1957 Ventures company. You help employees with HR-related questions, policy information, and can assist with form submissions."

// entitlementRules is the static grade-based summary embedded in every
// policy-path prompt so the model can answer entitlement questions even when
// a policy document leaves the grade table implicit.
const entitlementRules = `Grade-Based Entitlements:
- Grade D employees get 30 vacation days per year
- Grade C and below get 25 vacation days per year
- Sick leave: First 30 days full salary, next 60 days 3/4 salary, next 30 days no salary
- Business travel allowances: 200-400 SAR domestic, 300-600 SAR international based on grade
- Remote work: Maximum 2 days per month, manager approval required
- Working hours: Sunday-Thursday, 8 hours/day, 7:30/8:30 AM to 4:30/5:30 PM`

const generalInstructions = `Instructions:
1. Answer HR questions accurately based on company policies
2. Be helpful and professional
3. For specific requests like "request sick leave", guide them to submit a formal request
4. Always reference actual data when available
5. Keep responses concise but informative
6. If you don't know something, be honest and suggest contacting HR directly`

const truncationMarker = "\n[policy knowledge truncated]"

// cutOnRuneBoundary truncates s to at most n bytes without splitting a rune;
// the Arabic policy content is multi-byte throughout.
func cutOnRuneBoundary(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func employeeProfileBlock(emp *employeeDatamodel.Employee) string {
	return fmt.Sprintf("Employee Information:\n- Name: %s\n- Grade: %s\n- Department: %s\n- Title: %s",
		emp.Name, emp.Grade, emp.Department, emp.Title)
}

// BuildPolicyPrompt assembles the policy-path system prompt. When
// maxPromptBytes is positive and the assembled prompt would exceed it, the
// knowledge block is trimmed from the tail and marked; all other sections
// are kept whole.
func BuildPolicyPrompt(emp *employeeDatamodel.Employee, statusContext, knowledge string, arabic bool, maxPromptBytes int) string {
	languageInstruction := "Respond primarily in English."
	if arabic {
		languageInstruction = "Respond primarily in Arabic, with English terms where they help clarity."
	}

	assemble := func(kb string) string {
		sections := []string{
			companyPersona,
			employeeProfileBlock(emp),
		}
		if statusContext != "" {
			sections = append(sections, "Current HR Status:\n"+statusContext)
		}
		sections = append(sections,
			"Company Policy Knowledge:\n"+kb,
			entitlementRules,
			generalInstructions,
			languageInstruction,
		)
		return strings.Join(sections, "\n\n")
	}

	prompt := assemble(knowledge)
	if maxPromptBytes <= 0 || len(prompt) <= maxPromptBytes {
		return prompt
	}

	overshoot := len(prompt) - maxPromptBytes + len(truncationMarker)
	if overshoot >= len(knowledge) {
		return assemble(truncationMarker)
	}
	return assemble(cutOnRuneBoundary(knowledge, len(knowledge)-overshoot) + truncationMarker)
}

// BuildGeneralPrompt assembles the shorter general-path system prompt.
func BuildGeneralPrompt(emp *employeeDatamodel.Employee, statusContext string) string {
	sections := []string{
		companyPersona,
		employeeProfileBlock(emp),
	}
	if statusContext != "" {
		sections = append(sections, "Current HR Status:\n"+statusContext)
	}
	sections = append(sections, generalInstructions)
	return strings.Join(sections, "\n\n")
}
