package assistant_test

import (
	"errors"
	"strings"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-assistant/internal/assistant"
	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
	"github.com/frahmantamala/hr-assistant/internal/policy"
)

var _ = Describe("Fallback", func() {
	var (
		policies *mockPolicyStore
		balances *mockBalanceStore
		fallback *assistant.Fallback
	)

	BeforeEach(func() {
		policies = newMockPolicyStore()
		balances = newMockBalanceStore()
		fallback = assistant.NewFallback(policies, balances, testLogger())
	})

	Describe("PolicyResponse", func() {
		BeforeEach(func() {
			policies.policies = []*policyDatamodel.Policy{
				{Title: "Annual Leave Policy", Category: policy.CategoryLeaves, Content: strings.Repeat("Annual leave rules. ", 20)},
				{Title: "Sick Leave Policy", Category: policy.CategoryLeaves, Content: "First 30 days full salary."},
				{Title: "Parental Leave Policy", Category: policy.CategoryLeaves, Content: "Ten working days."},
				{Title: "Business Travel Policy", Category: policy.CategoryTravel, Content: "Economy class for Grade D."},
			}
		})

		It("maps leave keywords to the Leaves category", func() {
			resp := fallback.PolicyResponse("what about sick leave rules")

			Expect(resp.Type).To(Equal(assistant.CategoryPolicy))
			Expect(resp.Response).To(ContainSubstring("Annual Leave Policy"))
			Expect(resp.Response).To(ContainSubstring("Sick Leave Policy"))
		})

		It("returns at most two matches", func() {
			resp := fallback.PolicyResponse("vacation rules please")

			Expect(resp.Response).NotTo(ContainSubstring("Parental Leave Policy"))
		})

		It("truncates long content to an excerpt", func() {
			resp := fallback.PolicyResponse("vacation rules please")

			Expect(resp.Response).To(ContainSubstring("..."))
			Expect(resp.Response).To(ContainSubstring("check the Policy Center"))
		})

		It("keeps Arabic excerpts valid UTF-8", func() {
			policies.policies = []*policyDatamodel.Policy{
				{Title: "Annual Leave Policy", Category: policy.CategoryLeaves, Content: strings.Repeat("سياسة الإجازات السنوية ", 30)},
			}

			resp := fallback.PolicyResponse("vacation rules please")

			Expect(resp.Response).To(ContainSubstring("..."))
			Expect(utf8.ValidString(resp.Response)).To(BeTrue())
		})

		It("maps travel keywords to the Travel category", func() {
			resp := fallback.PolicyResponse("business trip allowance")

			Expect(resp.Response).To(ContainSubstring("Business Travel Policy"))
		})

		It("returns the fixed message when no keyword matches", func() {
			resp := fallback.PolicyResponse("tell me about the cafeteria")

			Expect(resp.Type).To(Equal(assistant.CategoryPolicy))
			Expect(resp.Response).To(ContainSubstring("could not find policy information"))
		})

		It("returns the fixed message when the category has no records", func() {
			policies.policies = nil

			resp := fallback.PolicyResponse("vacation rules")

			Expect(resp.Response).To(ContainSubstring("could not find policy information"))
		})

		It("degrades to the fixed message when the store fails", func() {
			policies.findError = errors.New("connection refused")

			resp := fallback.PolicyResponse("vacation rules")

			Expect(resp.Type).To(Equal(assistant.CategoryPolicy))
			Expect(resp.Response).To(ContainSubstring("could not find policy information"))
		})
	})

	Describe("GeneralResponse", func() {
		It("reports the stored vacation balance numbers", func() {
			balances.balances["EMP001"] = &employeeDatamodel.VacationBalance{
				TotalDays:     30,
				UsedDays:      2,
				RemainingDays: 28,
			}

			resp := fallback.GeneralResponse("How many vacation days do I have?", "EMP001")

			Expect(resp.Type).To(Equal(assistant.CategoryQuery))
			Expect(resp.Response).To(ContainSubstring("28 vacation days remaining"))
			Expect(resp.Response).To(ContainSubstring("annual 30-day entitlement"))
		})

		It("guides sick leave requests to the form", func() {
			resp := fallback.GeneralResponse("I want to request sick leave", "EMP001")

			Expect(resp.Type).To(Equal(assistant.CategoryAction))
			Expect(resp.Response).To(Equal("I can help you request sick leave. You'll need to provide a medical certificate. Would you like me to guide you to the sick leave request form?"))
		})

		It("returns the generic prompt otherwise", func() {
			resp := fallback.GeneralResponse("hello there", "EMP001")

			Expect(resp.Type).To(Equal(assistant.CategoryQuery))
			Expect(resp.Response).To(ContainSubstring("Could you please be more specific"))
		})

		It("falls through to the generic prompt when the balance store fails", func() {
			balances.findError = errors.New("connection refused")

			resp := fallback.GeneralResponse("How many vacation days do I have?", "EMP001")

			Expect(resp.Response).To(ContainSubstring("Could you please be more specific"))
		})
	})
})
