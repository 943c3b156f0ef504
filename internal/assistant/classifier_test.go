package assistant_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-assistant/internal/assistant"
)

var _ = Describe("Classifier", func() {
	Describe("IsPolicyQuestion", func() {
		It("routes explicit policy questions to the policy path", func() {
			Expect(assistant.IsPolicyQuestion("What is the vacation policy?")).To(BeTrue())
			Expect(assistant.IsPolicyQuestion("Show me the company policies")).To(BeTrue())
			Expect(assistant.IsPolicyQuestion("What is my leave entitlement?")).To(BeTrue())
		})

		It("routes Arabic policy questions to the policy path", func() {
			Expect(assistant.IsPolicyQuestion("ما هي سياسة الإجازات؟")).To(BeTrue())
		})

		It("keeps action and data questions on the general path", func() {
			Expect(assistant.IsPolicyQuestion("I want to request sick leave")).To(BeFalse())
			Expect(assistant.IsPolicyQuestion("How many vacation days do I have?")).To(BeFalse())
			Expect(assistant.IsPolicyQuestion("When is my next salary payment?")).To(BeFalse())
		})

		It("matches case-insensitively", func() {
			Expect(assistant.IsPolicyQuestion("WHAT IS THE VACATION POLICY?")).To(BeTrue())
		})

		It("matches keywords inside larger words", func() {
			// substring containment, not tokenization
			Expect(assistant.IsPolicyQuestion("tell me about policyholders")).To(BeTrue())
		})
	})

	Describe("Categorize", func() {
		It("labels request-like messages as action", func() {
			Expect(assistant.Categorize("I want to request sick leave")).To(Equal(assistant.CategoryAction))
			Expect(assistant.Categorize("How do I submit an expense?")).To(Equal(assistant.CategoryAction))
			Expect(assistant.Categorize("Can I apply for remote work?")).To(Equal(assistant.CategoryAction))
		})

		It("labels policy-like messages as policy", func() {
			Expect(assistant.Categorize("What does the dress code rule say?")).To(Equal(assistant.CategoryPolicy))
			Expect(assistant.Categorize("Explain the sick leave procedure")).To(Equal(assistant.CategoryPolicy))
		})

		It("prefers action when both keyword sets match", func() {
			Expect(assistant.Categorize("How do I request leave under the policy?")).To(Equal(assistant.CategoryAction))
		})

		It("falls back to query", func() {
			Expect(assistant.Categorize("How many vacation days do I have?")).To(Equal(assistant.CategoryQuery))
		})
	})

	Describe("ContainsArabic", func() {
		It("detects Arabic letters", func() {
			Expect(assistant.ContainsArabic("ما هي سياسة الإجازات؟")).To(BeTrue())
			Expect(assistant.ContainsArabic("mixed سياسة text")).To(BeTrue())
		})

		It("returns false for Latin-only text", func() {
			Expect(assistant.ContainsArabic("What is the vacation policy?")).To(BeFalse())
		})
	})
})
