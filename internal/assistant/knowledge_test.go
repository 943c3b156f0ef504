package assistant_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-assistant/internal/assistant"
	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
	"github.com/frahmantamala/hr-assistant/internal/policy"
)

var _ = Describe("KnowledgeAggregator", func() {
	var (
		policies   *mockPolicyStore
		aggregator *assistant.KnowledgeAggregator
	)

	BeforeEach(func() {
		policies = newMockPolicyStore()
		aggregator = assistant.NewKnowledgeAggregator(policies, testLogger())
	})

	It("renders each policy as a delimited block", func() {
		policies.policies = []*policyDatamodel.Policy{
			{
				Title:       "Annual Leave Policy",
				Category:    policy.CategoryLeaves,
				Content:     "30 working days per year for Grade D.",
				Tags:        "vacation,annual",
				LastUpdated: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			},
		}

		text := aggregator.Build()

		Expect(text).To(ContainSubstring("=== Annual Leave Policy (Leaves) ==="))
		Expect(text).To(ContainSubstring("ENGLISH CONTENT:\n30 working days per year for Grade D."))
		Expect(text).To(ContainSubstring("Tags: vacation, annual"))
		Expect(text).To(ContainSubstring("Last Updated: 2024-12-01"))
		Expect(text).NotTo(ContainSubstring("ARABIC CONTENT"))
	})

	It("includes the Arabic section only when present", func() {
		policies.policies = []*policyDatamodel.Policy{
			{
				Title:     "Sick Leave Policy",
				Category:  policy.CategoryLeaves,
				Content:   "First 30 days full salary.",
				ContentAr: "أول 30 يوماً براتب كامل.",
			},
		}

		text := aggregator.Build()

		Expect(text).To(ContainSubstring("ARABIC CONTENT:\nأول 30 يوماً براتب كامل."))
	})

	It("produces identical text for identical store contents", func() {
		policies.policies = []*policyDatamodel.Policy{
			{Title: "A", Category: policy.CategoryLeaves, Content: "a"},
			{Title: "B", Category: policy.CategoryTravel, Content: "b"},
		}

		first := aggregator.Build()
		second := aggregator.Build()

		Expect(second).To(Equal(first))
	})

	It("separates blocks with a blank line", func() {
		policies.policies = []*policyDatamodel.Policy{
			{Title: "A", Category: policy.CategoryLeaves, Content: "a"},
			{Title: "B", Category: policy.CategoryTravel, Content: "b"},
		}

		Expect(aggregator.Build()).To(ContainSubstring("\n\n=== B (Travel) ==="))
	})

	It("returns an empty string when the store fails", func() {
		policies.findError = errors.New("connection refused")

		Expect(aggregator.Build()).To(BeEmpty())
	})
})
