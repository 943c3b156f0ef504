package assistant_test

import (
	"strings"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-assistant/internal/assistant"
	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
)

var _ = Describe("Prompts", func() {
	employee := &employeeDatamodel.Employee{
		ID:         "EMP001",
		Name:       "Basel",
		Grade:      "D",
		Department: "Technology",
		Title:      "Senior Software Engineer",
	}

	Describe("BuildPolicyPrompt", func() {
		It("embeds the persona, profile, status and knowledge", func() {
			prompt := assistant.BuildPolicyPrompt(employee, "Vacation Days: 28/30 remaining", "=== Annual Leave Policy (Leaves) ===", false, 0)

			Expect(prompt).To(ContainSubstring("AI HR Assistant for 1957 Ventures"))
			Expect(prompt).To(ContainSubstring("- Name: Basel"))
			Expect(prompt).To(ContainSubstring("- Grade: D"))
			Expect(prompt).To(ContainSubstring("Current HR Status:\nVacation Days: 28/30 remaining"))
			Expect(prompt).To(ContainSubstring("Company Policy Knowledge:\n=== Annual Leave Policy (Leaves) ==="))
			Expect(prompt).To(ContainSubstring("Grade D employees get 30 vacation days per year"))
		})

		It("omits the status section when empty", func() {
			prompt := assistant.BuildPolicyPrompt(employee, "", "knowledge", false, 0)

			Expect(prompt).NotTo(ContainSubstring("Current HR Status"))
		})

		It("instructs Arabic responses for Arabic messages", func() {
			english := assistant.BuildPolicyPrompt(employee, "", "knowledge", false, 0)
			arabic := assistant.BuildPolicyPrompt(employee, "", "knowledge", true, 0)

			Expect(english).To(ContainSubstring("Respond primarily in English"))
			Expect(arabic).To(ContainSubstring("Respond primarily in Arabic"))
		})

		It("trims only the knowledge block when over budget", func() {
			knowledge := strings.Repeat("policy text ", 2000)
			limit := 4096

			prompt := assistant.BuildPolicyPrompt(employee, "Vacation Days: 28/30 remaining", knowledge, false, limit)

			Expect(len(prompt)).To(BeNumerically("<=", limit))
			Expect(prompt).To(ContainSubstring("[policy knowledge truncated]"))
			Expect(prompt).To(ContainSubstring("- Name: Basel"))
			Expect(prompt).To(ContainSubstring("Vacation Days: 28/30 remaining"))
			Expect(prompt).To(ContainSubstring("Grade D employees get 30 vacation days per year"))
		})

		It("keeps the trimmed prompt valid UTF-8 with Arabic knowledge", func() {
			knowledge := strings.Repeat("سياسة الإجازات ", 2000)

			for limit := 4096; limit < 4100; limit++ {
				prompt := assistant.BuildPolicyPrompt(employee, "", knowledge, true, limit)

				Expect(len(prompt)).To(BeNumerically("<=", limit))
				Expect(utf8.ValidString(prompt)).To(BeTrue(), "limit %d", limit)
			}
		})

		It("leaves prompts under budget untouched", func() {
			small := assistant.BuildPolicyPrompt(employee, "", "short knowledge", false, 1<<20)

			Expect(small).NotTo(ContainSubstring("truncated"))
		})
	})

	Describe("BuildGeneralPrompt", func() {
		It("is the shorter prompt without policy knowledge", func() {
			prompt := assistant.BuildGeneralPrompt(employee, "Vacation Days: 28/30 remaining")

			Expect(prompt).To(ContainSubstring("AI HR Assistant for 1957 Ventures"))
			Expect(prompt).To(ContainSubstring("Current HR Status:\nVacation Days: 28/30 remaining"))
			Expect(prompt).NotTo(ContainSubstring("Company Policy Knowledge"))
		})
	})
})
