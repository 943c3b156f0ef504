package assistant_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-assistant/internal"
	"github.com/frahmantamala/hr-assistant/internal/assistant"
	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
	"github.com/frahmantamala/hr-assistant/internal/core/events"
	"github.com/frahmantamala/hr-assistant/internal/policy"
)

var _ = Describe("AssistantService", func() {
	var (
		employees *mockEmployeeStore
		balances  *mockBalanceStore
		requests  *mockRequestStore
		salaries  *mockSalaryStore
		policies  *mockPolicyStore
		chats     *mockChatStore
		provider  *mockProvider
		service   *assistant.Service
	)

	cfg := internal.AssistantConfig{
		RequestTimeout:     time.Second,
		PolicyMaxTokens:    800,
		GeneralMaxTokens:   500,
		PolicyTemperature:  0.3,
		GeneralTemperature: 0.7,
		HistoryLimit:       50,
	}

	newService := func() *assistant.Service {
		log := testLogger()
		return assistant.NewService(
			employees,
			chats,
			assistant.NewContextBuilder(balances, requests, salaries, log),
			assistant.NewKnowledgeAggregator(policies, log),
			assistant.NewFallback(policies, balances, log),
			provider,
			cfg,
			events.NewEventBus(log),
			log,
		)
	}

	BeforeEach(func() {
		employees = newMockEmployeeStore()
		balances = newMockBalanceStore()
		requests = newMockRequestStore()
		salaries = newMockSalaryStore()
		policies = newMockPolicyStore()
		chats = newMockChatStore()
		provider = &mockProvider{response: "Here is your answer."}

		employees.employees["EMP001"] = &employeeDatamodel.Employee{
			ID:         "EMP001",
			Name:       "Basel",
			Grade:      "D",
			Department: "Technology",
			Title:      "Senior Software Engineer",
		}
		balances.balances["EMP001"] = &employeeDatamodel.VacationBalance{
			TotalDays:     30,
			UsedDays:      2,
			RemainingDays: 28,
		}

		service = newService()
	})

	Describe("Chat", func() {
		Context("with a healthy provider", func() {
			It("answers a general question and labels it by content", func() {
				resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message: "How many vacation days do I have?",
				})

				Expect(resp.Response).To(Equal("Here is your answer."))
				Expect(resp.Type).To(Equal(assistant.CategoryQuery))
				Expect(provider.calls).To(Equal(1))
				Expect(provider.lastRequest.MaxTokens).To(Equal(500))
			})

			It("labels request messages as action", func() {
				resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message: "I want to request sick leave",
				})

				Expect(resp.Type).To(Equal(assistant.CategoryAction))
			})

			It("uses the policy prompt settings for policy questions", func() {
				resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message: "What is the vacation policy?",
				})

				Expect(resp.Type).To(Equal(assistant.CategoryPolicy))
				Expect(provider.lastRequest.MaxTokens).To(Equal(800))
				Expect(provider.lastRequest.Temperature).To(Equal(float32(0.3)))
				Expect(provider.lastRequest.SystemPrompt).To(ContainSubstring("Company Policy Knowledge"))
			})

			It("labels every policy-path answer as policy", func() {
				for _, message := range []string{
					"What is my annual leave entitlement?",
					"Is there a regulation on working hours?",
					"ما هي سياسة الإجازات؟",
				} {
					resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
						Message: message,
					})

					Expect(resp.Type).To(Equal(assistant.CategoryPolicy), "message %q", message)
				}
			})

			It("mints a session id when none is given", func() {
				resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message: "hello",
				})

				Expect(resp.SessionID).NotTo(BeEmpty())
			})

			It("keeps the caller's session id", func() {
				resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message:   "hello",
					SessionID: "session-42",
				})

				Expect(resp.SessionID).To(Equal("session-42"))
			})

			It("persists the turn", func() {
				service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message:   "hello",
					SessionID: "session-42",
				})

				Expect(chats.created).To(HaveLen(1))
				Expect(chats.created[0].EmployeeID).To(Equal("EMP001"))
				Expect(chats.created[0].SessionID).To(Equal("session-42"))
				Expect(chats.created[0].Message).To(Equal("hello"))
				Expect(chats.created[0].Response).To(Equal("Here is your answer."))
			})
		})

		Context("with a failing provider", func() {
			BeforeEach(func() {
				provider.err = errors.New("rate limited")
			})

			It("answers policy questions from stored policies", func() {
				policies.policies = []*policyDatamodel.Policy{
					{Title: "Annual Leave Policy", Category: policy.CategoryLeaves, Content: "30 days."},
				}

				resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message: "What is the vacation policy?",
				})

				Expect(resp.Type).To(Equal(assistant.CategoryPolicy))
				Expect(resp.Response).To(ContainSubstring("Annual Leave Policy"))
			})

			It("reports the literal balance numbers on the general path", func() {
				resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message: "How many vacation days do I have?",
				})

				Expect(resp.Response).To(ContainSubstring("28"))
				Expect(resp.Response).To(ContainSubstring("30"))
			})

			It("still persists the degraded turn", func() {
				service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message: "hello",
				})

				Expect(chats.created).To(HaveLen(1))
			})

			It("never returns an empty response", func() {
				policies.findError = errors.New("store down too")
				balances.findError = errors.New("store down too")

				resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message: "What is the vacation policy?",
				})

				Expect(resp.Response).NotTo(BeEmpty())
				Expect(resp.Type).To(Equal(assistant.CategoryPolicy))
			})
		})

		Context("with an unknown employee", func() {
			It("apologizes without calling the provider or persisting", func() {
				resp := service.Chat(context.Background(), "EMP404", assistant.ChatMessageDTO{
					Message: "hello",
				})

				Expect(resp.Type).To(Equal(assistant.CategoryError))
				Expect(resp.Response).To(ContainSubstring("couldn't find your employee information"))
				Expect(provider.calls).To(BeZero())
				Expect(chats.created).To(BeEmpty())
			})

			It("treats an employee store failure the same way", func() {
				employees.findError = errors.New("connection refused")

				resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
					Message: "hello",
				})

				Expect(resp.Type).To(Equal(assistant.CategoryError))
				Expect(provider.calls).To(BeZero())
			})
		})

		It("does not fail when persisting the turn fails", func() {
			chats.createError = errors.New("disk full")

			resp := service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{
				Message: "hello",
			})

			Expect(resp.Response).To(Equal("Here is your answer."))
		})
	})

	Describe("History", func() {
		It("returns persisted turns oldest first", func() {
			service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{Message: "first"})
			service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{Message: "second"})

			history, err := service.History("EMP001")

			Expect(err).NotTo(HaveOccurred())
			Expect(history.Total).To(Equal(2))
			Expect(history.Messages[0].Message).To(Equal("first"))
			Expect(history.Messages[1].Message).To(Equal("second"))
		})
	})

	Describe("SessionHistory", func() {
		It("returns only the caller's turns for the session", func() {
			employees.employees["EMP002"] = &employeeDatamodel.Employee{ID: "EMP002", Name: "Sarah"}

			service.Chat(context.Background(), "EMP001", assistant.ChatMessageDTO{Message: "mine", SessionID: "s1"})
			service.Chat(context.Background(), "EMP002", assistant.ChatMessageDTO{Message: "theirs", SessionID: "s1"})

			history, err := service.SessionHistory("EMP001", "s1")

			Expect(err).NotTo(HaveOccurred())
			Expect(history.Total).To(Equal(1))
			Expect(history.Messages[0].Message).To(Equal("mine"))
		})
	})
})
