package postgres_test

import (
	"testing"
	"time"

	"github.com/frahmantamala/hr-assistant/internal/assistant"
	assistantPostgres "github.com/frahmantamala/hr-assistant/internal/assistant/postgres"
	chatDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/chat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestChatPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Chat Postgres Suite")
}

// SQLiteChatMessage is a SQLite-compatible model for testing
type SQLiteChatMessage struct {
	ID           int64     `gorm:"primaryKey"`
	EmployeeID   string    `gorm:"column:employee_id;index;not null"`
	SessionID    string    `gorm:"column:session_id;index;not null"`
	Message      string    `gorm:"column:message;not null"`
	Response     string    `gorm:"column:response;not null"`
	ResponseType string    `gorm:"column:response_type;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (SQLiteChatMessage) TableName() string {
	return "chat_messages"
}

var _ = Describe("Chat PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo assistant.ChatStore
	)

	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	seed := func(employeeID, sessionID, message string, offsetMinutes int) {
		turn := &chatDatamodel.ChatMessage{
			EmployeeID:   employeeID,
			SessionID:    sessionID,
			Message:      message,
			Response:     "response to " + message,
			ResponseType: "query",
			CreatedAt:    base.Add(time.Duration(offsetMinutes) * time.Minute),
		}
		Expect(repo.Create(turn)).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteChatMessage{})
		Expect(err).NotTo(HaveOccurred())

		repo = assistantPostgres.NewChatRepository(db)
	})

	Describe("Create", func() {
		It("should persist a turn and assign an id", func() {
			turn := &chatDatamodel.ChatMessage{
				EmployeeID:   "EMP001",
				SessionID:    "session-1",
				Message:      "How many vacation days do I have?",
				Response:     "You have 28 days remaining.",
				ResponseType: "query",
			}

			err := repo.Create(turn)
			Expect(err).NotTo(HaveOccurred())
			Expect(turn.ID).To(BeNumerically(">", 0))
		})
	})

	Describe("RecentByEmployee", func() {
		It("should return the newest turns first", func() {
			seed("EMP001", "session-1", "first", 0)
			seed("EMP001", "session-1", "second", 5)
			seed("EMP001", "session-2", "third", 10)

			messages, err := repo.RecentByEmployee("EMP001", 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(3))
			Expect(messages[0].Message).To(Equal("third"))
			Expect(messages[2].Message).To(Equal("first"))
		})

		It("should honor the limit", func() {
			seed("EMP001", "session-1", "first", 0)
			seed("EMP001", "session-1", "second", 5)

			messages, err := repo.RecentByEmployee("EMP001", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(1))
			Expect(messages[0].Message).To(Equal("second"))
		})

		It("should not leak other employees' turns", func() {
			seed("EMP001", "session-1", "mine", 0)
			seed("EMP002", "session-9", "theirs", 5)

			messages, err := repo.RecentByEmployee("EMP001", 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(1))
			Expect(messages[0].Message).To(Equal("mine"))
		})
	})

	Describe("BySession", func() {
		It("should return the conversation in chronological order", func() {
			seed("EMP001", "session-1", "second", 5)
			seed("EMP001", "session-1", "first", 0)
			seed("EMP001", "session-2", "other session", 10)

			messages, err := repo.BySession("session-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(2))
			Expect(messages[0].Message).To(Equal("first"))
			Expect(messages[1].Message).To(Equal("second"))
		})

		It("should return empty slice for an unknown session", func() {
			messages, err := repo.BySession("nope")
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(BeEmpty())
		})
	})
})
