package postgres

import (
	"github.com/frahmantamala/hr-assistant/internal/assistant"
	chatDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/chat"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) assistant.ChatStore {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(message *chatDatamodel.ChatMessage) error {
	return r.db.Create(message).Error
}

// RecentByEmployee returns the newest turns first.
func (r *ChatRepository) RecentByEmployee(employeeID string, limit int) ([]*chatDatamodel.ChatMessage, error) {
	var messages []*chatDatamodel.ChatMessage
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// BySession returns a full conversation in chronological order.
func (r *ChatRepository) BySession(sessionID string) ([]*chatDatamodel.ChatMessage, error) {
	var messages []*chatDatamodel.ChatMessage
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
