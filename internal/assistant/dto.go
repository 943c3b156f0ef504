package assistant

import (
	"errors"
	"strings"
	"time"
)

const maxMessageLength = 2000

// ChatMessageDTO is the inbound chat payload. SessionID is optional; the
// service mints one for the first turn of a conversation.
type ChatMessageDTO struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

func (d *ChatMessageDTO) Validate() error {
	if strings.TrimSpace(d.Message) == "" {
		return errors.New("message is required")
	}
	if len(d.Message) > maxMessageLength {
		return errors.New("message exceeds maximum length")
	}
	return nil
}

// Response is the terminal value of every chat turn. Type is one of the
// response categories; the endpoint always returns a well-formed pair.
type Response struct {
	Response  string `json:"response"`
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// HistoryItemDTO is one persisted turn, oldest first in listings.
type HistoryItemDTO struct {
	ID           int64     `json:"id"`
	SessionID    string    `json:"session_id"`
	Message      string    `json:"message"`
	Response     string    `json:"response"`
	ResponseType string    `json:"response_type"`
	CreatedAt    time.Time `json:"created_at"`
}

type HistoryResponseDTO struct {
	Messages []HistoryItemDTO `json:"messages"`
	Total    int              `json:"total"`
}
