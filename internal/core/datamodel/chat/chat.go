package chat

import "time"

// ChatMessage is one completed turn: the employee message and the assistant
// response. Rows are append-only; history reads order by created_at.
type ChatMessage struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	EmployeeID   string    `json:"employee_id" gorm:"column:employee_id;index;not null"`
	SessionID    string    `json:"session_id" gorm:"column:session_id;index;not null"`
	Message      string    `json:"message" gorm:"column:message;not null"`
	Response     string    `json:"response" gorm:"column:response;not null"`
	ResponseType string    `json:"response_type" gorm:"column:response_type;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
