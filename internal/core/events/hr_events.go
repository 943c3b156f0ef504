package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeRequestSubmitted = "hr_request.submitted"
	EventTypeRequestDecided   = "hr_request.decided"
	EventTypeChatTurnRecorded = "chat.turn_recorded"
)

type RequestSubmittedEvent struct {
	BaseEvent
	RequestID   int64  `json:"request_id"`
	EmployeeID  string `json:"employee_id"`
	RequestType string `json:"request_type"`
}

func NewRequestSubmittedEvent(requestID int64, employeeID, requestType string) *RequestSubmittedEvent {
	return &RequestSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRequestSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id":   requestID,
				"employee_id":  employeeID,
				"request_type": requestType,
			},
		},
		RequestID:   requestID,
		EmployeeID:  employeeID,
		RequestType: requestType,
	}
}

type RequestDecidedEvent struct {
	BaseEvent
	RequestID  int64  `json:"request_id"`
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	DecidedBy  string `json:"decided_by"`
}

func NewRequestDecidedEvent(requestID int64, employeeID, status, decidedBy string) *RequestDecidedEvent {
	return &RequestDecidedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRequestDecided,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id":  requestID,
				"employee_id": employeeID,
				"status":      status,
				"decided_by":  decidedBy,
			},
		},
		RequestID:  requestID,
		EmployeeID: employeeID,
		Status:     status,
		DecidedBy:  decidedBy,
	}
}

type ChatTurnRecordedEvent struct {
	BaseEvent
	EmployeeID   string `json:"employee_id"`
	SessionID    string `json:"session_id"`
	ResponseType string `json:"response_type"`
	Degraded     bool   `json:"degraded"`
}

// NewChatTurnRecordedEvent fires after each chat turn; degraded marks turns
// answered by the fallback chain instead of the provider.
func NewChatTurnRecordedEvent(employeeID, sessionID, responseType string, degraded bool) *ChatTurnRecordedEvent {
	return &ChatTurnRecordedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeChatTurnRecorded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id":   employeeID,
				"session_id":    sessionID,
				"response_type": responseType,
				"degraded":      degraded,
			},
		},
		EmployeeID:   employeeID,
		SessionID:    sessionID,
		ResponseType: responseType,
		Degraded:     degraded,
	}
}
