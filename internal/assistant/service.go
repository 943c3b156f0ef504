package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/hr-assistant/internal"
	chatDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/chat"
	"github.com/frahmantamala/hr-assistant/internal/core/events"
	"github.com/frahmantamala/hr-assistant/internal/llm"
)

const employeeNotFoundMessage = "Sorry, I couldn't find your employee information. Please contact HR support."

const defaultHistoryLimit = 50

// Service orchestrates one chat turn: classify the message, assemble the
// prompt, call the provider once, and degrade through the fallback chain on
// failure. Chat never surfaces an error to the caller.
type Service struct {
	employees EmployeeStore
	chats     ChatStore
	context   *ContextBuilder
	knowledge *KnowledgeAggregator
	fallback  *Fallback
	provider  llm.Provider
	cfg       internal.AssistantConfig
	bus       *events.EventBus
	logger    *slog.Logger
}

func NewService(
	employees EmployeeStore,
	chats ChatStore,
	contextBuilder *ContextBuilder,
	knowledge *KnowledgeAggregator,
	fallback *Fallback,
	provider llm.Provider,
	cfg internal.AssistantConfig,
	bus *events.EventBus,
	logger *slog.Logger,
) *Service {
	return &Service{
		employees: employees,
		chats:     chats,
		context:   contextBuilder,
		knowledge: knowledge,
		fallback:  fallback,
		provider:  provider,
		cfg:       cfg,
		bus:       bus,
		logger:    logger,
	}
}

// Chat handles a single turn for the given employee. The returned Response is
// always well formed; provider and store failures degrade, they never
// propagate.
func (s *Service) Chat(ctx context.Context, employeeID string, dto ChatMessageDTO) Response {
	sessionID := dto.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	employee, err := s.employees.FindByID(employeeID)
	if err != nil {
		s.logger.Error("chat: employee lookup failed", "error", err, "employee_id", employeeID)
		return Response{Response: employeeNotFoundMessage, Type: CategoryError, SessionID: sessionID}
	}
	if employee == nil {
		s.logger.Warn("chat: unknown employee", "employee_id", employeeID)
		return Response{Response: employeeNotFoundMessage, Type: CategoryError, SessionID: sessionID}
	}

	statusContext := s.context.Build(employeeID)
	policyPath := IsPolicyQuestion(dto.Message)

	var req llm.CompletionRequest
	if policyPath {
		req = llm.CompletionRequest{
			SystemPrompt: BuildPolicyPrompt(employee, statusContext, s.knowledge.Build(), ContainsArabic(dto.Message), s.cfg.MaxPromptBytes),
			UserMessage:  dto.Message,
			SessionID:    sessionID,
			MaxTokens:    s.cfg.PolicyMaxTokens,
			Temperature:  s.cfg.PolicyTemperature,
		}
	} else {
		req = llm.CompletionRequest{
			SystemPrompt: BuildGeneralPrompt(employee, statusContext),
			UserMessage:  dto.Message,
			SessionID:    sessionID,
			MaxTokens:    s.cfg.GeneralMaxTokens,
			Temperature:  s.cfg.GeneralTemperature,
		}
	}

	response, degraded := s.complete(ctx, req, dto.Message, employeeID, policyPath)
	response.SessionID = sessionID

	s.record(employeeID, sessionID, dto.Message, response, degraded)

	return response
}

// complete performs the single provider attempt and, on any failure, answers
// from the fallback chain for the already-selected path.
func (s *Service) complete(ctx context.Context, req llm.CompletionRequest, message, employeeID string, policyPath bool) (Response, bool) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	text, err := s.provider.Complete(callCtx, req)
	if err == nil {
		if policyPath {
			return Response{Response: text, Type: CategoryPolicy}, false
		}
		return Response{Response: text, Type: Categorize(message)}, false
	}

	s.logger.Warn("chat: provider call failed, using fallback",
		"error", err,
		"employee_id", employeeID,
		"policy_path", policyPath,
	)

	if policyPath {
		return s.fallback.PolicyResponse(message), true
	}
	return s.fallback.GeneralResponse(message, employeeID), true
}

func (s *Service) record(employeeID, sessionID, message string, response Response, degraded bool) {
	turn := &chatDatamodel.ChatMessage{
		EmployeeID:   employeeID,
		SessionID:    sessionID,
		Message:      message,
		Response:     response.Response,
		ResponseType: response.Type,
		CreatedAt:    time.Now(),
	}
	if err := s.chats.Create(turn); err != nil {
		s.logger.Error("chat: failed to persist turn", "error", err, "employee_id", employeeID)
		return
	}

	s.publish(events.NewChatTurnRecordedEvent(employeeID, sessionID, response.Type, degraded))
}

// History returns the employee's most recent turns, oldest first.
func (s *Service) History(employeeID string) (*HistoryResponseDTO, error) {
	limit := s.cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	turns, err := s.chats.RecentByEmployee(employeeID, limit)
	if err != nil {
		s.logger.Error("chat: history lookup failed", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to load chat history", err)
	}

	// store returns newest first; listings read top-down chronologically
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return buildHistoryResponse(turns), nil
}

// SessionHistory returns every turn of one session, oldest first, for the
// requesting employee only.
func (s *Service) SessionHistory(employeeID, sessionID string) (*HistoryResponseDTO, error) {
	turns, err := s.chats.BySession(sessionID)
	if err != nil {
		s.logger.Error("chat: session lookup failed", "error", err, "session_id", sessionID)
		return nil, internal.NewInternalError("failed to load chat session", err)
	}

	owned := make([]*chatDatamodel.ChatMessage, 0, len(turns))
	for _, turn := range turns {
		if turn.EmployeeID == employeeID {
			owned = append(owned, turn)
		}
	}

	return buildHistoryResponse(owned), nil
}

func buildHistoryResponse(turns []*chatDatamodel.ChatMessage) *HistoryResponseDTO {
	items := make([]HistoryItemDTO, 0, len(turns))
	for _, turn := range turns {
		items = append(items, HistoryItemDTO{
			ID:           turn.ID,
			SessionID:    turn.SessionID,
			Message:      turn.Message,
			Response:     turn.Response,
			ResponseType: turn.ResponseType,
			CreatedAt:    turn.CreatedAt,
		})
	}
	return &HistoryResponseDTO{Messages: items, Total: len(items)}
}

func (s *Service) publish(event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
