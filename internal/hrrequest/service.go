package hrrequest

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/hr-assistant/internal"
	requestDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/hrrequest"
	"github.com/frahmantamala/hr-assistant/internal/core/events"
)

// Repository defines the data access methods for HR requests.
type Repository interface {
	Create(request *requestDatamodel.HRRequest) error
	GetByID(id int64) (*requestDatamodel.HRRequest, error)
	FindRecentByEmployee(employeeID string, limit int) ([]*requestDatamodel.HRRequest, error)
	ListByEmployee(employeeID string, limit, offset int) ([]*requestDatamodel.HRRequest, error)
	ListPending(limit, offset int) ([]*requestDatamodel.HRRequest, error)
	Update(request *requestDatamodel.HRRequest) error
}

// BalanceUpdater is implemented by the employee module; approving a vacation
// leave consumes days so that remaining always equals total minus used.
type BalanceUpdater interface {
	ConsumeVacationDays(employeeID string, days int) error
}

type Service struct {
	repo     Repository
	balances BalanceUpdater
	bus      *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, balances BalanceUpdater, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		balances: balances,
		bus:      bus,
		logger:   logger,
	}
}

func (s *Service) Submit(employeeID string, dto SubmitRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("request validation failed", "error", err, "employee_id", employeeID)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	now := time.Now()
	model := &requestDatamodel.HRRequest{
		EmployeeID:      employeeID,
		Type:            dto.Type,
		Status:          StatusPendingApproval,
		StartDate:       dto.StartDate,
		EndDate:         dto.EndDate,
		Days:            dto.Days,
		Reason:          dto.Reason,
		Destination:     dto.Destination,
		DepartureDate:   dto.DepartureDate,
		ReturnDate:      dto.ReturnDate,
		BusinessPurpose: dto.BusinessPurpose,
		Amount:          dto.Amount,
		Category:        dto.Category,
		Description:     dto.Description,
		SubmittedDate:   now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create hr request", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to submit request", err)
	}

	s.publish(events.NewRequestSubmittedEvent(model.ID, employeeID, model.Type))

	s.logger.Info("hr request submitted",
		"request_id", model.ID,
		"employee_id", employeeID,
		"type", model.Type)

	return FromDataModel(model), nil
}

func (s *Service) GetByID(id int64, employeeID string, isManager bool) (*Request, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get hr request", "error", err, "request_id", id)
		return nil, internal.ErrRequestNotFound
	}
	if model == nil {
		return nil, internal.ErrRequestNotFound
	}

	if !isManager && model.EmployeeID != employeeID {
		s.logger.Warn("unauthorized access to hr request",
			"request_id", id, "employee_id", employeeID, "owner_id", model.EmployeeID)
		return nil, internal.ErrUnauthorizedAcces
	}

	return FromDataModel(model), nil
}

func (s *Service) ListForEmployee(employeeID string, limit, offset int) ([]*Request, error) {
	models, err := s.repo.ListByEmployee(employeeID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list hr requests", "error", err, "employee_id", employeeID)
		return nil, err
	}
	return FromDataModelSlice(models), nil
}

func (s *Service) ListPending(limit, offset int) ([]*Request, error) {
	models, err := s.repo.ListPending(limit, offset)
	if err != nil {
		s.logger.Error("failed to list pending hr requests", "error", err)
		return nil, err
	}
	return FromDataModelSlice(models), nil
}

func (s *Service) Approve(id int64, approverID string) (*Request, error) {
	model, err := s.repo.GetByID(id)
	if err != nil || model == nil {
		return nil, internal.ErrRequestNotFound
	}

	request := FromDataModel(model)
	if !request.CanTransitionTo(StatusApproved) {
		s.logger.Warn("invalid status transition",
			"request_id", id, "from", request.Status, "to", StatusApproved)
		return nil, internal.ErrInvalidStatus
	}

	request.Approve(approverID)
	if err := s.repo.Update(ToDataModel(request)); err != nil {
		s.logger.Error("failed to update hr request", "error", err, "request_id", id)
		return nil, internal.NewInternalError("failed to approve request", err)
	}

	if request.Type == TypeVacationLeave && request.Days != nil {
		if err := s.balances.ConsumeVacationDays(request.EmployeeID, *request.Days); err != nil {
			// request stays approved; balance reconciliation is retried by HR ops
			s.logger.Error("failed to consume vacation days",
				"error", err, "request_id", id, "employee_id", request.EmployeeID)
		}
	}

	s.publish(events.NewRequestDecidedEvent(id, request.EmployeeID, StatusApproved, approverID))

	s.logger.Info("hr request approved", "request_id", id, "approved_by", approverID)
	return request, nil
}

func (s *Service) Reject(id int64, rejecterID string, dto RejectRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	model, err := s.repo.GetByID(id)
	if err != nil || model == nil {
		return nil, internal.ErrRequestNotFound
	}

	request := FromDataModel(model)
	if !request.CanTransitionTo(StatusRejected) {
		s.logger.Warn("invalid status transition",
			"request_id", id, "from", request.Status, "to", StatusRejected)
		return nil, internal.ErrInvalidStatus
	}

	request.Reject(rejecterID, dto.Reason)
	if err := s.repo.Update(ToDataModel(request)); err != nil {
		s.logger.Error("failed to update hr request", "error", err, "request_id", id)
		return nil, internal.NewInternalError("failed to reject request", err)
	}

	s.publish(events.NewRequestDecidedEvent(id, request.EmployeeID, StatusRejected, rejecterID))

	s.logger.Info("hr request rejected", "request_id", id, "rejected_by", rejecterID)
	return request, nil
}

func (s *Service) publish(event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
