package policy

import (
	"log/slog"

	"github.com/frahmantamala/hr-assistant/internal"
	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
)

// DefaultFetchLimit bounds full-corpus reads; the company maintains a few
// dozen policies, so 100 is generous.
const DefaultFetchLimit = 100

type Repository interface {
	FindAll(limit int) ([]*policyDatamodel.Policy, error)
	FindByCategory(category string) ([]*policyDatamodel.Policy, error)
	GetByID(id int64) (*policyDatamodel.Policy, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListPolicies(category string) ([]*Policy, error) {
	var (
		models []*policyDatamodel.Policy
		err    error
	)

	if category != "" {
		models, err = s.repo.FindByCategory(category)
	} else {
		models, err = s.repo.FindAll(DefaultFetchLimit)
	}
	if err != nil {
		s.logger.Error("failed to list policies", "error", err, "category", category)
		return nil, err
	}

	return FromDataModelSlice(models), nil
}

func (s *Service) GetByID(id int64) (*Policy, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get policy", "error", err, "policy_id", id)
		return nil, err
	}
	if model == nil {
		return nil, internal.ErrPolicyNotFound
	}
	return FromDataModel(model), nil
}
