package postgres

import (
	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
	"github.com/frahmantamala/hr-assistant/internal/policy"
	"gorm.io/gorm"
)

type PolicyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) policy.Repository {
	return &PolicyRepository{db: db}
}

// FindAll returns policies in insertion order; the knowledge aggregator
// relies on a stable order between calls, not on any particular sort.
func (r *PolicyRepository) FindAll(limit int) ([]*policyDatamodel.Policy, error) {
	var policies []*policyDatamodel.Policy
	err := r.db.Order("id ASC").Limit(limit).Find(&policies).Error
	return policies, err
}

func (r *PolicyRepository) FindByCategory(category string) ([]*policyDatamodel.Policy, error) {
	var policies []*policyDatamodel.Policy
	err := r.db.Where("category = ?", category).Order("id ASC").Find(&policies).Error
	return policies, err
}

func (r *PolicyRepository) GetByID(id int64) (*policyDatamodel.Policy, error) {
	var p policyDatamodel.Policy
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
