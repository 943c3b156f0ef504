package postgres

import (
	requestDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/hrrequest"
	"github.com/frahmantamala/hr-assistant/internal/hrrequest"
	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) hrrequest.Repository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(request *requestDatamodel.HRRequest) error {
	return r.db.Create(request).Error
}

func (r *RequestRepository) GetByID(id int64) (*requestDatamodel.HRRequest, error) {
	var request requestDatamodel.HRRequest
	err := r.db.Where("id = ?", id).First(&request).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// FindRecentByEmployee returns the most recently submitted requests first;
// the chat context builder reads the top three.
func (r *RequestRepository) FindRecentByEmployee(employeeID string, limit int) ([]*requestDatamodel.HRRequest, error) {
	var requests []*requestDatamodel.HRRequest
	err := r.db.Where("employee_id = ?", employeeID).
		Order("submitted_date DESC").
		Limit(limit).
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) ListByEmployee(employeeID string, limit, offset int) ([]*requestDatamodel.HRRequest, error) {
	var requests []*requestDatamodel.HRRequest
	err := r.db.Where("employee_id = ?", employeeID).
		Order("submitted_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) ListPending(limit, offset int) ([]*requestDatamodel.HRRequest, error) {
	var requests []*requestDatamodel.HRRequest
	err := r.db.Where("status IN ?", []string{hrrequest.StatusPendingApproval, hrrequest.StatusUnderReview}).
		Order("submitted_date ASC"). // FIFO for approvals
		Limit(limit).
		Offset(offset).
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) Update(request *requestDatamodel.HRRequest) error {
	return r.db.Save(request).Error
}
