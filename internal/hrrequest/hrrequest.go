package hrrequest

import (
	"time"

	requestDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/hrrequest"
)

const (
	TypeVacationLeave        = "vacation_leave"
	TypeBusinessTrip         = "business_trip"
	TypeExpenseReimbursement = "expense_reimbursement"
)

const (
	StatusPendingApproval = "pending_approval"
	StatusUnderReview     = "under_review"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
)

var typeLabels = map[string]string{
	TypeVacationLeave:        "Vacation Leave",
	TypeBusinessTrip:         "Business Trip",
	TypeExpenseReimbursement: "Expense Reimbursement",
}

var statusLabels = map[string]string{
	StatusPendingApproval: "Pending Approval",
	StatusUnderReview:     "Under Review",
	StatusApproved:        "Approved",
	StatusRejected:        "Rejected",
}

// TypeLabel returns the display name for a request type, falling back to the
// raw value for unknown types.
func TypeLabel(requestType string) string {
	if label, ok := typeLabels[requestType]; ok {
		return label
	}
	return requestType
}

func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func IsValidType(requestType string) bool {
	_, ok := typeLabels[requestType]
	return ok
}

// Request is the domain view of an HR request.
type Request struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Status     string `json:"status"`

	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Days      *int    `json:"days,omitempty"`
	Reason    *string `json:"reason,omitempty"`

	Destination     *string `json:"destination,omitempty"`
	DepartureDate   *string `json:"departure_date,omitempty"`
	ReturnDate      *string `json:"return_date,omitempty"`
	BusinessPurpose *string `json:"business_purpose,omitempty"`

	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`

	SubmittedDate time.Time  `json:"submitted_date"`
	ApprovedDate  *time.Time `json:"approved_date,omitempty"`
	ApprovedBy    *string    `json:"approved_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Status transitions only move forward; a decided request is immutable.
var allowedTransitions = map[string][]string{
	StatusPendingApproval: {StatusUnderReview, StatusApproved, StatusRejected},
	StatusUnderReview:     {StatusApproved, StatusRejected},
}

func (r *Request) CanTransitionTo(status string) bool {
	for _, next := range allowedTransitions[r.Status] {
		if next == status {
			return true
		}
	}
	return false
}

func (r *Request) IsDecided() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

func (r *Request) Approve(approvedBy string) {
	now := time.Now()
	r.Status = StatusApproved
	r.ApprovedDate = &now
	r.ApprovedBy = &approvedBy
	r.UpdatedAt = now
}

func (r *Request) Reject(rejectedBy, reason string) {
	now := time.Now()
	r.Status = StatusRejected
	r.ApprovedDate = &now
	r.ApprovedBy = &rejectedBy
	if reason != "" {
		r.Reason = &reason
	}
	r.UpdatedAt = now
}

func ToDataModel(r *Request) *requestDatamodel.HRRequest {
	return &requestDatamodel.HRRequest{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Type:            r.Type,
		Status:          r.Status,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Days:            r.Days,
		Reason:          r.Reason,
		Destination:     r.Destination,
		DepartureDate:   r.DepartureDate,
		ReturnDate:      r.ReturnDate,
		BusinessPurpose: r.BusinessPurpose,
		Amount:          r.Amount,
		Category:        r.Category,
		Description:     r.Description,
		SubmittedDate:   r.SubmittedDate,
		ApprovedDate:    r.ApprovedDate,
		ApprovedBy:      r.ApprovedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromDataModel(m *requestDatamodel.HRRequest) *Request {
	return &Request{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		Type:            m.Type,
		Status:          m.Status,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		Days:            m.Days,
		Reason:          m.Reason,
		Destination:     m.Destination,
		DepartureDate:   m.DepartureDate,
		ReturnDate:      m.ReturnDate,
		BusinessPurpose: m.BusinessPurpose,
		Amount:          m.Amount,
		Category:        m.Category,
		Description:     m.Description,
		SubmittedDate:   m.SubmittedDate,
		ApprovedDate:    m.ApprovedDate,
		ApprovedBy:      m.ApprovedBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromDataModelSlice(models []*requestDatamodel.HRRequest) []*Request {
	result := make([]*Request, len(models))
	for i, m := range models {
		result[i] = FromDataModel(m)
	}
	return result
}
