package hrrequest

import "time"

// HRRequest holds all request variants in one table; the type column decides
// which of the nullable type-specific fields are meaningful.
type HRRequest struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	EmployeeID string `json:"employee_id" gorm:"column:employee_id;index;not null"`
	Type       string `json:"type" gorm:"column:type;not null"`
	Status     string `json:"status" gorm:"column:status;default:pending_approval"`

	// vacation leave
	StartDate *string `json:"start_date,omitempty" gorm:"column:start_date"`
	EndDate   *string `json:"end_date,omitempty" gorm:"column:end_date"`
	Days      *int    `json:"days,omitempty" gorm:"column:days"`
	Reason    *string `json:"reason,omitempty" gorm:"column:reason"`

	// business trip
	Destination     *string `json:"destination,omitempty" gorm:"column:destination"`
	DepartureDate   *string `json:"departure_date,omitempty" gorm:"column:departure_date"`
	ReturnDate      *string `json:"return_date,omitempty" gorm:"column:return_date"`
	BusinessPurpose *string `json:"business_purpose,omitempty" gorm:"column:business_purpose"`

	// expense reimbursement
	Amount      *float64 `json:"amount,omitempty" gorm:"column:amount"`
	Category    *string  `json:"category,omitempty" gorm:"column:category"`
	Description *string  `json:"description,omitempty" gorm:"column:description"`

	SubmittedDate time.Time  `json:"submitted_date" gorm:"column:submitted_date;default:now()"`
	ApprovedDate  *time.Time `json:"approved_date,omitempty" gorm:"column:approved_date"`
	ApprovedBy    *string    `json:"approved_by,omitempty" gorm:"column:approved_by"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (HRRequest) TableName() string {
	return "hr_requests"
}
