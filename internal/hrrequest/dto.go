package hrrequest

import (
	"errors"
	"time"

	"github.com/frahmantamala/hr-assistant/internal/core/common/validation"
)

// SubmitRequestDTO carries one of the three request variants; Type selects
// which field group is validated.
type SubmitRequestDTO struct {
	Type string `json:"type" validate:"required"`

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
}

const dateLayout = "2006-01-02"

func (dto SubmitRequestDTO) Validate() error {
	switch dto.Type {
	case TypeVacationLeave:
		return dto.validateVacationLeave()
	case TypeBusinessTrip:
		return dto.validateBusinessTrip()
	case TypeExpenseReimbursement:
		return dto.validateExpenseReimbursement()
	case "":
		return errors.New("request type is required")
	default:
		return errors.New("unknown request type: " + dto.Type)
	}
}

func (dto SubmitRequestDTO) validateVacationLeave() error {
	if dto.StartDate == nil || dto.EndDate == nil {
		return errors.New("start date and end date are required for vacation leave")
	}
	start, err := time.Parse(dateLayout, *dto.StartDate)
	if err != nil {
		return errors.New("start date must be formatted as YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, *dto.EndDate)
	if err != nil {
		return errors.New("end date must be formatted as YYYY-MM-DD")
	}
	if end.Before(start) {
		return errors.New("end date cannot be before start date")
	}
	if dto.Days == nil || *dto.Days <= 0 {
		return errors.New("days must be greater than 0")
	}
	return nil
}

func (dto SubmitRequestDTO) validateBusinessTrip() error {
	if dto.Destination == nil || *dto.Destination == "" {
		return errors.New("destination is required for business trip")
	}
	if dto.DepartureDate == nil || dto.ReturnDate == nil {
		return errors.New("departure date and return date are required for business trip")
	}
	departure, err := time.Parse(dateLayout, *dto.DepartureDate)
	if err != nil {
		return errors.New("departure date must be formatted as YYYY-MM-DD")
	}
	ret, err := time.Parse(dateLayout, *dto.ReturnDate)
	if err != nil {
		return errors.New("return date must be formatted as YYYY-MM-DD")
	}
	if ret.Before(departure) {
		return errors.New("return date cannot be before departure date")
	}
	if dto.BusinessPurpose == nil || *dto.BusinessPurpose == "" {
		return errors.New("business purpose is required for business trip")
	}
	return nil
}

func (dto SubmitRequestDTO) validateExpenseReimbursement() error {
	if dto.Amount == nil {
		return errors.New("amount is required for expense reimbursement")
	}
	if err := validation.ValidateReimbursementAmount(*dto.Amount); err != nil {
		return err
	}
	if dto.Category == nil || *dto.Category == "" {
		return errors.New("category is required for expense reimbursement")
	}
	if dto.Description == nil {
		return errors.New("description is required for expense reimbursement")
	}
	if err := validation.ValidateReimbursementDescription(*dto.Description); err != nil {
		return err
	}
	return nil
}

// RejectRequestDTO carries the manager's rejection reason.
type RejectRequestDTO struct {
	Reason string `json:"reason" validate:"required"`
}

func (dto RejectRequestDTO) Validate() error {
	if dto.Reason == "" {
		return errors.New("reason is required when rejecting a request")
	}
	return nil
}
