package assistant_test

import (
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-assistant/internal/assistant"
	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
	requestDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/hrrequest"
	"github.com/frahmantamala/hr-assistant/internal/hrrequest"
)

var _ = Describe("ContextBuilder", func() {
	var (
		balances *mockBalanceStore
		requests *mockRequestStore
		salaries *mockSalaryStore
		builder  *assistant.ContextBuilder
	)

	BeforeEach(func() {
		balances = newMockBalanceStore()
		requests = newMockRequestStore()
		salaries = newMockSalaryStore()
		builder = assistant.NewContextBuilder(balances, requests, salaries, testLogger())
	})

	It("renders all three sections when data exists", func() {
		balances.balances["EMP001"] = &employeeDatamodel.VacationBalance{
			EmployeeID:    "EMP001",
			TotalDays:     30,
			UsedDays:      2,
			RemainingDays: 28,
		}
		requests.requests["EMP001"] = []*requestDatamodel.HRRequest{
			{Type: hrrequest.TypeBusinessTrip, Status: hrrequest.StatusPendingApproval},
			{Type: hrrequest.TypeVacationLeave, Status: hrrequest.StatusApproved},
		}
		salaries.payments["EMP001"] = &employeeDatamodel.SalaryPayment{
			Amount: 19500.0,
			Date:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}

		text := builder.Build("EMP001")

		Expect(text).To(ContainSubstring("Vacation Days: 28/30 remaining"))
		Expect(text).To(ContainSubstring("Recent Requests:"))
		Expect(text).To(ContainSubstring("- Business Trip: Pending Approval"))
		Expect(text).To(ContainSubstring("- Vacation Leave: Approved"))
		Expect(text).To(ContainSubstring("Last Salary: 19500.00 SAR on 2025-01-01"))
	})

	It("surfaces the stored remaining days without recomputing", func() {
		// out-of-sync on purpose; readers must echo what is stored
		balances.balances["EMP001"] = &employeeDatamodel.VacationBalance{
			TotalDays:     30,
			UsedDays:      5,
			RemainingDays: 27,
		}

		Expect(builder.Build("EMP001")).To(ContainSubstring("Vacation Days: 27/30 remaining"))
	})

	It("returns an empty string for an employee with no data", func() {
		Expect(builder.Build("EMP404")).To(BeEmpty())
	})

	It("omits the requests section when the list is empty", func() {
		balances.balances["EMP001"] = &employeeDatamodel.VacationBalance{TotalDays: 30, RemainingDays: 30}

		text := builder.Build("EMP001")

		Expect(text).To(ContainSubstring("Vacation Days"))
		Expect(text).NotTo(ContainSubstring("Recent Requests"))
	})

	It("drops a section whose store fails and keeps the rest", func() {
		balances.findError = errors.New("connection refused")
		salaries.payments["EMP001"] = &employeeDatamodel.SalaryPayment{
			Amount: 19500.0,
			Date:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}

		text := builder.Build("EMP001")

		Expect(text).NotTo(ContainSubstring("Vacation Days"))
		Expect(text).To(ContainSubstring("Last Salary"))
	})

	It("caps recent requests at three", func() {
		requests.requests["EMP001"] = []*requestDatamodel.HRRequest{
			{Type: hrrequest.TypeVacationLeave, Status: hrrequest.StatusApproved},
			{Type: hrrequest.TypeBusinessTrip, Status: hrrequest.StatusApproved},
			{Type: hrrequest.TypeExpenseReimbursement, Status: hrrequest.StatusApproved},
			{Type: hrrequest.TypeVacationLeave, Status: hrrequest.StatusRejected},
		}

		text := builder.Build("EMP001")

		Expect(text).To(ContainSubstring("Recent Requests:"))
		Expect(strings.Split(text, "\n")).To(HaveLen(4)) // header plus three entries
	})
})
