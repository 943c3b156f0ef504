package cmd

import (
	"fmt"
	"log"
	"time"

	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
	requestDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/hrrequest"
	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
	"github.com/frahmantamala/hr-assistant/internal/hrrequest"
	"github.com/frahmantamala/hr-assistant/internal/policy"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"chat_messages", "hr_requests", "salary_payments", "vacation_balances", "policies", "employees"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		var employeeCount int64
		if err := db.Model(&employeeDatamodel.Employee{}).Count(&employeeCount).Error; err != nil {
			log.Fatalf("failed to check employees: %v", err)
		}
		if employeeCount > 0 {
			fmt.Println("Database already seeded; use --clear to reseed")
			return
		}

		if err := seedAll(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}

		fmt.Println("Database initialized with sample data")
	},
}

func seedAll(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	employees := []employeeDatamodel.Employee{
		{
			ID:           "EMP001",
			Name:         "Basel",
			Email:        "basel@1957ventures.com",
			PasswordHash: string(hash),
			Title:        "Senior Software Engineer",
			Department:   "Technology",
			Grade:        "D",
			Manager:      "Sarah Johnson",
			BasicSalary:  15000.0,
			TotalSalary:  19500.0,
			IsActive:     true,
			StartDate:    "2022-03-15",
		},
		{
			ID:           "EMP002",
			Name:         "Sarah Johnson",
			Email:        "sarah.johnson@1957ventures.com",
			PasswordHash: string(hash),
			Title:        "Engineering Manager",
			Department:   "Technology",
			Grade:        "C",
			BasicSalary:  22000.0,
			TotalSalary:  28600.0,
			IsManager:    true,
			IsActive:     true,
			StartDate:    "2019-06-01",
		},
	}
	if err := db.Create(&employees).Error; err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}

	balance := employeeDatamodel.VacationBalance{
		EmployeeID:    "EMP001",
		Year:          2025,
		TotalDays:     30,
		UsedDays:      2,
		RemainingDays: 28,
	}
	if err := db.Create(&balance).Error; err != nil {
		return fmt.Errorf("seed vacation balance: %w", err)
	}

	payment := employeeDatamodel.SalaryPayment{
		EmployeeID:  "EMP001",
		Amount:      19500.0,
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      "Paid",
		Description: "Monthly Salary",
	}
	if err := db.Create(&payment).Error; err != nil {
		return fmt.Errorf("seed salary payment: %w", err)
	}

	if err := seedRequests(db); err != nil {
		return err
	}
	return seedPolicies(db)
}

func seedRequests(db *gorm.DB) error {
	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }
	floatPtr := func(f float64) *float64 { return &f }
	approvedAt := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)

	requests := []requestDatamodel.HRRequest{
		{
			EmployeeID:      "EMP001",
			Type:            hrrequest.TypeBusinessTrip,
			Status:          hrrequest.StatusPendingApproval,
			Destination:     strPtr("Dubai"),
			DepartureDate:   strPtr("2025-01-20"),
			ReturnDate:      strPtr("2025-01-25"),
			BusinessPurpose: strPtr("Client meeting and project review"),
			SubmittedDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			EmployeeID:    "EMP001",
			Type:          hrrequest.TypeExpenseReimbursement,
			Status:        hrrequest.StatusUnderReview,
			Amount:        floatPtr(450.0),
			Category:      strPtr("meals"),
			Description:   strPtr("Client dinner during business trip"),
			SubmittedDate: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			EmployeeID:    "EMP001",
			Type:          hrrequest.TypeVacationLeave,
			Status:        hrrequest.StatusApproved,
			StartDate:     strPtr("2024-12-20"),
			EndDate:       strPtr("2024-12-30"),
			Days:          intPtr(8),
			Reason:        strPtr("Family vacation"),
			SubmittedDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			ApprovedDate:  &approvedAt,
			ApprovedBy:    strPtr("Sarah Johnson"),
		},
	}

	if err := db.Create(&requests).Error; err != nil {
		return fmt.Errorf("seed hr requests: %w", err)
	}
	return nil
}

func seedPolicies(db *gorm.DB) error {
	policies := []policyDatamodel.Policy{
		{
			Title:    "Annual Leave Policy",
			Category: policy.CategoryLeaves,
			Content: `Annual Leave entitlements vary by grade:

**Grade D and above:** 30 working days per year
**Grade C and below:** 25 working days per year
**External projects:** 22 working days per year

**Key Rules:**
- Minimum 10 consecutive days must be taken once per year
- Maximum 10 days can be carried forward to next year
- Weekends and public holidays during leave are not counted
- All leave must be approved in advance by authorized person
- Working during leave is prohibited - all system access suspended`,
			Tags:        policy.JoinTags([]string{"vacation", "annual", "leave", "entitlement"}),
			LastUpdated: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:    "Sick Leave Policy",
			Category: policy.CategoryLeaves,
			Content: `Sick leave entitlements as per Saudi Labor Law:

**First 30 days:** Full salary
**Next 60 days:** Three quarters salary
**Next 30 days:** No salary

**Requirements:**
- Must notify immediate supervisor on first day
- Medical certificate required from approved medical bodies
- Certificates from outside Saudi Arabia must be attested by Saudi Embassy
- No prior approval needed`,
			Tags:        policy.JoinTags([]string{"sick", "medical", "leave", "certificate"}),
			LastUpdated: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:    "Business Travel Policy",
			Category: policy.CategoryTravel,
			Content: `Business travel entitlements by grade:

**Grade A:** First class tickets, 5-star hotels, Junior Suite
**Grade B:** Business class tickets, 5-star hotels, Regular room
**Grade C:** Economy class tickets, 5-star hotels, Regular room
**Grade D:** Economy class tickets, 4-star hotels, Regular room

**Daily Allowances:**
Inside Kingdom: 200-400 SAR based on grade
Outside Kingdom: 300-600 SAR based on grade

**Accommodation:** Up to 14 days hotel stay provided
**Transportation:** Company provides airport pickup/dropoff`,
			Tags:        policy.JoinTags([]string{"travel", "business", "allowance", "accommodation"}),
			LastUpdated: time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:    "Salary and Compensation",
			Category: policy.CategoryCompensation,
			Content: `Salary structure includes:

**Basic Components:**
- Basic salary (determined by grade and experience)
- Housing allowance (25% of basic salary)
- Transportation allowance (varies by grade)

**Additional Benefits:**
- Ramadan bonus (1 month basic salary)
- End of year bonus (1 month basic salary)
- Medical coverage for employee and family
- Children education allowance (Grades C and above)

**Payment:** Monthly on 15th of each month in Saudi Riyals`,
			Tags:        policy.JoinTags([]string{"salary", "compensation", "benefits", "allowance"}),
			LastUpdated: time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:    "Work Rules and Conduct",
			Category: policy.CategoryConduct,
			Content: `Working hours and conduct:

**Working Hours:**
- 5 days per week (Sunday to Thursday)
- 8 hours per day, 40 hours per week
- Official hours: 7:30/8:30 AM to 4:30/5:30 PM

**Dress Code:**
- Professional attire required
- Saudi national dress acceptable for men
- Conservative dress for women with hijab
- Low-heeled shoes recommended

**Remote Work:**
- Maximum 2 days per month allowed
- Cannot be start/end of week
- Manager approval required`,
			Tags:        policy.JoinTags([]string{"conduct", "dress", "hours", "remote"}),
			LastUpdated: time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	if err := db.Create(&policies).Error; err != nil {
		return fmt.Errorf("seed policies: %w", err)
	}
	return nil
}
