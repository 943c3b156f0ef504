package auth

import (
	"golang.org/x/crypto/bcrypt"

	employeeDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/employee"
)

// EmployeeRepository is the slice of the employee store the auth flow needs.
type EmployeeRepository interface {
	FindByID(id string) (*employeeDatamodel.Employee, error)
	GetPasswordForEmail(email string) (passwordHash string, employeeID string, err error)
}

type Service struct {
	employees      EmployeeRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
}

func NewService(employees EmployeeRepository, tokenGen TokenGenerator, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		employees:      employees,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

// Authenticate validates credentials and returns tokens.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	storedHash, employeeID, err := s.employees.GetPasswordForEmail(dto.Email)
	if err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	emp, err := s.employees.FindByID(employeeID)
	if err != nil || emp == nil {
		return AuthTokens{}, ErrInvalidCredentials
	}
	if !emp.IsActive {
		return AuthTokens{}, ErrEmployeeInactive
	}

	return s.issueTokens(emp.ID, emp.Email)
}

// RefreshTokens validates a refresh token and rotates the token pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	emp, err := s.employees.FindByID(claims.EmployeeID)
	if err != nil || emp == nil {
		return AuthTokens{}, ErrInvalidToken
	}
	if !emp.IsActive {
		return AuthTokens{}, ErrEmployeeInactive
	}

	return s.issueTokens(emp.ID, emp.Email)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// GetEmployee loads the context view of an authenticated employee.
func (s *Service) GetEmployee(employeeID string) (*Employee, error) {
	model, err := s.employees.FindByID(employeeID)
	if err != nil {
		return nil, err
	}
	if model == nil || !model.IsActive {
		return nil, ErrInvalidToken
	}
	return &Employee{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		IsManager: model.IsManager,
	}, nil
}

func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Service) issueTokens(employeeID, email string) (AuthTokens, error) {
	accessToken, err := s.tokenGenerator.GenerateAccessToken(employeeID, email)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(employeeID, email)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
