package employee

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		CompanyID:         companyID,
		EmployeeCode:      req.EmployeeCode,
		FullName:          req.FullName,
		Email:             req.Email,
		MonthlySalary:     req.MonthlySalary,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		EpfNumber:         req.EpfNumber,
		SocsoNumber:       req.SocsoNumber,
		EmploymentStatus:  employee.EmploymentStatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}

	return result, nil
}

// Update applies only the fields present in the request.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.MonthlySalary != nil {
		emp.MonthlySalary = *req.MonthlySalary
	}
	if req.BankName != nil {
		emp.BankName = *req.BankName
	}
	if req.BankAccountNumber != nil {
		emp.BankAccountNumber = *req.BankAccountNumber
	}
	if req.EpfNumber != nil {
		emp.EpfNumber = *req.EpfNumber
	}
	if req.SocsoNumber != nil {
		emp.SocsoNumber = *req.SocsoNumber
	}
	if req.EmploymentStatus != nil {
		emp.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepo.Delete(ctx, id, companyID)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                emp.ID,
		CompanyID:         emp.CompanyID,
		EmployeeCode:      emp.EmployeeCode,
		FullName:          emp.FullName,
		Email:             emp.Email,
		MonthlySalary:     emp.MonthlySalary,
		BankName:          emp.BankName,
		BankAccountNumber: emp.BankAccountNumber,
		EpfNumber:         emp.EpfNumber,
		SocsoNumber:       emp.SocsoNumber,
		EmploymentStatus:  string(emp.EmploymentStatus),
	}
}
