package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/internal/domain/repository"
	"github.com/compasshq/erp-api/pkg/apperror"
	"github.com/compasshq/erp-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo    repository.CustomerRepository
	interactionRepo repository.InteractionRepository
	segmentRepo     repository.SegmentRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	interactionRepo repository.InteractionRepository,
	segmentRepo repository.SegmentRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo:    customerRepo,
		interactionRepo: interactionRepo,
		segmentRepo:     segmentRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name          string
	Email         *string
	Phone         *string
	AddressLine1  *string
	AddressLine2  *string
	City          *string
	State         *string
	PostalCode    *string
	Country       *string
	CompanyName   *string
	Industry      *string
	AnnualRevenue *decimal.Decimal
	EmployeeCount *int
	Type          enum.CustomerType
	Status        enum.CustomerStatus
	Notes         *string
	CreatedBy     *uuid.UUID
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Type != "" && !input.Type.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "type", Message: "unknown customer type"})
	}
	if input.Status != "" && !input.Status.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "unknown customer status"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	customerType := input.Type
	if customerType == "" {
		customerType = enum.CustomerTypeIndividual
	}
	status := input.Status
	if status == "" {
		status = enum.CustomerStatusActive
	}

	customer := &entity.Customer{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		AddressLine1:  input.AddressLine1,
		AddressLine2:  input.AddressLine2,
		City:          input.City,
		State:         input.State,
		PostalCode:    input.PostalCode,
		Country:       input.Country,
		CompanyName:   input.CompanyName,
		Industry:      input.Industry,
		AnnualRevenue: input.AnnualRevenue,
		EmployeeCount: input.EmployeeCount,
		Type:          customerType,
		Status:        status,
		Notes:         input.Notes,
		CreatedBy:     input.CreatedBy,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with search and filtering
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListCustomersWithCursor lists customers using cursor-based pagination
func (s *CustomerService) ListCustomersWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Customer], error) {
	customers, err := s.customerRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(customers, params.Limit,
		func(c entity.Customer) string { return c.ID.String() },
		func(c entity.Customer) time.Time { return c.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID            uuid.UUID
	Name          *string
	Email         *string
	Phone         *string
	AddressLine1  *string
	AddressLine2  *string
	City          *string
	State         *string
	PostalCode    *string
	Country       *string
	CompanyName   *string
	Industry      *string
	AnnualRevenue *decimal.Decimal
	EmployeeCount *int
	Type          *enum.CustomerType
	Status        *enum.CustomerStatus
	Notes         *string
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.AddressLine1 != nil {
		customer.AddressLine1 = input.AddressLine1
	}
	if input.AddressLine2 != nil {
		customer.AddressLine2 = input.AddressLine2
	}
	if input.City != nil {
		customer.City = input.City
	}
	if input.State != nil {
		customer.State = input.State
	}
	if input.PostalCode != nil {
		customer.PostalCode = input.PostalCode
	}
	if input.Country != nil {
		customer.Country = input.Country
	}
	if input.CompanyName != nil {
		customer.CompanyName = input.CompanyName
	}
	if input.Industry != nil {
		customer.Industry = input.Industry
	}
	if input.AnnualRevenue != nil {
		customer.AnnualRevenue = input.AnnualRevenue
	}
	if input.EmployeeCount != nil {
		customer.EmployeeCount = input.EmployeeCount
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "type", Message: "unknown customer type"},
			})
		}
		customer.Type = *input.Type
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "status", Message: "unknown customer status"},
			})
		}
		customer.Status = *input.Status
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}

// CreateInteractionInput represents the create interaction input
type CreateInteractionInput struct {
	CustomerID       uuid.UUID
	Type             enum.InteractionType
	Summary          string
	Details          *string
	InteractionDate  time.Time
	NextFollowUpDate *time.Time
	CreatedBy        *uuid.UUID
}

// CreateInteraction logs a customer interaction. The interaction date
// defaults to now when omitted.
func (s *CustomerService) CreateInteraction(ctx context.Context, input *CreateInteractionInput) (*entity.CustomerInteraction, error) {
	var fieldErrors []apperror.FieldError
	if !input.Type.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "type", Message: "unknown interaction type"})
	}
	if input.Summary == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "summary", Message: "summary is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	interactionDate := input.InteractionDate
	if interactionDate.IsZero() {
		interactionDate = time.Now()
	}

	interaction := &entity.CustomerInteraction{
		CustomerID:       input.CustomerID,
		Type:             input.Type,
		Summary:          input.Summary,
		Details:          input.Details,
		InteractionDate:  interactionDate,
		NextFollowUpDate: input.NextFollowUpDate,
		CreatedBy:        input.CreatedBy,
	}

	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	return interaction, nil
}

// ListInteractions lists a customer's interactions, most recent first
func (s *CustomerService) ListInteractions(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.CustomerInteraction], error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	interactions, total, err := s.interactionRepo.ListByCustomer(ctx, customerID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(interactions, pag), nil
}

// CreateSegmentInput represents the create segment input
type CreateSegmentInput struct {
	Name        string
	Description *string
	CreatedBy   *uuid.UUID
}

// CreateSegment creates a new customer segment
func (s *CustomerService) CreateSegment(ctx context.Context, input *CreateSegmentInput) (*entity.CustomerSegment, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}

	segment := &entity.CustomerSegment{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.segmentRepo.Create(ctx, segment); err != nil {
		return nil, err
	}

	return segment, nil
}

// ListSegments lists all customer segments
func (s *CustomerService) ListSegments(ctx context.Context) ([]entity.CustomerSegment, error) {
	return s.segmentRepo.List(ctx)
}

// AssignToSegment adds a customer to a segment; repeating the assignment
// is a no-op
func (s *CustomerService) AssignToSegment(ctx context.Context, segmentID, customerID uuid.UUID) error {
	segment, err := s.segmentRepo.GetByID(ctx, segmentID)
	if err != nil {
		return err
	}
	if segment == nil {
		return apperror.NewNotFoundError("Segment")
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.segmentRepo.AddMember(ctx, segmentID, customerID)
}

// ListSegmentCustomers lists the customers belonging to a segment
func (s *CustomerService) ListSegmentCustomers(ctx context.Context, segmentID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Customer], error) {
	segment, err := s.segmentRepo.GetByID(ctx, segmentID)
	if err != nil {
		return nil, err
	}
	if segment == nil {
		return nil, apperror.NewNotFoundError("Segment")
	}

	customers, total, err := s.segmentRepo.ListCustomers(ctx, segmentID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}
