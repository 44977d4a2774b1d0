package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/pkg/pagination"
)

// CustomerFilterParams contains filtering parameters for customer queries
type CustomerFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.CustomerType
	Status     *enum.CustomerStatus
}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CustomerFilterParams) ([]entity.Customer, int64, error)
	// ListWithCursor returns customers using cursor-based pagination
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error)
}

// InteractionRepository defines the interface for customer interaction operations
type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.CustomerInteraction) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.CustomerInteraction, int64, error)
}

// SegmentRepository defines the interface for customer segment operations
type SegmentRepository interface {
	Create(ctx context.Context, segment *entity.CustomerSegment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerSegment, error)
	List(ctx context.Context) ([]entity.CustomerSegment, error)
	// AddMember assigns a customer to a segment; assigning twice is a no-op
	AddMember(ctx context.Context, segmentID, customerID uuid.UUID) error
	ListCustomers(ctx context.Context, segmentID uuid.UUID, params *pagination.PaginationParams) ([]entity.Customer, int64, error)
}
