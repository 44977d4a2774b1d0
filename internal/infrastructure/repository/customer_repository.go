package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/compasshq/erp-api/internal/domain/entity"
	domainRepo "github.com/compasshq/erp-api/internal/domain/repository"
	"github.com/compasshq/erp-api/pkg/pagination"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *domainRepo.CustomerFilterParams) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR company_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

// ListWithCursor returns customers using cursor-based pagination
// Fetches limit+1 items to detect if there are more results
func (r *customerRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error) {
	var customers []entity.Customer

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR company_name ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&customers).Error

	return customers, err
}

type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new customer interaction repository
func NewInteractionRepository(db *gorm.DB) domainRepo.InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *entity.CustomerInteraction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *interactionRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.CustomerInteraction, int64, error) {
	var interactions []entity.CustomerInteraction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CustomerInteraction{}).
		Where("customer_id = ?", customerID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("interaction_date DESC").
		Find(&interactions).Error

	return interactions, total, err
}

type segmentRepository struct {
	db *gorm.DB
}

// NewSegmentRepository creates a new customer segment repository
func NewSegmentRepository(db *gorm.DB) domainRepo.SegmentRepository {
	return &segmentRepository{db: db}
}

func (r *segmentRepository) Create(ctx context.Context, segment *entity.CustomerSegment) error {
	return r.db.WithContext(ctx).Create(segment).Error
}

func (r *segmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerSegment, error) {
	var segment entity.CustomerSegment
	err := r.db.WithContext(ctx).First(&segment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &segment, err
}

func (r *segmentRepository) List(ctx context.Context) ([]entity.CustomerSegment, error) {
	var segments []entity.CustomerSegment
	err := r.db.WithContext(ctx).Order("name ASC").Find(&segments).Error
	return segments, err
}

func (r *segmentRepository) AddMember(ctx context.Context, segmentID, customerID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO segment_members (id, segment_id, customer_id, created_at) VALUES (?, ?, ?, NOW()) ON CONFLICT DO NOTHING",
		uuid.New(), segmentID, customerID,
	).Error
}

func (r *segmentRepository) ListCustomers(ctx context.Context, segmentID uuid.UUID, params *pagination.PaginationParams) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Joins("JOIN segment_members sm ON sm.customer_id = customers.id").
		Where("sm.segment_id = ?", segmentID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("customers.name ASC").
		Find(&customers).Error

	return customers, total, err
}
