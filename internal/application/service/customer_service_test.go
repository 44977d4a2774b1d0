package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/pkg/apperror"
	"github.com/compasshq/erp-api/pkg/pagination"
)

type fakeInteractionRepo struct {
	interactions map[uuid.UUID][]entity.CustomerInteraction
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{interactions: make(map[uuid.UUID][]entity.CustomerInteraction)}
}

func (r *fakeInteractionRepo) Create(ctx context.Context, interaction *entity.CustomerInteraction) error {
	if interaction.ID == uuid.Nil {
		interaction.ID = uuid.New()
	}
	r.interactions[interaction.CustomerID] = append(r.interactions[interaction.CustomerID], *interaction)
	return nil
}

func (r *fakeInteractionRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.CustomerInteraction, int64, error) {
	list := r.interactions[customerID]
	return list, int64(len(list)), nil
}

type fakeSegmentRepo struct {
	segments map[uuid.UUID]entity.CustomerSegment
	members  map[uuid.UUID][]uuid.UUID
}

func newFakeSegmentRepo() *fakeSegmentRepo {
	return &fakeSegmentRepo{
		segments: make(map[uuid.UUID]entity.CustomerSegment),
		members:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *fakeSegmentRepo) Create(ctx context.Context, segment *entity.CustomerSegment) error {
	if segment.ID == uuid.Nil {
		segment.ID = uuid.New()
	}
	r.segments[segment.ID] = *segment
	return nil
}

func (r *fakeSegmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerSegment, error) {
	s, ok := r.segments[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSegmentRepo) List(ctx context.Context) ([]entity.CustomerSegment, error) {
	var out []entity.CustomerSegment
	for _, s := range r.segments {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSegmentRepo) AddMember(ctx context.Context, segmentID, customerID uuid.UUID) error {
	for _, id := range r.members[segmentID] {
		if id == customerID {
			return nil
		}
	}
	r.members[segmentID] = append(r.members[segmentID], customerID)
	return nil
}

func (r *fakeSegmentRepo) ListCustomers(ctx context.Context, segmentID uuid.UUID, params *pagination.PaginationParams) ([]entity.Customer, int64, error) {
	ids := r.members[segmentID]
	return make([]entity.Customer, len(ids)), int64(len(ids)), nil
}

type customerFixture struct {
	svc      *CustomerService
	segments *fakeSegmentRepo
}

func newCustomerFixture(t *testing.T) *customerFixture {
	t.Helper()
	segments := newFakeSegmentRepo()
	svc := NewCustomerService(
		&fakeCustomerRepo{customers: make(map[uuid.UUID]entity.Customer)},
		newFakeInteractionRepo(),
		segments,
	)
	return &customerFixture{svc: svc, segments: segments}
}

func TestCreateCustomer_Defaults(t *testing.T) {
	f := newCustomerFixture(t)

	customer, err := f.svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name: "Jane Cooper",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.CustomerTypeIndividual, customer.Type)
	assert.Equal(t, enum.CustomerStatusActive, customer.Status)
	assert.NotEqual(t, uuid.Nil, customer.ID)
}

func TestCreateCustomer_Validation(t *testing.T) {
	f := newCustomerFixture(t)

	_, err := f.svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:   "",
		Type:   enum.CustomerType("alien"),
		Status: enum.CustomerStatus("asleep"),
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Len(t, appErr.Errors, 3)
}

func TestUpdateCustomer(t *testing.T) {
	f := newCustomerFixture(t)
	customer, err := f.svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "Acme"})
	require.NoError(t, err)

	name := "Acme Holdings"
	businessType := enum.CustomerTypeBusiness
	updated, err := f.svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{
		ID:   customer.ID,
		Name: &name,
		Type: &businessType,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", updated.Name)
	assert.Equal(t, enum.CustomerTypeBusiness, updated.Type)

	badType := enum.CustomerType("alien")
	_, err = f.svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{
		ID:   customer.ID,
		Type: &badType,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	_, err = f.svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{ID: uuid.New(), Name: &name})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	f := newCustomerFixture(t)

	err := f.svc.DeleteCustomer(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCreateInteraction(t *testing.T) {
	f := newCustomerFixture(t)
	customer, err := f.svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "Acme"})
	require.NoError(t, err)

	interaction, err := f.svc.CreateInteraction(context.Background(), &CreateInteractionInput{
		CustomerID: customer.ID,
		Type:       enum.InteractionTypePhone,
		Summary:    "Intro call",
	})
	require.NoError(t, err)
	assert.False(t, interaction.InteractionDate.IsZero(), "interaction date should default to now")

	when := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	interaction, err = f.svc.CreateInteraction(context.Background(), &CreateInteractionInput{
		CustomerID:      customer.ID,
		Type:            enum.InteractionTypeMeeting,
		Summary:         "Quarterly review",
		InteractionDate: when,
	})
	require.NoError(t, err)
	assert.True(t, interaction.InteractionDate.Equal(when))

	_, err = f.svc.CreateInteraction(context.Background(), &CreateInteractionInput{
		CustomerID: customer.ID,
		Type:       enum.InteractionType("telepathy"),
		Summary:    "",
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Len(t, appErr.Errors, 2)

	_, err = f.svc.CreateInteraction(context.Background(), &CreateInteractionInput{
		CustomerID: uuid.New(),
		Type:       enum.InteractionTypeNote,
		Summary:    "Orphan",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestAssignToSegment(t *testing.T) {
	f := newCustomerFixture(t)
	customer, err := f.svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "Acme"})
	require.NoError(t, err)

	segment, err := f.svc.CreateSegment(context.Background(), &CreateSegmentInput{Name: "VIP"})
	require.NoError(t, err)

	// Assigning twice is a no-op, not an error
	require.NoError(t, f.svc.AssignToSegment(context.Background(), segment.ID, customer.ID))
	require.NoError(t, f.svc.AssignToSegment(context.Background(), segment.ID, customer.ID))
	assert.Len(t, f.segments.members[segment.ID], 1)

	err = f.svc.AssignToSegment(context.Background(), uuid.New(), customer.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	err = f.svc.AssignToSegment(context.Background(), segment.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCreateSegment_RequiresName(t *testing.T) {
	f := newCustomerFixture(t)

	_, err := f.svc.CreateSegment(context.Background(), &CreateSegmentInput{Name: ""})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}
