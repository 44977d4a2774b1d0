package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/internal/domain/repository"
	"github.com/compasshq/erp-api/pkg/apperror"
	"github.com/compasshq/erp-api/pkg/pagination"
	"github.com/compasshq/erp-api/pkg/utils"
)

// UserService handles user management operations
type UserService struct {
	userRepo     repository.UserRepository
	activityRepo repository.UserActivityRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepository,
	activityRepo repository.UserActivityRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// ListUsersInput represents the input for listing users
type ListUsersInput struct {
	Page    int
	PerPage int
	Search  string
}

// ListUsersOutput represents the output for listing users
type ListUsersOutput struct {
	Users      []entity.User
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// ListUsers returns a paginated list of users
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	params := &pagination.PaginationParams{
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params, input.Search)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / params.PerPage
	if int(total)%params.PerPage > 0 {
		totalPages++
	}

	return &ListUsersOutput{
		Users:      users,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// UpdateUserInput represents the input for an admin user update
type UpdateUserInput struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Password string
	FullName *string
	Role     *enum.UserRole
	Status   *enum.UserStatus
}

// UpdateUser updates a user's account, role and status
func (s *UserService) UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Username != "" && input.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, apperror.NewConflictError("Username already taken")
		}
		user.Username = input.Username
	}

	if input.Email != "" && input.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, apperror.NewConflictError("Email already registered")
		}
		user.Email = input.Email
	}

	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if input.FullName != nil {
		user.FullName = input.FullName
	}

	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, apperror.NewBadRequestError("Invalid role")
		}
		user.Role = *input.Role
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.NewBadRequestError("Invalid status")
		}
		user.Status = *input.Status
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser soft deletes a user
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	return s.userRepo.Delete(ctx, userID)
}

// ListActivitiesOutput represents the output for listing user activities
type ListActivitiesOutput struct {
	Activities []entity.UserActivity
	Total      int64
	Page       int
	PerPage    int
}

// ListUserActivities returns the audit log for one user, newest first
func (s *UserService) ListUserActivities(ctx context.Context, userID uuid.UUID, page, perPage int) (*ListActivitiesOutput, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	activities, total, err := s.activityRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	return &ListActivitiesOutput{
		Activities: activities,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
	}, nil
}
