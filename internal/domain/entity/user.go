package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/compasshq/erp-api/internal/domain/enum"
)

// User represents a user in the system
type User struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Username   string          `gorm:"size:255;unique;not null" json:"username"`
	Email      string          `gorm:"size:255;unique;not null" json:"email"`
	Password   string          `gorm:"size:255" json:"-"`
	FullName   *string         `gorm:"size:255" json:"full_name,omitempty"`
	Role       enum.UserRole   `gorm:"size:20;default:'staff';index" json:"role"`
	Status     enum.UserStatus `gorm:"size:20;default:'active'" json:"status"`
	Provider   string          `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string         `gorm:"size:255" json:"-"`
	LastLogin  *time.Time      `json:"last_login,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Activities []UserActivity `gorm:"foreignKey:UserID" json:"-"`
	Settings   *UserSettings  `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the user is allowed to authenticate
func (u *User) IsActive() bool {
	return u.Status == enum.UserStatusActive
}

// HasRole checks if the user holds one of the given roles
func (u *User) HasRole(roles ...enum.UserRole) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// UserActivity records an auditable action performed by a user
type UserActivity struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Action    string         `gorm:"size:100;not null" json:"action"`
	IPAddress *string        `gorm:"size:45" json:"ip_address,omitempty"`
	Details   map[string]any `gorm:"serializer:json" json:"details,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new activity row
func (a *UserActivity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserActivity model
func (UserActivity) TableName() string {
	return "user_activities"
}
