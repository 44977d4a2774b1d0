package enum

// UserRole represents the single role assigned to a user
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleStaff   UserRole = "staff"
)

func (r UserRole) String() string {
	return string(r)
}

// Valid reports whether the role is one of the known user roles
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleStaff:
		return true
	}
	return false
}

// UserStatus represents the account status of a user
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

func (s UserStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known user statuses
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}
