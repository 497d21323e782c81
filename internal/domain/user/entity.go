package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Spa admin - full access
	RoleManager  Role = "manager"  // Can manage bookings and staff
	RoleEmployee Role = "employee" // Staff member
	RoleClient   Role = "client"   // Booking customer
)

type User struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	EmailVerified   bool
	IsActive        bool
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin checks if user is a spa admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// IsStaff checks if user has an employee record
func (u *User) IsStaff() bool {
	return u.Role == RoleEmployee || u.IsManager()
}

// CanManageCatalog checks if user can edit categories and services
func (u *User) CanManageCatalog() bool {
	return u.IsManager()
}
