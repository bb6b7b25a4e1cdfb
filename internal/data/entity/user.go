package entity

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleOwner  UserRole = "owner"
	RoleRenter UserRole = "renter"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleRenter:
		return true
	}
	return false
}

type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended:
		return true
	}
	return false
}

// User is the identity record. Email and Phone are both optional but
// at least one must be present; PasswordHash may be empty while the
// account is pending in the phone flow.
type User struct {
	Base
	Role         UserRole   `db:"role"`
	Email        *string    `db:"email"`
	Phone        *string    `db:"phone"`
	PasswordHash string     `db:"password"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Status       UserStatus `db:"status"`
}

// EmailOrEmpty returns the email value for claim building.
func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

// PhoneOrEmpty returns the phone value for claim building.
func (u *User) PhoneOrEmpty() string {
	if u.Phone == nil {
		return ""
	}
	return *u.Phone
}
