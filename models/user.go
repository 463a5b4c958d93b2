// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package models

// Role identifies the account type carried in role_id.
type Role int64

const (
	RoleAdmin Role = 1
	RoleDonor Role = 2
	RoleNGO   Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleDonor:
		return "donor"
	case RoleNGO:
		return "ngo"
	default:
		return "unknown"
	}
}

// User is a donor or admin profile record as returned by User/getUser.php.
type User struct {
	UserID   APIInt `json:"user_id"`
	RoleID   APIInt `json:"role_id"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=7"`
	City     string `json:"city"`
	Blocked  APIInt `json:"blocked"`
}

// NGO is an organisation profile record as returned by Ngo/getngos.php.
type NGO struct {
	NgoID   APIInt `json:"ngo_id"`
	NGOName string `json:"ngoname" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=7"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// DonorRegistration is the payload for User/register.php.
type DonorRegistration struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7"`
	City     string `json:"city" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// NGORegistration is the payload for Ngo/register.php.
type NGORegistration struct {
	NGOName  string `json:"ngoname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7"`
	City     string `json:"city" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// ContactMessage is the payload handed to the transactional email sender by
// the contact and feedback forms.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
