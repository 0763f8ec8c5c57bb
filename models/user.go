package models

// UserRole values accepted by the backend.
type UserRole string

const (
	RoleUser        UserRole = "user"
	RoleGlobalAdmin UserRole = "globalApplicationAdmin"
	RoleDefaultGlobalAdmin UserRole = "defaultGlobalApplicationAdmin"
)

// UserRoles lists every role the backend may report.
var UserRoles = []UserRole{RoleUser, RoleGlobalAdmin, RoleDefaultGlobalAdmin}

// Location is a postal address. Only the country is guaranteed.
type Location struct {
	StreetNumber *string `json:"streetNumber,omitempty"`
	StreetName   *string `json:"streetName,omitempty"`
	District     *string `json:"district,omitempty"`
	City         *string `json:"city,omitempty"`
	Region       *string `json:"region,omitempty"`
	Country      string  `json:"country"`
	Postcode     *string `json:"postcode,omitempty"`
}

// User is an account as the backend reports it.
type User struct {
	ID                      int        `json:"id"`
	FirstName               string     `json:"firstName"`
	LastName                string     `json:"lastName"`
	MiddleName              *string    `json:"middleName,omitempty"`
	Nickname                *string    `json:"nickname,omitempty"`
	Bio                     *string    `json:"bio,omitempty"`
	Email                   string     `json:"email"`
	DateOfBirth             *string    `json:"dateOfBirth,omitempty"`
	PhoneNumber             *string    `json:"phoneNumber,omitempty"`
	HomeAddress             Location   `json:"homeAddress"`
	Created                 *string    `json:"created,omitempty"`
	Role                    *UserRole  `json:"role,omitempty"`
	BusinessesAdministered  []Business `json:"businessesAdministered,omitempty"`
	Images                  []Image    `json:"images"`
}

// CreateUser is the registration payload.
type CreateUser struct {
	FirstName   string   `json:"firstName" validate:"required,max=32"`
	LastName    string   `json:"lastName" validate:"required,max=32"`
	MiddleName  *string  `json:"middleName,omitempty" validate:"omitempty,max=32"`
	Nickname    *string  `json:"nickname,omitempty" validate:"omitempty,max=32"`
	Bio         *string  `json:"bio,omitempty" validate:"omitempty,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	DateOfBirth string   `json:"dateOfBirth" validate:"required"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	HomeAddress Location `json:"homeAddress"`
	Password    string   `json:"password" validate:"required,min=7"`
}

// ModifyUser is the profile-update payload. Password is only needed when
// changing it, imageIds reorders the profile images.
type ModifyUser struct {
	FirstName   string   `json:"firstName" validate:"required,max=32"`
	LastName    string   `json:"lastName" validate:"required,max=32"`
	MiddleName  *string  `json:"middleName,omitempty" validate:"omitempty,max=32"`
	Nickname    *string  `json:"nickname,omitempty" validate:"omitempty,max=32"`
	Bio         *string  `json:"bio,omitempty" validate:"omitempty,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	DateOfBirth string   `json:"dateOfBirth" validate:"required"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	HomeAddress Location `json:"homeAddress"`
	Password    *string  `json:"password,omitempty" validate:"omitempty,min=7"`
	NewPassword *string  `json:"newPassword,omitempty" validate:"omitempty,min=7"`
	ImageIDs    []int    `json:"imageIds"`
}
