package models

// BusinessType values accepted by the backend.
type BusinessType string

const (
	BusinessAccommodationAndFood BusinessType = "Accommodation and Food Services"
	BusinessRetailTrade          BusinessType = "Retail Trade"
	BusinessCharitable           BusinessType = "Charitable organisation"
	BusinessNonProfit            BusinessType = "Non-profit organisation"
)

// BusinessTypes lists every type the backend accepts, in display order.
var BusinessTypes = []BusinessType{
	BusinessAccommodationAndFood,
	BusinessRetailTrade,
	BusinessCharitable,
	BusinessNonProfit,
}

// Business is a registered business as the backend reports it.
type Business struct {
	ID                     int          `json:"id"`
	PrimaryAdministratorID int          `json:"primaryAdministratorId"`
	Administrators         []User       `json:"administrators,omitempty"`
	Name                   string       `json:"name"`
	Description            *string      `json:"description,omitempty"`
	Address                Location     `json:"address"`
	BusinessType           BusinessType `json:"businessType"`
	Created                *string      `json:"created,omitempty"`
	Images                 []Image      `json:"images,omitempty"`
}

// CreateBusiness is the registration payload.
type CreateBusiness struct {
	PrimaryAdministratorID int          `json:"primaryAdministratorId" validate:"required"`
	Name                   string       `json:"name" validate:"required,max=100"`
	Description            *string      `json:"description,omitempty" validate:"omitempty,max=200"`
	Address                Location     `json:"address"`
	BusinessType           BusinessType `json:"businessType" validate:"required,business_type"`
}

// ModifyBusiness is the update payload. UpdateProductCountry propagates the
// address country to the catalogue's country of sale.
type ModifyBusiness struct {
	PrimaryAdministratorID int          `json:"primaryAdministratorId" validate:"required"`
	Name                   string       `json:"name" validate:"required,max=100"`
	Description            *string      `json:"description,omitempty" validate:"omitempty,max=200"`
	Address                Location     `json:"address"`
	BusinessType           BusinessType `json:"businessType" validate:"required,business_type"`
	UpdateProductCountry   bool         `json:"updateProductCountry"`
}
