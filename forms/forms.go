// Package forms validates user input client-side before it is sent to the
// backend, so forms can surface problems without a round trip.
package forms

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/leftovermart/client-go/models"
)

var validate = newValidator()

// productCodePattern matches the backend's product code rules: upper-case
// letters, digits and dashes only.
var productCodePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the wire field names the forms display.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	v.RegisterValidation("business_type", func(fl validator.FieldLevel) bool {
		value := models.BusinessType(fl.Field().String())
		for _, t := range models.BusinessTypes {
			if value == t {
				return true
			}
		}
		return false
	})
	v.RegisterValidation("marketplace_section", func(fl validator.FieldLevel) bool {
		value := models.MarketplaceSection(fl.Field().String())
		for _, s := range models.MarketplaceSections {
			if value == s {
				return true
			}
		}
		return false
	})
	v.RegisterValidation("product_code", func(fl validator.FieldLevel) bool {
		return productCodePattern.MatchString(fl.Field().String())
	})

	return v
}

// Errors maps field names to a human-readable problem with that field.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, message := range e {
		parts = append(parts, field+": "+message)
	}
	return strings.Join(parts, "; ")
}

// check runs the tag validators over the payload and converts the result
// into field-keyed messages.
func check(payload any) Errors {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"": err.Error()}
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Not a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters long", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "business_type":
		return "Not a valid business type"
	case "marketplace_section":
		return "Not a valid marketplace section"
	case "product_code":
		return "Product code may only contain upper-case letters, numbers and dashes"
	default:
		return "Invalid value"
	}
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// ValidateCreateUser checks a registration payload. The date of birth must
// parse and place the user at least 13 years in the past.
func ValidateCreateUser(payload models.CreateUser) Errors {
	errs := check(payload)
	if _, present := errs["dateOfBirth"]; !present && payload.DateOfBirth != "" {
		dob, ok := parseDate(payload.DateOfBirth)
		switch {
		case !ok:
			errs = withError(errs, "dateOfBirth", "Not a valid date")
		case dob.After(time.Now().AddDate(-13, 0, 0)):
			errs = withError(errs, "dateOfBirth", "Must be at least 13 years old")
		}
	}
	return errs
}

// ValidateModifyUser checks a profile-update payload.
func ValidateModifyUser(payload models.ModifyUser) Errors {
	errs := check(payload)
	if payload.NewPassword != nil && payload.Password == nil {
		errs = withError(errs, "password", "Current password is required to set a new one")
	}
	return errs
}

// ValidateCreateBusiness checks a business-registration payload.
func ValidateCreateBusiness(payload models.CreateBusiness) Errors {
	return check(payload)
}

// ValidateCreateProduct checks a catalogue-entry payload.
func ValidateCreateProduct(payload models.CreateProduct) Errors {
	return check(payload)
}

// ValidateCreateInventoryItem checks a stock-entry payload, including the
// ordering of its lifecycle dates: manufactured, then sell by, then best
// before, then expiry.
func ValidateCreateInventoryItem(payload models.CreateInventoryItem) Errors {
	errs := check(payload)

	expires, expiresOK := parseDate(payload.Expires)
	if payload.Expires != "" && !expiresOK {
		errs = withError(errs, "expires", "Not a valid date")
	}

	dates := []struct {
		field string
		value *string
	}{
		{"manufactured", payload.Manufactured},
		{"sellBy", payload.SellBy},
		{"bestBefore", payload.BestBefore},
	}
	var previous time.Time
	var previousField string
	for _, d := range dates {
		if d.value == nil || *d.value == "" {
			continue
		}
		t, ok := parseDate(*d.value)
		if !ok {
			errs = withError(errs, d.field, "Not a valid date")
			continue
		}
		if previousField != "" && t.Before(previous) {
			errs = withError(errs, d.field, fmt.Sprintf("Must not be before %s", previousField))
		}
		if expiresOK && t.After(expires) {
			errs = withError(errs, d.field, "Must not be after the expiry date")
		}
		previous, previousField = t, d.field
	}
	return errs
}

// ValidateCreateSaleItem checks a sale-listing payload. A closing date, when
// given, must not be in the past.
func ValidateCreateSaleItem(payload models.CreateSaleItem) Errors {
	errs := check(payload)
	if payload.Closes != nil && *payload.Closes != "" {
		closes, ok := parseDate(*payload.Closes)
		switch {
		case !ok:
			errs = withError(errs, "closes", "Not a valid date")
		case closes.Before(time.Now().Truncate(24 * time.Hour)):
			errs = withError(errs, "closes", "Must not be in the past")
		}
	}
	return errs
}

// ValidateCreateMarketplaceCard checks a community marketplace card payload.
func ValidateCreateMarketplaceCard(payload models.CreateMarketplaceCard) Errors {
	return check(payload)
}

// ValidateKeywordName checks a new keyword name.
func ValidateKeywordName(name string) Errors {
	if name == "" {
		return Errors{"name": "This field is required"}
	}
	if len(name) > 25 {
		return Errors{"name": "Must be at most 25 characters long"}
	}
	return nil
}

func withError(errs Errors, field, msg string) Errors {
	if errs == nil {
		errs = make(Errors, 1)
	}
	if _, present := errs[field]; !present {
		errs[field] = msg
	}
	return errs
}
