package kernel

import (
	"errors"

	"ecommerce/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not created
// through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a value object holding a shipping destination. All five components
// are required; once attached to an order the address is immutable.
//
// The State and PostalCode components double as the tax jurisdiction key used by
// the pricing engine.
type Address struct {
	street     string
	city       string
	state      string
	postalCode string
	country    string

	isConstructed bool
}

// NewAddress creates an Address, validating that every component is present.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	a := Address{isConstructed: true}

	if err := errors.Join(
		a.setStreet(street),
		a.setCity(city),
		a.setState(state),
		a.setPostalCode(postalCode),
		a.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the region/state of the address.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// IsEqual compares two addresses component-wise.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
