// Package profile holds the destination profile a shipment is sent to.
package profile

import (
	"errors"
	"fmt"
	"regexp"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

	countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)
)

// Address is the postal part of a profile.
type Address struct {
	CountryCode string
	Locality    string
	PostalCode  string
	AddressLine string
}

// Profile is a recipient plus address. The shipping core only reads its ID.
type Profile struct {
	id       kernel.UUID
	fullName string
	address  Address

	guard guard.ConstructorGuard
}

func NewProfile(id kernel.UUID, fullName string, address Address) (*Profile, error) {
	p := &Profile{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setFullName(fullName),
		p.setAddress(address),
	); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p *Profile) ID() kernel.UUID {
	return p.id
}

func (p *Profile) FullName() string {
	return p.fullName
}

func (p *Profile) Address() Address {
	return p.address
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setFullName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("full_name")
	}
	p.fullName = name
	return nil
}

func (p *Profile) setAddress(a Address) error {
	var problems []error
	if !countryCodePattern.MatchString(a.CountryCode) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("country_code",
			fmt.Errorf("%q is not an ISO 3166-1 alpha-2 code", a.CountryCode)))
	}
	if a.Locality == "" {
		problems = append(problems, errs.NewValueIsRequiredError("locality"))
	}
	if a.AddressLine == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address_line"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	p.address = a
	return nil
}
