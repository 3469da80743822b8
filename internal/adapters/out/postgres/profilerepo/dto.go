// Package profilerepo persists destination profiles.
package profilerepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

type ProfileDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName string     `gorm:"not null"`
	Address  AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

func (ProfileDTO) TableName() string {
	return "profiles"
}

type AddressDTO struct {
	CountryCode string `gorm:"type:char(2);not null"`
	Locality    string `gorm:"not null"`
	PostalCode  string
	Line        string `gorm:"not null"`
}

func fromDomain(p *profile.Profile) ProfileDTO {
	a := p.Address()
	return ProfileDTO{
		ID:       p.ID().Bytes(),
		FullName: p.FullName(),
		Address: AddressDTO{
			CountryCode: a.CountryCode,
			Locality:    a.Locality,
			PostalCode:  a.PostalCode,
			Line:        a.AddressLine,
		},
	}
}

func toDomain(dto ProfileDTO) (*profile.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return profile.NewProfile(id, dto.FullName, profile.Address{
		CountryCode: dto.Address.CountryCode,
		Locality:    dto.Address.Locality,
		PostalCode:  dto.Address.PostalCode,
		AddressLine: dto.Address.Line,
	})
}
