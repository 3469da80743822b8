package postgres

import (
	"shipping/internal/adapters/out/postgres/orderrepo"
	"shipping/internal/adapters/out/postgres/outboxrepo"
	"shipping/internal/adapters/out/postgres/profilerepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table owned by this adapter.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&profilerepo.ProfileDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
