package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/tariff"
)

// TariffRepository defines the persistence contract for the pricing
// configuration. Reads return immutable snapshots; order processing never
// writes through this port.
type TariffRepository interface {
	// GetShippingConfig returns the current shipping tariff snapshot.
	// The built-in default applies when none has been stored yet.
	GetShippingConfig(ctx context.Context) (tariff.ShippingConfig, error)

	// SaveShippingConfig stores a new shipping tariff.
	SaveShippingConfig(ctx context.Context, config tariff.ShippingConfig) error

	// GetTaxTable returns the current tax table snapshot.
	// The built-in default applies when none has been stored yet.
	GetTaxTable(ctx context.Context) (tariff.TaxTable, error)

	// SaveTaxTable replaces the stored tax table.
	SaveTaxTable(ctx context.Context, table tariff.TaxTable) error
}
