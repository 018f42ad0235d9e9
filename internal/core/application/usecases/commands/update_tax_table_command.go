package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/tariff"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateTaxTableCommandIsNotConstructed = errors.New(
		"UpdateTaxTableCommand must be created via NewUpdateTaxTableCommand constructor",
	)
)

// UpdateTaxTableCommand represents an administrative replacement of the
// jurisdiction tax table.
type UpdateTaxTableCommand struct {
	table tariff.TaxTable

	guard guard.ConstructorGuard
}

// NewUpdateTaxTableCommand creates a command to replace the tax table.
// Rates are validated by the tax table constructor.
func NewUpdateTaxTableCommand(
	byRegion map[string]decimal.Decimal,
	byPostalPrefix map[string]decimal.Decimal,
	defaultRate decimal.Decimal,
) (UpdateTaxTableCommand, error) {
	table, err := tariff.NewTaxTable(byRegion, byPostalPrefix, defaultRate)
	if err != nil {
		return UpdateTaxTableCommand{}, err
	}

	return UpdateTaxTableCommand{
		table: table,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTaxTableCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaxTableCommandIsNotConstructed)
}

// Table returns the validated replacement tax table.
func (c UpdateTaxTableCommand) Table() tariff.TaxTable {
	return c.table
}
