// Package tariffrepo provides data transfer objects and mapping functions for
// pricing configuration persistence: the shipping fee schedule and the tax
// rate table.
package tariffrepo

import (
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/tariff"

	"github.com/shopspring/decimal"
)

// ShippingConfigDTO represents one revision of the shipping fee schedule.
// Revisions are append-only; the latest row by updated_at is current.
type ShippingConfigDTO struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement"`
	Cost                  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FreeShippingThreshold decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UpdatedAt             time.Time       `gorm:"index;not null"`
}

// TableName specifies the database table name for shipping config revisions.
func (ShippingConfigDTO) TableName() string {
	return "shipping_configs"
}

// TaxRateDTO represents one flattened tax rate row. Scope says which
// resolution tier the row belongs to: a region rate, a postal-prefix
// override, or the single default rate.
type TaxRateDTO struct {
	ID    int64           `gorm:"primaryKey;autoIncrement"`
	Scope string          `gorm:"type:varchar(16);uniqueIndex:idx_tax_rates_scope_code;not null"`
	Code  string          `gorm:"type:varchar(16);uniqueIndex:idx_tax_rates_scope_code;not null"`
	Rate  decimal.Decimal `gorm:"type:numeric(6,3);not null"`
}

// TableName specifies the database table name for tax rate rows.
func (TaxRateDTO) TableName() string {
	return "tax_rates"
}

// shippingConfigToDomain converts a shipping config revision to its domain object.
func shippingConfigToDomain(dto ShippingConfigDTO) (tariff.ShippingConfig, error) {
	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return tariff.ShippingConfig{}, err
	}

	threshold, err := kernel.NewMoney(dto.FreeShippingThreshold)
	if err != nil {
		return tariff.ShippingConfig{}, err
	}

	return tariff.NewShippingConfig(cost, threshold)
}

// taxRatesToDomain folds flattened rate rows back into a tax table.
func taxRatesToDomain(dtos []TaxRateDTO) (tariff.TaxTable, error) {
	byRegion := make(map[string]decimal.Decimal)
	byPostalPrefix := make(map[string]decimal.Decimal)
	defaultRate := decimal.Decimal{}

	for _, dto := range dtos {
		switch dto.Scope {
		case tariff.TaxScopeRegion:
			byRegion[dto.Code] = dto.Rate
		case tariff.TaxScopePostalPrefix:
			byPostalPrefix[dto.Code] = dto.Rate
		case tariff.TaxScopeDefault:
			defaultRate = dto.Rate
		}
	}

	return tariff.NewTaxTable(byRegion, byPostalPrefix, defaultRate)
}

// taxTableToRows flattens a tax table into rate rows for persistence.
func taxTableToRows(table tariff.TaxTable) []TaxRateDTO {
	rows := make([]TaxRateDTO, 0, len(table.ByRegion())+len(table.ByPostalPrefix())+1)

	for region, rate := range table.ByRegion() {
		rows = append(rows, TaxRateDTO{Scope: tariff.TaxScopeRegion, Code: region, Rate: rate})
	}
	for prefix, rate := range table.ByPostalPrefix() {
		rows = append(rows, TaxRateDTO{Scope: tariff.TaxScopePostalPrefix, Code: prefix, Rate: rate})
	}
	rows = append(rows, TaxRateDTO{Scope: tariff.TaxScopeDefault, Code: "", Rate: table.DefaultRate()})

	return rows
}
