package tariffrepo

import (
	"context"
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/tariff"

	"gorm.io/gorm"
)

// GormTariffRepository implements TariffRepository using GORM.
// Until an operator saves a configuration, both accessors fall back to the
// built-in defaults, so a fresh database prices orders without any seeding.
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// GetShippingConfig returns the current shipping fee schedule.
func (r *GormTariffRepository) GetShippingConfig(ctx context.Context) (tariff.ShippingConfig, error) {
	var dto ShippingConfigDTO
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tariff.DefaultShippingConfig(), nil
		}
		return tariff.ShippingConfig{}, err
	}

	return shippingConfigToDomain(dto)
}

// SaveShippingConfig appends a new revision of the shipping fee schedule.
// Earlier revisions are kept for audit.
func (r *GormTariffRepository) SaveShippingConfig(ctx context.Context, config tariff.ShippingConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dto := ShippingConfigDTO{
		Cost:                  config.Cost().Decimal(),
		FreeShippingThreshold: config.FreeShippingThreshold().Decimal(),
		UpdatedAt:             time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetTaxTable returns the current tax rate table.
func (r *GormTariffRepository) GetTaxTable(ctx context.Context) (tariff.TaxTable, error) {
	var dtos []TaxRateDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return tariff.TaxTable{}, err
	}

	if len(dtos) == 0 {
		return tariff.DefaultTaxTable(), nil
	}

	return taxRatesToDomain(dtos)
}

// SaveTaxTable replaces the stored tax rate table with the given one.
// The swap happens inside the caller's transaction, so readers never see a
// half-replaced table.
func (r *GormTariffRepository) SaveTaxTable(ctx context.Context, table tariff.TaxTable) error {
	if err := table.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&TaxRateDTO{}).Error; err != nil {
		return err
	}

	rows := taxTableToRows(table)
	return db.Create(&rows).Error
}
