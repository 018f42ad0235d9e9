// Package productrepo provides data transfer objects and mapping functions for
// catalog product persistence.
package productrepo

import (
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog products.
// Stock is decremented under a row lock during checkout; the price is a
// fixed-point numeric and never a float.
type ProductDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock int             `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Price: aggregate.Price().Decimal(),
		Stock: aggregate.Stock(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price, dto.Stock)
}
