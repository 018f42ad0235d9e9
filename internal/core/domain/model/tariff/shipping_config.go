package tariff

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
)

var (
	// ErrShippingConfigIsNotConstructed is returned when a ShippingConfig was not
	// created through the NewShippingConfig factory method.
	ErrShippingConfigIsNotConstructed = errors.New("ShippingConfig must be created via NewShippingConfig constructor")
)

// ShippingConfig is the externally configurable shipping tariff: a flat
// fee and a subtotal threshold above which shipping is free.
//
// ShippingConfig is an immutable value object. Order processing only
// reads it; it changes only through an explicit configuration update.
type ShippingConfig struct {
	// cost is the flat shipping fee charged below the threshold
	cost kernel.Money

	// freeShippingThreshold is the subtotal at which shipping becomes free
	freeShippingThreshold kernel.Money

	// isConstructed ensures the config was created via NewShippingConfig
	isConstructed bool
}

// NewShippingConfig creates a validated shipping configuration.
// Money values cannot be negative by construction, so any pair is accepted.
func NewShippingConfig(cost, freeShippingThreshold kernel.Money) (ShippingConfig, error) {
	return ShippingConfig{
		cost:                  cost,
		freeShippingThreshold: freeShippingThreshold,
		isConstructed:         true,
	}, nil
}

// DefaultShippingConfig returns the tariff used before any explicit
// configuration update: a 10.00 flat fee with free shipping from 50.00.
func DefaultShippingConfig() ShippingConfig {
	config, _ := NewShippingConfig(kernel.MustMoney("10.00"), kernel.MustMoney("50.00"))
	return config
}

// Validate ensures the config was properly constructed through NewShippingConfig.
func (c ShippingConfig) Validate() error {
	if !c.isConstructed {
		return ErrShippingConfigIsNotConstructed
	}
	return nil
}

// Cost returns the flat shipping fee.
func (c ShippingConfig) Cost() kernel.Money {
	return c.cost
}

// FreeShippingThreshold returns the subtotal at which shipping becomes free.
func (c ShippingConfig) FreeShippingThreshold() kernel.Money {
	return c.freeShippingThreshold
}

// FeeFor returns the shipping fee for the given subtotal: zero once the
// subtotal reaches the free-shipping threshold, the flat fee otherwise.
func (c ShippingConfig) FeeFor(subtotal kernel.Money) kernel.Money {
	if subtotal.GreaterThanOrEqual(c.freeShippingThreshold) {
		return kernel.ZeroMoney()
	}
	return c.cost
}
