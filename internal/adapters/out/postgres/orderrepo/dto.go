// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary amounts are stored as fixed-point numerics; the grand total is
// never stored, it is always derived from subtotal, tax, and shipping.
// The version column backs optimistic concurrency control.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`

	Subtotal decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Shipping decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Status        int `gorm:"index;not null"`
	PaymentStatus int `gorm:"not null"`
	ReturnStatus  int `gorm:"not null"`

	PaymentMethod string `gorm:"type:varchar(64);not null"`
	PaymentRef    string `gorm:"type:varchar(255);not null"`

	TrackingNumber string `gorm:"type:varchar(64)"`
	Carrier        string `gorm:"type:varchar(64)"`

	ReturnTrackingNumber string `gorm:"type:varchar(64)"`
	ReturnCarrier        string `gorm:"type:varchar(64)"`
	ReturnRequestedAt    *time.Time
	RefundIssuedAt       *time.Time
	RefundAmount         *decimal.Decimal `gorm:"type:numeric(12,2)"`

	CreatedAt time.Time `gorm:"not null"`
	Version   int       `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(128)"`
	State      string `gorm:"type:varchar(64)"`
	PostalCode string `gorm:"type:varchar(16)"`
	Country    string `gorm:"type:varchar(64)"`
}

// OrderLineDTO represents one priced order line. Lines snapshot the product
// name and unit price at purchase time and are immutable after creation.
type OrderLineDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:     orderID,
			ProductID:   line.ProductID().Bytes(),
			ProductName: line.ProductName(),
			UnitPrice:   line.UnitPrice().Decimal(),
			Quantity:    line.Quantity(),
		})
	}

	var refundAmount *decimal.Decimal
	if amount := aggregate.RefundAmount(); amount != nil {
		raw := amount.Decimal()
		refundAmount = &raw
	}

	address := aggregate.Address()

	return OrderDTO{
		ID:     orderID,
		UserID: aggregate.UserID().Bytes(),
		Lines:  lines,
		Address: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		Subtotal:             aggregate.Subtotal().Decimal(),
		Tax:                  aggregate.Tax().Decimal(),
		Shipping:             aggregate.Shipping().Decimal(),
		Status:               int(aggregate.Status()),
		PaymentStatus:        int(aggregate.PaymentStatus()),
		ReturnStatus:         int(aggregate.ReturnStatus()),
		PaymentMethod:        aggregate.PaymentMethod(),
		PaymentRef:           aggregate.PaymentRef(),
		TrackingNumber:       aggregate.TrackingNumber(),
		Carrier:              aggregate.Carrier(),
		ReturnTrackingNumber: aggregate.ReturnTrackingNumber(),
		ReturnCarrier:        aggregate.ReturnCarrier(),
		ReturnRequestedAt:    aggregate.ReturnRequestedAt(),
		RefundIssuedAt:       aggregate.RefundIssuedAt(),
		RefundAmount:         refundAmount,
		CreatedAt:            aggregate.CreatedAt(),
		Version:              aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.PostalCode,
		dto.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return nil, err
	}
	shipping, err := kernel.NewMoney(dto.Shipping)
	if err != nil {
		return nil, err
	}

	var refundAmount *kernel.Money
	if dto.RefundAmount != nil {
		amount, amountErr := kernel.NewMoney(*dto.RefundAmount)
		if amountErr != nil {
			return nil, amountErr
		}
		refundAmount = &amount
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                   id,
		UserID:               userID,
		Lines:                lines,
		Address:              address,
		Subtotal:             subtotal,
		Tax:                  tax,
		Shipping:             shipping,
		Status:               order.Status(dto.Status),
		PaymentStatus:        order.PaymentStatus(dto.PaymentStatus),
		ReturnStatus:         order.ReturnStatus(dto.ReturnStatus),
		PaymentMethod:        dto.PaymentMethod,
		PaymentRef:           dto.PaymentRef,
		TrackingNumber:       dto.TrackingNumber,
		Carrier:              dto.Carrier,
		ReturnTrackingNumber: dto.ReturnTrackingNumber,
		ReturnCarrier:        dto.ReturnCarrier,
		ReturnRequestedAt:    dto.ReturnRequestedAt,
		RefundIssuedAt:       dto.RefundIssuedAt,
		RefundAmount:         refundAmount,
		CreatedAt:            dto.CreatedAt,
		Version:              dto.Version,
	})
}

// lineToDomain converts an order line DTO to its domain value object.
func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(productID, dto.ProductName, unitPrice, dto.Quantity)
}
