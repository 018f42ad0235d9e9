// Package product provides the catalog aggregate for the ecommerce system.
//
// A Product carries the unit price and the available stock count. Stock is only
// mutated through the reservation operations (Reserve/Release) and administrative
// restocking, which keeps the count non-negative at all times. Order lines
// snapshot the product name and price at reservation time, so later catalog
// changes never affect historical orders.
package product
