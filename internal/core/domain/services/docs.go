// Package services provides stateless domain services that operate across
// aggregates and value objects.
//
// The package includes:
//   - PriceCalculator: prices an order's lines against a jurisdiction's
//     tax and shipping configuration snapshots
//   - CarrierClassifier: maps tracking-number strings to carrier tags and
//     tracking URLs
//
// Both services are pure: they hold no state, perform no I/O, and are safe
// for concurrent use.
package services
