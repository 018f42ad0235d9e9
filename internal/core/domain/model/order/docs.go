// Package order provides domain entities and business logic for customer
// order management. It implements the Order aggregate root with lifecycle
// management, priced totals, and return handling.
//
// The package includes:
//   - Order: The aggregate root that owns lines, totals, and the status triad
//   - Line: An immutable snapshot of a purchased product at order time
//   - Status: A state machine that enforces valid fulfillment transitions
//   - PaymentStatus: The settlement state reported by the payment collaborator
//   - ReturnStatus: A sub-machine tracking an active return
//   - Notification: An effect emitted by mutations for the caller to dispatch
//
// Key business rules:
//   - Orders follow the workflow Pending -> Processing -> Shipped -> Delivered,
//     with cancellation possible before shipment and returns after delivery
//   - The grand total always equals subtotal + tax + shipping
//   - Lines and the shipping address are immutable once the order is created
//   - Return/cancel-return actions are restricted to the owning customer
//   - An issued refund is terminal for the return and fixes the order as Returned
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
