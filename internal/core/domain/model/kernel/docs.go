// Package kernel holds the value objects shared by every aggregate of the
// shipping domain:
//   - UUID: identifiers for orders, order lines, shipments and profiles
//   - Money: decimal amount in one currency
//   - Weight: decimal physical measurement with unit conversion
//   - Adjustment: a labeled money delta applied to an order or a shipment
//
// All values are immutable and must be created through their constructors;
// the zero value fails Validate.
package kernel
