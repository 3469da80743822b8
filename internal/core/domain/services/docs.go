// Package services provides the domain services of shipment planning. They
// operate across orders, profiles and shipments and persist nothing
// themselves; command handlers load their inputs and save their outputs.
//
// The package includes:
//   - Packer, DefaultPacker: strategies turning an order into proposed shipments
//   - PackerManager: runs packers in registration order, first handled result wins
//   - ShipmentReconciler: maps proposals onto existing shipments by position
//   - OrderLifecycleSynchronizer: drives shipment transitions from order transitions
//   - ShipmentOrderProcessor: adds shipping adjustments to the order
package services
