// Package shipment provides the Shipment entity and the values the packing
// process produces for it.
//
// The package includes:
//   - Item: one purchased entity and quantity going into a shipment
//   - ProposedShipment: a packer's unsaved plan for one shipment
//   - Shipment: the persisted parcel with items, carrier selection, amount,
//     adjustments, tracking code and workflow state
//   - Type: the shipment bundle selecting a workflow and declaring extra fields
//
// Key business rules:
//   - Items and proposed shipments are immutable and validated on construction
//   - A shipment's weight is derived from its items
//   - State changes go through ApplyTransition and record a StateChanged event
//   - Custom fields from a proposal are only applied when the shipment
//     recognizes them (title, tracking_code, or a field declared by its type)
package shipment
