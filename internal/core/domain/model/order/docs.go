// Package order provides the Order aggregate the shipping subsystem plans
// shipments for.
//
// The package includes:
//   - Order: the aggregate root with lines, shipment references and adjustments
//   - Item: an order line with quantity and unit price
//   - PurchasedEntity: snapshot of the catalog item a line was bought for
//
// Key business rules:
//   - Order state is driven by an order workflow (order_default,
//     order_fulfillment, order_fulfillment_validation)
//   - Lines may lose their purchased entity; such lines are never shipped
//   - All amounts on an order share the order currency
//   - Shipment references are ordered; their position is meaningful
package order
