package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// repackAction names the operation in errors raised for orders that have left
// their initial state.
const repackAction = "repack"

// RepackOrderCommandHandler runs the packer chain for an order and reconciles
// the proposals onto the order's persisted shipments.
//
// Only orders still in the initial state of their workflow can be repacked.
// Later states already drove their shipments forward, and new draft shipments
// would block every following order transition.
//
// The order row is locked for the duration of the transaction, so concurrent
// repacks of the same order run one after another.
//
// Example:
//
//	handler := NewRepackOrderCommandHandler(uowFactory, workflows, packers, reconciler)
//	cmd, _ := NewRepackOrderCommand(orderID, profileID)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d shipments, %d removed", len(result.Shipments), len(result.Removed))
type RepackOrderCommandHandler struct {
	uowFactory UoWFactory
	workflows  ports.WorkflowRegistry
	packers    *services.PackerManager
	reconciler *services.ShipmentReconciler
}

// NewRepackOrderCommandHandler creates a handler for repacking orders.
// Packers are consulted in the order they were registered on the manager.
func NewRepackOrderCommandHandler(
	uowFactory UoWFactory,
	workflows ports.WorkflowRegistry,
	packers *services.PackerManager,
	reconciler *services.ShipmentReconciler,
) RepackOrderCommandHandler {
	return RepackOrderCommandHandler{
		uowFactory: uowFactory,
		workflows:  workflows,
		packers:    packers,
		reconciler: reconciler,
	}
}

// Handle packs the order, then in one transaction creates shipments for new
// slots, saves reused ones, deletes the ones no proposal maps to and stores
// the new shipment references on the order.
func (h RepackOrderCommandHandler) Handle(ctx context.Context, cmd RepackOrderCommand) (services.ReconcileResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ReconcileResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ReconcileResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return services.ReconcileResult{}, err
	}

	wf, err := h.workflows.Get(o.WorkflowID())
	if err != nil {
		return services.ReconcileResult{}, err
	}
	if o.State() != wf.InitialState() {
		return services.ReconcileResult{}, errs.NewTransitionIsNotAllowedError(wf.ID(), repackAction, o.State())
	}

	p, err := uow.ProfileRepository().Get(ctx, cmd.ProfileID())
	if err != nil {
		return services.ReconcileResult{}, err
	}

	existing, err := shipmentRepo.GetAllByOrder(ctx, o.ID())
	if err != nil {
		return services.ReconcileResult{}, err
	}

	proposed, err := h.packers.Pack(o, p)
	if err != nil {
		return services.ReconcileResult{}, err
	}

	result, err := h.reconciler.Reconcile(existing, proposed, p, time.Now().UTC())
	if err != nil {
		return services.ReconcileResult{}, err
	}

	ids := make([]kernel.UUID, 0, len(result.Shipments))
	for position, s := range result.Shipments {
		if position < len(existing) {
			err = shipmentRepo.Update(ctx, s)
		} else {
			err = shipmentRepo.Add(ctx, s, position)
		}
		if err != nil {
			return services.ReconcileResult{}, err
		}
		ids = append(ids, s.ID())
	}

	for _, s := range result.Removed {
		if err = shipmentRepo.Delete(ctx, s.ID()); err != nil {
			return services.ReconcileResult{}, err
		}
	}

	o.SetShipments(ids)
	if err = orderRepo.Update(ctx, o); err != nil {
		return services.ReconcileResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ReconcileResult{}, err
	}

	return result, nil
}
