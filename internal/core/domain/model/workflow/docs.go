// Package workflow holds the state machines that govern orders and shipments.
//
// A Workflow is a static transition table identified by id
// (e.g. "shipment_default", "order_fulfillment"). It never stores an entity's
// state; aggregates keep their own state tag and ask the workflow which
// transition to apply:
//
//	t, err := wf.Apply(shipment.State(), "finalize")
//	if err != nil {
//	    // errs.ErrTransitionIsNotAllowed
//	}
//
// Definitions are loaded by the workflowyaml adapter.
package workflow
