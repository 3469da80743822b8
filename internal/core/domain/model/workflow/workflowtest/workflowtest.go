// Package workflowtest provides in-memory copies of the stock workflows for
// tests that must not depend on the YAML adapter.
package workflowtest

import (
	"testing"

	"shipping/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/require"
)

var definitions = map[string]workflow.Definition{
	"shipment_default": {
		ID: "shipment_default", Label: "Default", Group: "shipment",
		States: []string{"draft", "ready", "shipped", "canceled"},
		Transitions: []workflow.Transition{
			{ID: "finalize", Label: "Finalize shipment", From: []string{"draft"}, To: "ready"},
			{ID: "ship", Label: "Send shipment", From: []string{"ready"}, To: "shipped"},
			{ID: "cancel", Label: "Cancel shipment", From: []string{"draft", "ready"}, To: "canceled"},
		},
	},
	"order_default": {
		ID: "order_default", Label: "Default", Group: "commerce_order",
		States: []string{"draft", "completed", "canceled"},
		Transitions: []workflow.Transition{
			{ID: "place", Label: "Place order", From: []string{"draft"}, To: "completed"},
			{ID: "cancel", Label: "Cancel order", From: []string{"draft"}, To: "canceled"},
		},
	},
	"order_fulfillment": {
		ID: "order_fulfillment", Label: "Fulfillment", Group: "commerce_order",
		States: []string{"draft", "fulfillment", "completed", "canceled"},
		Transitions: []workflow.Transition{
			{ID: "place", Label: "Place order", From: []string{"draft"}, To: "fulfillment"},
			{ID: "fulfill", Label: "Fulfill order", From: []string{"fulfillment"}, To: "completed"},
			{ID: "cancel", Label: "Cancel order", From: []string{"draft", "fulfillment"}, To: "canceled"},
		},
	},
	"order_fulfillment_validation": {
		ID: "order_fulfillment_validation", Label: "Fulfillment, with validation", Group: "commerce_order",
		States: []string{"draft", "validation", "fulfillment", "completed", "canceled"},
		Transitions: []workflow.Transition{
			{ID: "place", Label: "Place order", From: []string{"draft"}, To: "validation"},
			{ID: "validate", Label: "Validate order", From: []string{"validation"}, To: "fulfillment"},
			{ID: "fulfill", Label: "Fulfill order", From: []string{"fulfillment"}, To: "completed"},
			{ID: "cancel", Label: "Cancel order", From: []string{"draft", "validation", "fulfillment"}, To: "canceled"},
		},
	},
}

// Get builds the stock workflow with the given id and fails the test when
// it is unknown.
func Get(t testing.TB, id string) *workflow.Workflow {
	t.Helper()
	def, ok := definitions[id]
	require.True(t, ok, "unknown workflow %s", id)
	wf, err := workflow.NewWorkflow(def)
	require.NoError(t, err)
	return wf
}

// Shipment returns shipment_default.
func Shipment(t testing.TB) *workflow.Workflow {
	return Get(t, "shipment_default")
}
