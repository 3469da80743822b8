package shipment

import (
	"errors"
	"slices"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// DefaultTypeID is the shipment type produced by the default packer.
const DefaultTypeID = "default"

var ErrTypeIsNotConstructed = errors.New("shipment Type must be created via NewType constructor")

// Type is a shipment bundle: it selects the workflow and declares the extra
// fields shipments of this type carry.
type Type struct {
	id         string
	label      string
	workflowID string
	fields     []string

	guard guard.ConstructorGuard
}

func NewType(id, label, workflowID string, fields ...string) (Type, error) {
	var problems []error
	if id == "" {
		problems = append(problems, errs.NewValueIsRequiredError("shipment type id"))
	}
	if workflowID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("shipment type workflow"))
	}
	for _, f := range fields {
		if f == "" || isBaseField(f) {
			problems = append(problems, errs.NewValueIsInvalidError("shipment type field "+f))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return Type{}, err
	}
	if label == "" {
		label = id
	}
	return Type{
		id:         id,
		label:      label,
		workflowID: workflowID,
		fields:     slices.Clone(fields),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (t Type) Validate() error {
	return t.guard.Validate(ErrTypeIsNotConstructed)
}

func (t Type) ID() string         { return t.id }
func (t Type) Label() string      { return t.label }
func (t Type) WorkflowID() string { return t.workflowID }
func (t Type) Fields() []string   { return slices.Clone(t.fields) }

// Declares reports whether name is one of the type's own fields.
func (t Type) Declares(name string) bool {
	return slices.Contains(t.fields, name)
}
