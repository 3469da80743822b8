package workflow

import (
	"errors"
	"fmt"
	"slices"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrWorkflowIsNotConstructed = errors.New("Workflow must be created via NewWorkflow constructor")

// Transition moves an entity from any of the From states into To.
type Transition struct {
	ID    string
	Label string
	From  []string
	To    string
}

// AllowedFrom reports whether the transition can be applied in state.
func (t Transition) AllowedFrom(state string) bool {
	return slices.Contains(t.From, state)
}

// Definition is the raw description of a workflow, as loaded from
// configuration. The first state is the initial one.
type Definition struct {
	ID          string
	Label       string
	Group       string
	States      []string
	Transitions []Transition
}

// Workflow is a validated transition table. It holds no per-entity state:
// callers pass the current state in and receive the transition to apply.
type Workflow struct {
	id          string
	label       string
	group       string
	states      []string
	transitions []Transition

	guard guard.ConstructorGuard
}

// NewWorkflow validates a definition. Transition ids must be unique and every
// transition must reference declared states only.
func NewWorkflow(def Definition) (*Workflow, error) {
	var problems []error
	if def.ID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("workflow id"))
	}
	if len(def.States) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("workflow states"))
	}

	seen := make(map[string]struct{}, len(def.Transitions))
	for _, t := range def.Transitions {
		if t.ID == "" {
			problems = append(problems, errs.NewValueIsRequiredError("transition id"))
			continue
		}
		if _, dup := seen[t.ID]; dup {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("transition id",
				fmt.Errorf("%s is declared twice in workflow %s", t.ID, def.ID)))
		}
		seen[t.ID] = struct{}{}

		if len(t.From) == 0 {
			problems = append(problems, errs.NewValueIsRequiredError("transition "+t.ID+" from"))
		}
		for _, state := range append(slices.Clone(t.From), t.To) {
			if !slices.Contains(def.States, state) {
				problems = append(problems, errs.NewValueIsInvalidErrorWithCause("transition "+t.ID,
					fmt.Errorf("state %q is not declared in workflow %s", state, def.ID)))
			}
		}
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	transitions := make([]Transition, len(def.Transitions))
	for i, t := range def.Transitions {
		t.From = slices.Clone(t.From)
		transitions[i] = t
	}

	return &Workflow{
		id:          def.ID,
		label:       def.Label,
		group:       def.Group,
		states:      slices.Clone(def.States),
		transitions: transitions,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (w *Workflow) Validate() error {
	if w == nil {
		return ErrWorkflowIsNotConstructed
	}
	return w.guard.Validate(ErrWorkflowIsNotConstructed)
}

func (w *Workflow) ID() string {
	return w.id
}

func (w *Workflow) Label() string {
	return w.label
}

// Group names the kind of entity the workflow drives, e.g. "shipment".
func (w *Workflow) Group() string {
	return w.group
}

func (w *Workflow) States() []string {
	return slices.Clone(w.states)
}

func (w *Workflow) InitialState() string {
	return w.states[0]
}

func (w *Workflow) HasState(state string) bool {
	return slices.Contains(w.states, state)
}

// Transition looks up a transition by id regardless of the current state.
func (w *Workflow) Transition(id string) (Transition, bool) {
	for _, t := range w.transitions {
		if t.ID == id {
			return t, true
		}
	}
	return Transition{}, false
}

// AllowedTransitions lists the transitions legal from state in declaration order.
func (w *Workflow) AllowedTransitions(state string) []Transition {
	allowed := make([]Transition, 0, len(w.transitions))
	for _, t := range w.transitions {
		if t.AllowedFrom(state) {
			allowed = append(allowed, t)
		}
	}
	return allowed
}

// Apply returns the transition named id if it is legal from current.
// Unknown transitions and transitions not allowed from current both fail
// with errs.TransitionIsNotAllowedError.
func (w *Workflow) Apply(current, id string) (Transition, error) {
	t, ok := w.Transition(id)
	if !ok {
		return Transition{}, errs.NewTransitionIsNotAllowedErrorWithCause(w.id, id, current,
			fmt.Errorf("workflow has no transition %q", id))
	}
	if !t.AllowedFrom(current) {
		return Transition{}, errs.NewTransitionIsNotAllowedError(w.id, id, current)
	}
	return t, nil
}
