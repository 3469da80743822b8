// Package workflowyaml loads workflow definitions and shipment types from
// YAML. The stock definitions are embedded; a file on disk may replace them.
package workflowyaml

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/workflow"
	"shipping/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed definitions.yaml
var defaultDefinitions []byte

type document struct {
	Workflows     []workflowYAML     `yaml:"workflows"`
	ShipmentTypes []shipmentTypeYAML `yaml:"shipment_types"`
}

type workflowYAML struct {
	ID          string           `yaml:"id"`
	Label       string           `yaml:"label"`
	Group       string           `yaml:"group"`
	States      []string         `yaml:"states"`
	Transitions []transitionYAML `yaml:"transitions"`
}

type transitionYAML struct {
	ID    string   `yaml:"id"`
	Label string   `yaml:"label"`
	From  []string `yaml:"from"`
	To    string   `yaml:"to"`
}

type shipmentTypeYAML struct {
	ID       string   `yaml:"id"`
	Label    string   `yaml:"label"`
	Workflow string   `yaml:"workflow"`
	Fields   []string `yaml:"fields"`
}

// Registry serves both ports.WorkflowRegistry and ports.ShipmentTypeRegistry
// through WorkflowRegistry and ShipmentTypes. It is immutable after loading
// and safe for concurrent use.
type Registry struct {
	workflows map[string]*workflow.Workflow
	types     map[string]shipment.Type
}

// Default returns the registry built from the embedded definitions.
func Default() (*Registry, error) {
	return Parse(defaultDefinitions)
}

// Load reads definitions from path. An empty path selects the embedded ones.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	registry, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return registry, nil
}

// Parse builds a registry from a YAML document. Every workflow is validated
// and every shipment type must reference a declared workflow.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing workflow definitions: %w", err)
	}

	r := &Registry{
		workflows: make(map[string]*workflow.Workflow, len(doc.Workflows)),
		types:     make(map[string]shipment.Type, len(doc.ShipmentTypes)),
	}

	var problems []error
	for _, w := range doc.Workflows {
		if _, dup := r.workflows[w.ID]; dup {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("workflow id",
				fmt.Errorf("%s is declared twice", w.ID)))
			continue
		}
		wf, err := workflow.NewWorkflow(w.toDefinition())
		if err != nil {
			problems = append(problems, fmt.Errorf("workflow %s: %w", w.ID, err))
			continue
		}
		r.workflows[w.ID] = wf
	}

	for _, t := range doc.ShipmentTypes {
		wf, ok := r.workflows[t.Workflow]
		if !ok {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("shipment type "+t.ID,
				fmt.Errorf("unknown workflow %q", t.Workflow)))
			continue
		}
		if wf.Group() != "shipment" {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("shipment type "+t.ID,
				fmt.Errorf("workflow %s belongs to group %q", wf.ID(), wf.Group())))
			continue
		}
		typ, err := shipment.NewType(t.ID, t.Label, t.Workflow, t.Fields...)
		if err != nil {
			problems = append(problems, fmt.Errorf("shipment type %s: %w", t.ID, err))
			continue
		}
		r.types[t.ID] = typ
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return r, nil
}

// Get returns the workflow with the given id.
func (r *Registry) Get(id string) (*workflow.Workflow, error) {
	wf, ok := r.workflows[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("workflow", id)
	}
	return wf, nil
}

// ShipmentTypes exposes the shipment type lookup.
func (r *Registry) ShipmentTypes() ShipmentTypes {
	return ShipmentTypes{types: r.types}
}

// ShipmentTypes resolves shipment types loaded alongside the workflows.
type ShipmentTypes struct {
	types map[string]shipment.Type
}

func (s ShipmentTypes) Get(id string) (shipment.Type, error) {
	t, ok := s.types[id]
	if !ok {
		return shipment.Type{}, errs.NewObjectNotFoundError("shipment type", id)
	}
	return t, nil
}

func (w workflowYAML) toDefinition() workflow.Definition {
	transitions := make([]workflow.Transition, 0, len(w.Transitions))
	for _, t := range w.Transitions {
		transitions = append(transitions, workflow.Transition{
			ID:    t.ID,
			Label: t.Label,
			From:  t.From,
			To:    t.To,
		})
	}
	return workflow.Definition{
		ID:          w.ID,
		Label:       w.Label,
		Group:       w.Group,
		States:      w.States,
		Transitions: transitions,
	}
}
