// Package definition loads declarative pipeline documents and wires
// their process declarations into typed, channel-bound parameters.
package definition

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"flowwire/params"
	"flowwire/scope"
)

// Process is one authored process declaration: ordered input and
// output attribute maps.
type Process struct {
	Name    string                   `yaml:"name"`
	Inputs  []map[string]interface{} `yaml:"inputs"`
	Outputs []map[string]interface{} `yaml:"outputs"`
}

// Document is a full pipeline definition.
type Document struct {
	Name      string    `yaml:"name"`
	Processes []Process `yaml:"processes"`
}

// Load decodes a pipeline document. Unknown fields are rejected.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding pipeline definition: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("pipeline definition has no name")
	}
	if len(doc.Processes) == 0 {
		return nil, fmt.Errorf("pipeline definition %q declares no processes", doc.Name)
	}
	return &doc, nil
}

// ProcessWiring is a process declaration bound to its channels.
type ProcessWiring struct {
	ID      uuid.UUID
	Name    string
	Inputs  params.InputsList
	Outputs params.OutputsList
}

// Wirer runs process declarations through the param factories against
// one shared scope, so outputs declaring the same destination
// identifier converge on the same channel.
type Wirer struct {
	scope  *scope.Scope
	logger *logrus.Logger
}

func NewWirer(sc *scope.Scope, logger *logrus.Logger) *Wirer {
	if sc == nil {
		sc = scope.New()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Wirer{scope: sc, logger: logger}
}

// Wire binds every declaration in doc. The first fatal declaration
// error aborts wiring for the whole document.
func (w *Wirer) Wire(doc *Document) ([]*ProcessWiring, error) {
	wired := make([]*ProcessWiring, 0, len(doc.Processes))
	for _, proc := range doc.Processes {
		w.logger.Infof("Wiring process %q", proc.Name)
		pw := &ProcessWiring{ID: uuid.New(), Name: proc.Name}
		for _, attrs := range proc.Inputs {
			in, err := params.NewInParam(attrs)
			if err != nil {
				return nil, fmt.Errorf("process %q: %w", proc.Name, err)
			}
			pw.Inputs = append(pw.Inputs, in)
		}
		for _, attrs := range proc.Outputs {
			out, err := params.NewOutParam(attrs, w.scope)
			if err != nil {
				return nil, fmt.Errorf("process %q: %w", proc.Name, err)
			}
			pw.Outputs = append(pw.Outputs, out)
		}
		w.logger.Debugf("Process %q wired with %d inputs and %d outputs", proc.Name, len(pw.Inputs), len(pw.Outputs))
		wired = append(wired, pw)
	}
	return wired, nil
}

// Wire is shorthand for NewWirer(sc, nil).Wire(d).
func (d *Document) Wire(sc *scope.Scope) ([]*ProcessWiring, error) {
	return NewWirer(sc, nil).Wire(d)
}
