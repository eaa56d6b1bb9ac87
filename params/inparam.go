package params

import (
	"fmt"

	"flowwire/dataflow"
)

// StdStreamName is the sentinel file name selecting the standard
// stream variants.
const StdStreamName = "-"

// InParam binds one declared task input to its producing channel.
type InParam interface {
	Name() string
	Channel() dataflow.ReadChannel
	Kind() Kind
}

type inParam struct {
	name    string
	channel dataflow.ReadChannel
}

func (p *inParam) Name() string                  { return p.name }
func (p *inParam) Channel() dataflow.ReadChannel { return p.channel }

// FileInParam stages matched files into the task work directory.
type FileInParam struct{ inParam }

func (p *FileInParam) Kind() Kind { return KindFile }

// EnvInParam exposes the channel value as an environment variable.
type EnvInParam struct{ inParam }

func (p *EnvInParam) Kind() Kind { return KindEnv }

// ValueInParam passes the channel value into the task script context.
type ValueInParam struct{ inParam }

func (p *ValueInParam) Kind() Kind { return KindValue }

// StdInParam feeds the channel value to the task's standard input. Its
// name is always empty.
type StdInParam struct{ inParam }

func (p *StdInParam) Kind() Kind { return KindStdIn }

// inSelectors is the closed set of input declaration selectors.
// Exactly one must be present.
var inSelectors = []string{"file", "env", "val"}

// NewInParam builds the input variant declared by attrs.
//
// attrs needs a truthy "from" (the producer value) and exactly one of
// the selector keys "file", "env" or "val" (the target name).
func NewInParam(attrs map[string]interface{}) (InParam, error) {
	if attrs == nil {
		return nil, configErrorf(nil, "missing input attribute map")
	}
	from, ok := attrs["from"]
	if !ok || !truthy(from) {
		return nil, configErrorf(attrs, "missing 'from' on input declaration")
	}

	var selector string
	for _, key := range inSelectors {
		if v, present := attrs[key]; present && v != nil {
			if selector != "" {
				return nil, configErrorf(attrs, "input declares both %q and %q; selectors are mutually exclusive", selector, key)
			}
			selector = key
		}
	}
	if selector == "" {
		return nil, configErrorf(attrs, "input declares none of 'file', 'env' or 'val'")
	}

	name := fmt.Sprintf("%v", attrs[selector])
	channel := ResolveChannel(from)

	var param InParam
	switch selector {
	case "file":
		if name == StdStreamName {
			param = &StdInParam{inParam{name: "", channel: channel}}
		} else {
			param = &FileInParam{inParam{name: name, channel: channel}}
		}
	case "env":
		param = &EnvInParam{inParam{name: name, channel: channel}}
	default:
		param = &ValueInParam{inParam{name: name, channel: channel}}
	}

	globalLogger.Debugf("Declared %s input %q on channel %s", param.Kind(), param.Name(), channel.ID())
	return param, nil
}

// truthy mirrors the declaration language's notion of a usable value:
// nil, false and the empty string count as absent. Numeric zero is a
// legitimate producer value and stays truthy.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	default:
		return true
	}
}
