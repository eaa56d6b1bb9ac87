package params

import (
	"fmt"
	"strings"

	"flowwire/dataflow"
	"flowwire/scope"
)

// OutParam binds one declared task output to its destination channel.
type OutParam interface {
	Name() string
	Channel() dataflow.WriteChannel
	// AutoClose reports whether the runtime closes the channel when the
	// task terminates. Defaults to true.
	AutoClose() bool
	Kind() Kind
}

type outParam struct {
	name      string
	channel   dataflow.WriteChannel
	autoClose bool
}

func (p *outParam) Name() string                   { return p.name }
func (p *outParam) Channel() dataflow.WriteChannel { return p.channel }
func (p *outParam) AutoClose() bool                { return p.autoClose }

// FileOutParam publishes result files matching the name pattern.
type FileOutParam struct {
	outParam
	joint bool
}

func (p *FileOutParam) Kind() Kind { return KindFile }

// Joint reports whether multiple matched files are emitted as one
// grouped collection instead of separate stream entries. Defaults to
// false.
func (p *FileOutParam) Joint() bool { return p.joint }

// StdOutParam publishes the task's standard output. Its name is always
// empty.
type StdOutParam struct{ outParam }

func (p *StdOutParam) Kind() Kind { return KindStdOut }

// NewOutParam builds the output variant declared by attrs, resolving
// its destination channel against sc.
//
// Only a missing map or a missing "file" key is fatal; every other
// anomaly degrades to a logged warning.
func NewOutParam(attrs map[string]interface{}, sc *scope.Scope) (OutParam, error) {
	if attrs == nil {
		return nil, configErrorf(nil, "missing output attribute map")
	}
	file, ok := attrs["file"]
	if !ok || !truthy(file) {
		return nil, configErrorf(attrs, "missing 'file' on output declaration")
	}

	name := fmt.Sprintf("%v", file)
	channel := bindChannel(name, attrs["into"], sc)

	var param OutParam
	if name == StdStreamName {
		param = &StdOutParam{outParam{name: "", channel: channel, autoClose: true}}
	} else {
		param = &FileOutParam{outParam: outParam{name: name, channel: channel, autoClose: true}}
	}

	assignAttrs(param, attrs)
	globalLogger.Debugf("Declared %s output %q on channel %s", param.Kind(), param.Name(), channel.ID())
	return param, nil
}

// bindChannel resolves the destination channel for an output: an
// explicit channel is used as-is, a string identifier goes through the
// scope, and an absent target derives the identifier from the name.
func bindChannel(name string, into interface{}, sc *scope.Scope) dataflow.WriteChannel {
	switch target := into.(type) {
	case nil:
		if name == StdStreamName {
			return newAnonChannel()
		}
		return resolveIdentifier(strings.ReplaceAll(name, ".", "_"), sc)
	case dataflow.WriteChannel:
		return target
	case string:
		return resolveIdentifier(target, sc)
	default:
		globalLogger.Warnf("Output %q: unusable 'into' value of type %T, deriving channel from the name", name, into)
		return resolveIdentifier(strings.ReplaceAll(name, ".", "_"), sc)
	}
}

// resolveIdentifier returns the channel bound to ident in sc, creating
// and registering a fresh one on a miss. Repeated calls with the same
// identifier converge on the same channel; only the "-" sentinel stays
// unregistered.
func resolveIdentifier(ident string, sc *scope.Scope) dataflow.WriteChannel {
	if existing, found := sc.Lookup(ident); found {
		if ch, ok := existing.(dataflow.WriteChannel); ok {
			return ch
		}
		globalLogger.Warnf("Channel name collision: %q already bound to a %T, rebinding to a new channel", ident, existing)
	}
	ch := newAnonChannel()
	if ident != StdStreamName {
		sc.Bind(ident, ch)
		globalLogger.Debugf("Registered output channel %s as %q", ch.ID(), ident)
	}
	return ch
}

func newAnonChannel() dataflow.WriteChannel {
	return dataflow.NewQueue()
}
