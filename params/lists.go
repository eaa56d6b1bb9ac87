package params

import "flowwire/dataflow"

// InputsList holds the ordered inputs of one process declaration.
// Declaration order is preserved and duplicate names are permitted.
type InputsList []InParam

// Names returns every declared name in order.
func (l InputsList) Names() []string {
	names := make([]string, len(l))
	for i, p := range l {
		names[i] = p.Name()
	}
	return names
}

// Channels returns every bound channel in declaration order.
func (l InputsList) Channels() []dataflow.ReadChannel {
	channels := make([]dataflow.ReadChannel, len(l))
	for i, p := range l {
		channels[i] = p.Channel()
	}
	return channels
}

// Filter returns the sublist whose variant matches one of kinds.
func (l InputsList) Filter(kinds ...Kind) InputsList {
	wanted := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		wanted[k] = struct{}{}
	}
	var out InputsList
	for _, p := range l {
		if _, ok := wanted[p.Kind()]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Each invokes fn for every element in declaration order.
func (l InputsList) Each(fn func(name string, ch dataflow.ReadChannel)) {
	for _, p := range l {
		fn(p.Name(), p.Channel())
	}
}

// OutputsList holds the ordered outputs of one process declaration,
// with the same permissiveness as InputsList.
type OutputsList []OutParam

// Names returns every declared name in order.
func (l OutputsList) Names() []string {
	names := make([]string, len(l))
	for i, p := range l {
		names[i] = p.Name()
	}
	return names
}

// Channels returns every bound channel in declaration order.
func (l OutputsList) Channels() []dataflow.WriteChannel {
	channels := make([]dataflow.WriteChannel, len(l))
	for i, p := range l {
		channels[i] = p.Channel()
	}
	return channels
}

// Filter returns the sublist whose variant matches one of kinds.
func (l OutputsList) Filter(kinds ...Kind) OutputsList {
	wanted := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		wanted[k] = struct{}{}
	}
	var out OutputsList
	for _, p := range l {
		if _, ok := wanted[p.Kind()]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Each invokes fn for every element in declaration order.
func (l OutputsList) Each(fn func(name string, ch dataflow.WriteChannel)) {
	for _, p := range l {
		fn(p.Name(), p.Channel())
	}
}
