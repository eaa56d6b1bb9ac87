package params

import (
	"reflect"

	"flowwire/dataflow"
)

// ResolveChannel normalizes an authored producer value into a read
// channel. It is total: every value is representable.
//
// Resolution order:
//  1. multi-subscriber source -> fresh independent subscription
//  2. read channel -> returned unchanged
//  3. slice or array -> queue pre-loaded in order, completed at the end
//  4. anything else -> single-value channel
func ResolveChannel(v interface{}) dataflow.ReadChannel {
	switch src := v.(type) {
	case dataflow.Subscribable:
		return src.Subscribe()
	case dataflow.ReadChannel:
		return src
	}
	if v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			items := make([]interface{}, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				items[i] = rv.Index(i).Interface()
			}
			return dataflow.NewQueueOf(items...)
		}
	}
	return dataflow.NewValue(v)
}
