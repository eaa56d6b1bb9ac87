package params

import "sort"

// reservedOutAttrs are consumed by the factory itself and never go
// through the descriptor tables.
var reservedOutAttrs = map[string]struct{}{
	"file": {},
	"into": {},
}

// attrDesc is one entry of a variant's attribute whitelist: the
// expected type and a setter that rejects non-assignable values.
type attrDesc struct {
	typeName string
	set      func(v interface{}) bool
}

// assignAttrs applies every non-reserved attribute to param through its
// descriptor table. Unknown names and mismatched types are logged and
// skipped; assignment never fails.
func assignAttrs(param OutParam, attrs map[string]interface{}) {
	table := attrTable(param)

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, reserved := reservedOutAttrs[key]; reserved {
			continue
		}
		value := attrs[key]
		if value == nil {
			continue
		}
		desc, known := table[key]
		if !known {
			globalLogger.Warnf("Output %q: unknown attribute %q, ignoring", param.Name(), key)
			continue
		}
		if !desc.set(value) {
			globalLogger.Warnf("Output %q: attribute %q expects %s, got %T, keeping default", param.Name(), key, desc.typeName, value)
		}
	}
}

// attrTable returns the assignable-attribute whitelist for the concrete
// variant of param.
func attrTable(param OutParam) map[string]attrDesc {
	switch p := param.(type) {
	case *FileOutParam:
		return map[string]attrDesc{
			"autoClose": boolAttr(&p.autoClose),
			"joint":     boolAttr(&p.joint),
		}
	case *StdOutParam:
		return map[string]attrDesc{
			"autoClose": boolAttr(&p.autoClose),
		}
	default:
		return nil
	}
}

func boolAttr(field *bool) attrDesc {
	return attrDesc{
		typeName: "bool",
		set: func(v interface{}) bool {
			b, ok := v.(bool)
			if ok {
				*field = b
			}
			return ok
		},
	}
}
