package entity

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"

	"entitycast/field"
	"entitycast/internal/keypath"
)

// Exportable lets foreign composite values supply their own plain,
// encoder-ready rendering. The traversal checks for this capability instead
// of probing method sets by name.
type Exportable interface {
	ExportPlain() any
}

// ExportFunc is a custom rendering for entities of one type, installed with
// Type.SetExporter.
type ExportFunc func(*Entity) any

// ExportOptions controls the export traversal.
type ExportOptions struct {
	// Flatten merges nested composite values into a single-level mapping.
	Flatten bool
	// Stringify renders scalar leaves textually: timestamps through the
	// canonical layout, identifiers through their string form.
	Stringify bool
	// KeyPaths renders flattened keys as dot-joined, bracket-indexed paths
	// ("days[2].caption"). Without it the innermost leaf name is used and
	// colliding leaf names overwrite each other in declaration order.
	// Only meaningful together with Flatten.
	KeyPaths bool
}

// Export renders the entity graph into a plain structure. It never fails:
// attributes that cannot be read render as nil, and leaf values outside the
// scalar/composite/list/map closure pass through as-is (or as text when
// Stringify is set). The result is built fresh on every call and shares no
// containers with the entity.
func (e *Entity) Export(opts ExportOptions) map[string]any {
	if opts.Flatten {
		out := make(map[string]any)
		flattenEntity(e, "", opts, out)
		return out
	}

	return exportEntity(e, e.typ, opts)
}

func exportEntity(e *Entity, root *Type, opts ExportOptions) map[string]any {
	out := make(map[string]any, len(e.typ.attrs))
	for _, at := range e.typ.attrs {
		v, err := e.Get(at.Name)
		if err != nil {
			v = nil
		}

		out[at.Name] = renderValue(v, root, opts)
	}

	return out
}

// renderValue renders one value in nested mode. root is the type of the
// entity the export started from: its own custom exporter is never invoked,
// which breaks the recursion for self-typed export overrides.
func renderValue(v any, root *Type, opts ExportOptions) any {
	if v == nil {
		return nil
	}

	switch val := v.(type) {
	case *Entity:
		if fn := val.typ.exporter; fn != nil && val.typ != root {
			return fn(val)
		}
		return exportEntity(val, root, opts)
	case Exportable:
		return val.ExportPlain()
	case time.Time, uuid.UUID:
		// scalar leaves; uuid.UUID is an array type and must not fall
		// through to the element-wise render below
		return renderScalar(v, opts.Stringify)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = renderValue(rv.Index(i).Interface(), root, opts)
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return renderScalar(v, opts.Stringify)
		}

		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = renderValue(iter.Value().Interface(), root, opts)
		}
		return out
	default:
		return renderScalar(v, opts.Stringify)
	}
}

func renderScalar(v any, stringify bool) any {
	if !stringify {
		return v
	}

	switch val := v.(type) {
	case string:
		return val
	case time.Time:
		return val.Format(field.CommonTimeLayout)
	case uuid.UUID:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// flattenEntity merges the entity's attributes into out. path carries the
// rendered key path from the export root; leaf keys fall back to the
// innermost attribute name when key paths are disabled.
func flattenEntity(e *Entity, path string, opts ExportOptions, out map[string]any) {
	for _, at := range e.typ.attrs {
		v, err := e.Get(at.Name)
		if err != nil {
			v = nil
		}

		flattenValue(v, keypath.Join(path, at.Name), at.Name, opts, out)
	}
}

func flattenValue(v any, path, leaf string, opts ExportOptions, out map[string]any) {
	if e, ok := v.(*Entity); ok {
		flattenEntity(e, path, opts, out)
		return
	}

	if opts.KeyPaths {
		if items, ok := toAnySlice(v); ok {
			for i, item := range items {
				flattenValue(item, keypath.Index(path, i), leaf, opts, out)
			}
			return
		}

		if m, ok := v.(map[string]any); ok {
			for _, k := range sortedKeys(m) {
				flattenValue(m[k], keypath.Join(path, k), k, opts, out)
			}
			return
		}
	}

	writeLeaf(v, path, leaf, opts, out)
}

func writeLeaf(v any, path, leaf string, opts ExportOptions, out map[string]any) {
	key := leaf
	if opts.KeyPaths {
		key = path
	}

	// in flat mode boolean leaves render as 0/1
	if b, ok := v.(bool); ok {
		if b {
			out[key] = 1
		} else {
			out[key] = 0
		}
		return
	}

	out[key] = renderValue(v, nil, opts)
}

// toAnySlice widens a genuine slice into []any. Array types stay out: the
// only array in the value closure is uuid.UUID, which is a scalar.
func toAnySlice(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
