// Package entity provides typed records built from field accessor policies,
// plus the import and export traversals that move them across the untyped
// boundary.
//
// # Model
//
// A Type is a named, ordered set of attributes declared once; each attribute
// binds a name to exactly one field.Accessor. Attribute names are unique
// within a type. Entities hold boxed values per attribute name and share
// their type's read-only accessor table.
//
// # Import
//
// Import projects an untyped key-value mapping onto the declared attribute
// set: unrecognized keys are discarded by design. Required attributes (no
// default source) must be present and non-nil; violations fail atomically
// with a MissingRequiredFieldsError enumerating every missing name at once.
// A composite attribute whose own key is absent receives the entire input
// mapping, so flattened input with hoisted nested fields imports cleanly.
//
// # Export
//
// Export renders an entity graph into plain, encoder-ready structures,
// either nested or flattened. Flattened keys optionally encode the original
// path ("days[2].caption"); without key paths colliding leaf names are
// last-write-wins in declaration order. Export never fails: leaves outside
// the scalar/composite/list/map closure pass through as-is, or as text when
// stringify is set.
package entity
