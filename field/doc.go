// Package field provides the accessor policies that govern how one declared
// attribute of an entity coerces raw, loosely-typed input into a canonical
// typed value, and how a default is produced when no value was supplied.
//
// # Accessors
//
// An Accessor is a stateless policy object, constructed once per declared
// attribute and shared read-only by every entity instance of that type.
// Each accessor pairs a target kind (see KindEnum) with a default source:
//
//   - a default-producing factory function (highest priority)
//   - a literal default matching the target kind, wrapped into a factory
//   - a kind-specific fallback (composite kinds only)
//   - "raise": reading an unset value fails with ErrMissingDefault
//
// Exactly one source is active per accessor and the precedence is fixed.
//
// # Coercion rules
//
// Coercion is permissive by default: malformed input silently degrades to
// the accessor's default source. Only the identifier kinds offer a strict
// mode that surfaces parse failures as hard errors. The per-kind rules:
//
//   - Int/Float: int, float, numeric string (including "12.0"), empty/nil
//   - BoolInt: bool and int inputs canonicalized to 0/1
//   - String: plain pass-through slot for textual attributes
//   - Time: ordered layout list, first match wins
//   - UUID / UUIDList: identifier values or identifier-formatted strings
//   - IntList: convert items, drop the ones that fail
//   - Object / ObjectList / ObjectMap / StringWrapper: composite kinds
//     built around a Blueprint describing the nested target
//
// # Default isolation
//
// Literal defaults for list and map kinds are re-materialized on every
// Default call, so two entities that never set the attribute can never
// alias the same underlying container.
package field
