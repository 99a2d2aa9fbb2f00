// Package keypath renders the key paths used by flattened export:
// dot-joined segments for nested attributes and bracket indexes for list
// elements, e.g. "days[2].caption".
package keypath

import "strconv"

// Join appends an attribute name to a path prefix. An empty prefix yields
// the name itself.
func Join(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}

// Index renders the path of a list element.
func Index(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}
