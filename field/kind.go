package field

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindFloat
	KindBoolInt
	KindString
	KindTime
	KindUUID
	KindIntList
	KindUUIDList
	KindStringWrapper
	KindObject
	KindObjectList
	KindObjectMap

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindInt, KindFloat, KindBoolInt, KindString, KindTime, KindUUID:
		return true
	}
}

func (k KindEnum) IsList() bool {
	switch k {
	default:
		return false
	case KindIntList, KindUUIDList, KindObjectList:
		return true
	}
}

// IsComposite reports whether the kind targets a nested entity shape.
// Composite attributes take part in flattened-input import: when their own
// key is absent the whole input mapping is handed to the accessor.
func (k KindEnum) IsComposite() bool {
	switch k {
	default:
		return false
	case KindStringWrapper, KindObject, KindObjectList, KindObjectMap:
		return true
	}
}
