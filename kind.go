package filterql

// Kind is the behavioral category of a filter rule. It is used only as a
// lookup key into the type-mapping registry; the concrete validation and
// queryset semantics of each kind live in the backend.
type Kind uint8

// Filter rule kinds.
const (
	KindInvalid Kind = iota
	KindBool
	KindChar
	KindChoice
	KindDate
	KindDateTime
	KindDuration
	KindIsoDateTime
	KindModelChoice
	KindModelMultiChoice
	KindMultiChoice
	KindNumber
	KindTime
	KindUUID
	endKinds
)

var kindNames = [...]string{
	KindInvalid:          "invalid",
	KindBool:             "bool",
	KindChar:             "char",
	KindChoice:           "choice",
	KindDate:             "date",
	KindDateTime:         "datetime",
	KindDuration:         "duration",
	KindIsoDateTime:      "iso_datetime",
	KindModelChoice:      "model_choice",
	KindModelMultiChoice: "model_multi_choice",
	KindMultiChoice:      "multi_choice",
	KindNumber:           "number",
	KindTime:             "time",
	KindUUID:             "uuid",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// Valid reports whether k is a recognized filter rule kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < endKinds
}
