package domain

type DevelopmentKind int

const (
	KindUnknown DevelopmentKind = iota
	KindWeb
	KindDesktop
	KindLegacy
)

// Wire values of the known kinds.
const (
	TypeWeb     = "web"
	TypeDesktop = "desktop"
	TypeLegacy  = "legacy"

	// TypeAll is the query value meaning "no development type constraint".
	TypeAll = "all"
)

// DevelopmentType is a tagged variant: one of the known kinds, or an unlisted value
// kept verbatim so it round-trips through storage and the API unchanged.
type DevelopmentType struct {
	kind DevelopmentKind
	raw  string
}

var (
	Web     = DevelopmentType{kind: KindWeb, raw: TypeWeb}
	Desktop = DevelopmentType{kind: KindDesktop, raw: TypeDesktop}
	Legacy  = DevelopmentType{kind: KindLegacy, raw: TypeLegacy}
)

// KnownDevelopmentTypes lists the enumerated kinds in display order.
var KnownDevelopmentTypes = []DevelopmentType{Web, Desktop, Legacy}

// ParseDevelopmentType never fails: unrecognized input becomes KindUnknown with the raw value.
func ParseDevelopmentType(s string) DevelopmentType {
	switch s {
	case TypeWeb:
		return Web
	case TypeDesktop:
		return Desktop
	case TypeLegacy:
		return Legacy
	default:
		return DevelopmentType{kind: KindUnknown, raw: s}
	}
}

func (t DevelopmentType) Kind() DevelopmentKind { return t.kind }

func (t DevelopmentType) String() string { return t.raw }

func (t DevelopmentType) IsZero() bool { return t.raw == "" }

func (t DevelopmentType) IsKnown() bool { return t.kind != KindUnknown }

// Label is the short badge text used on cards.
func (t DevelopmentType) Label() string {
	switch t.kind {
	case KindWeb:
		return "Web"
	case KindDesktop:
		return "Escritorio"
	case KindLegacy:
		return "Legado"
	default:
		return "Otro"
	}
}

// LongLabel is the descriptive text used on the detail view and in form selects.
func (t DevelopmentType) LongLabel() string {
	switch t.kind {
	case KindWeb:
		return "Aplicación Web"
	case KindDesktop:
		return "Aplicación de Escritorio"
	case KindLegacy:
		return "Sistema Legado"
	default:
		return "Otro"
	}
}

func (t DevelopmentType) MarshalText() ([]byte, error) {
	return []byte(t.raw), nil
}

func (t *DevelopmentType) UnmarshalText(b []byte) error {
	*t = ParseDevelopmentType(string(b))
	return nil
}
