package chart

import "fmt"

// Kind is one of the six chart kinds. The zero Kind is not a valid chart.
type Kind int

const (
	KindUnknown Kind = iota
	KindLine
	KindSingleBar
	KindGroupBar
	KindStackBar
	KindGroupLine
	KindHistogram
)

var kindTags = map[Kind]string{
	KindLine:      "LINE",
	KindSingleBar: "SINGLE_BAR",
	KindGroupBar:  "GROUP_BAR",
	KindStackBar:  "STACK_BAR",
	KindGroupLine: "GROUP_LINE",
	KindHistogram: "HISTOGRAM",
}

// Kinds lists every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindLine, KindSingleBar, KindGroupBar, KindStackBar, KindGroupLine, KindHistogram}
}

func (k Kind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return "UNKNOWN"
}

// ParseKind maps a wire tag ("LINE", "SINGLE_BAR", ...) to a Kind.
func ParseKind(tag string) (Kind, error) {
	for k, t := range kindTags {
		if t == tag {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindTags[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ============================================================================
// UNIT
// ============================================================================

// Unit selects how values are printed on axes and in hover titles.
type Unit string

const (
	UnitNone    Unit = ""
	UnitPercent Unit = "%"
	UnitDollar  Unit = "$"
)

// ParseUnit accepts "", "%" and "$".
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case UnitNone, UnitPercent, UnitDollar:
		return u, nil
	}
	return UnitNone, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}
