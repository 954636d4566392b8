package domain

import (
	"bytes"
	"fmt"
)

// Preference is a tri-state filter preference. The zero value is Unset,
// so absent JSON fields need no special handling. An explicit three-valued
// type (rather than *bool) keeps asymmetric boost rules visible as branches.
type Preference int

const (
	// Unset means the caller expressed no preference.
	Unset Preference = iota
	// Prefer means the caller wants the attribute present.
	Prefer
	// Avoid means the caller wants the attribute absent.
	Avoid
)

// IsSet reports whether the caller expressed any preference.
func (p Preference) IsSet() bool { return p != Unset }

func (p Preference) String() string {
	switch p {
	case Prefer:
		return "prefer"
	case Avoid:
		return "avoid"
	default:
		return "unset"
	}
}

var jsonNull = []byte("null")

// UnmarshalJSON decodes the wire tri-state: true → Prefer, false → Avoid,
// null → Unset.
func (p *Preference) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, jsonNull):
		*p = Unset
	case bytes.Equal(data, []byte("true")):
		*p = Prefer
	case bytes.Equal(data, []byte("false")):
		*p = Avoid
	default:
		return fmt.Errorf("preference must be true, false or null, got %s", data)
	}
	return nil
}

// MarshalJSON encodes back to the boolean|null wire form.
func (p Preference) MarshalJSON() ([]byte, error) {
	switch p {
	case Prefer:
		return []byte("true"), nil
	case Avoid:
		return []byte("false"), nil
	default:
		return jsonNull, nil
	}
}
