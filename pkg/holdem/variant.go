package holdem

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Variant specifies who may act during a betting round
type Variant string

// Variant constants
const (
	// Strict only allows the first awaited player to act
	Strict Variant = "texas_holdem"

	// Relaxed allows any awaited player to act, in any order
	Relaxed Variant = "async_texas_holdem"
)

var validVariants = map[Variant]bool{
	Strict:  true,
	Relaxed: true,
}

func (v Variant) String() string {
	switch v {
	case Strict:
		return "Texas Hold'em"
	case Relaxed:
		return "Async Texas Hold'em"
	}

	panic(fmt.Sprintf("unknown variant: %s", string(v)))
}

// MarshalJSON encodes to JSON
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(v),
		Name: v.String(),
	})
}

// UnmarshalJSON accepts either the encoded object or the bare identifier
func (v *Variant) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		var obj struct {
			ID string `json:"id"`
		}

		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}

		id = obj.ID
	}

	variant, err := VariantFromString(id)
	if err != nil {
		return err
	}

	*v = variant
	return nil
}

// VariantFromString returns the variant from a string
func VariantFromString(s string) (Variant, error) {
	variant := Variant(strings.ToLower(s))
	if _, ok := validVariants[variant]; ok {
		return variant, nil
	}

	return "", fmt.Errorf("invalid variant: %s", s)
}

// mayAct reports whether the player at {position} of the awaited players may act now
// A negative position means the player is not awaited.
func (v Variant) mayAct(position int) bool {
	if position < 0 {
		return false
	}

	if v == Relaxed {
		return true
	}

	return position == 0
}
