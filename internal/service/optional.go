package service

import "encoding/json"

// Optional distinguishes the three states an update-payload field can be in:
// omitted (leave the stored value untouched), explicit null (clear a nullable
// column) and present (overwrite). A plain pointer cannot express all three.
type Optional[T any] struct {
	Set   bool // field appeared in the payload
	Valid bool // field carried a non-null value
	Value T
}

// Some returns a present, non-null Optional carrying v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns a present, explicitly-null Optional
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked for fields present in the payload, so Set is
// false exactly when the field was omitted.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON round-trips the tri-state back to JSON (null when not valid)
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
