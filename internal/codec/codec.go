// Package codec handles value serialization at the cache boundary. The
// storage layers hold opaque bytes; callers hand the manager arbitrary Go
// values and receive them back through a JSON round-trip. Keeping the
// encoding in one place means the stores never need to know what they hold.
package codec

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a value to its cached representation.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	return data, nil
}

// Decode deserializes a cached payload into dest, which must be a non-nil
// pointer. A payload that does not match dest's shape is an error; the
// caller decides whether that counts as a miss.
func Decode(data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("codec: decode: %w", err)
	}
	return nil
}
