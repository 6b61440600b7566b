package h5io

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// EncodeASCII converts s to its ASCII byte representation, the wire form
// every SDA string attribute and character record is stored in. Non-ASCII
// content is a hard error rather than a silent lossy cast, per spec.
func EncodeASCII(s string) ([]byte, error) {
	enc := charmap.ASCII.NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("h5io: %q is not ASCII-encodable: %w", s, err)
	}
	return out, nil
}

// DecodeASCII decodes b (raw ASCII bytes as stored in an attribute or a
// character dataset) back into a Go string.
func DecodeASCII(b []byte) (string, error) {
	dec := charmap.ASCII.NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("h5io: invalid ASCII data: %w", err)
	}
	return string(out), nil
}
