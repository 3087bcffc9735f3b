package crypto

import (
	"encoding/base64"
	"fmt"

	"sealchat/internal/domain"
)

// B64 encodes b with the URL-safe unpadded alphabet used on the wire.
func B64(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

// B64Decode decodes a wire field. Malformed input surfaces as
// domain.ErrEncoding.
func B64Decode(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("base64: %w", domain.ErrEncoding)
	}
	return b, nil
}
