package checksum

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// FromReader fingerprints a stream with xxhash64 and returns it hex encoded.
func FromReader(r io.Reader) (string, error) {
	hasher := xxhash.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", fmt.Errorf("failed to copy content to hasher: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// FromBytes fingerprints an in-memory payload.
func FromBytes(b []byte) string {
	digest := xxhash.New()
	digest.Write(b)

	return hex.EncodeToString(digest.Sum(nil))
}
