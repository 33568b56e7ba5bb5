package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to hexLen (0 = full 16 chars). Output filenames use the
// first 8 chars; the manifest records 16.
func ContentHash(data []byte, hexLen int) string {
	return encode(xxhash.Sum64(data), hexLen)
}

// ContentHashReader computes the same hash from a reader, streaming.
// validate uses it to check files on disk against the manifest.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return encode(h.Sum64(), hexLen), nil
}

func encode(v uint64, hexLen int) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	full := hex.EncodeToString(b[:])
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
