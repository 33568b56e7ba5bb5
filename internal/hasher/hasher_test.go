package hasher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	data := []byte("painted pixels")

	full := ContentHash(data, 0)
	assert.Len(t, full, 16)
	assert.Equal(t, full[:8], ContentHash(data, 8))
	assert.Equal(t, full, ContentHash(data, 64))
	assert.NotEqual(t, full, ContentHash([]byte("other pixels"), 0))

	// xxHash64 of the empty input.
	assert.Equal(t, "ef46db3751d8e999", ContentHash(nil, 0))
}

func TestContentHashReader_MatchesContentHash(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 10000)
	got, err := ContentHashReader(bytes.NewReader(data), 16)
	require.NoError(t, err)
	assert.Equal(t, ContentHash(data, 16), got)
}
