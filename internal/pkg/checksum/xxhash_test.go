package checksum

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReaderMatchesFromBytes(t *testing.T) {
	payload := []byte("employee_id;date;punch_in;punch_out\nEMP001;2024-05-02;09:00;18:00\n")

	fromReader, err := FromReader(bytes.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, FromBytes(payload), fromReader)
	assert.Len(t, fromReader, 16)
}

func TestFromBytesDiffersPerContent(t *testing.T) {
	assert.NotEqual(t, FromBytes([]byte("a")), FromBytes([]byte("b")))
	assert.Equal(t, FromBytes(nil), FromBytes([]byte{}))
}
