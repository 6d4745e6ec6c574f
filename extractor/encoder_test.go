package extractor

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proof")
	writeFile(t, path, []byte{0x01, 0x02, 0xFF})

	artifact, err := EncodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0102ff", artifact.Hex)
	assert.Equal(t, 3, artifact.SizeBytes)
}

func TestEncodeFileRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xDE, 0xAD, 0xBE, 0xEF},
		[]byte("not actually binary"),
		{0x00, 0x01, 0x7F, 0x80, 0xFE, 0xFF},
	}
	for _, input := range inputs {
		path := filepath.Join(t.TempDir(), "artifact")
		writeFile(t, path, input)

		artifact, err := EncodeFile(path)
		require.NoError(t, err)

		decoded, err := hex.DecodeString(artifact.Hex)
		require.NoError(t, err)
		assert.Equal(t, input, decoded)
		assert.Equal(t, artifact.SizeBytes, len(artifact.Hex)/2)
	}
}

func TestEncodeFileUnreadable(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
