package extractor

import (
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
)

// EncodedArtifact is the hex form of a binary artifact together with its
// original byte count.
type EncodedArtifact struct {
	Hex       string
	SizeBytes int
}

// EncodeFile reads the file at path in one pass and returns its lowercase hex
// encoding. Proof and key artifacts are kilobytes, so the whole file is held
// in memory.
func EncodeFile(path string) (EncodedArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EncodedArtifact{}, errors.Wrapf(err, "failed to read artifact %s", path)
	}
	return EncodedArtifact{
		Hex:       hex.EncodeToString(data),
		SizeBytes: len(data),
	}, nil
}
