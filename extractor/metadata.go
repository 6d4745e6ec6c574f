package extractor

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// LoadMetadata reads the verification key JSON description. The value is
// validated as JSON but otherwise passed through untouched; no fields are
// inspected.
func LoadMetadata(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read VK JSON %s", path)
	}
	var meta json.RawMessage
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "invalid VK JSON in %s", path)
	}
	return meta, nil
}

// MetadataArrayLen returns the element count when meta is a JSON array. For
// any other JSON value ok is false.
func MetadataArrayLen(meta json.RawMessage) (n int, ok bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(meta, &elems); err != nil {
		return 0, false
	}
	return len(elems), true
}
