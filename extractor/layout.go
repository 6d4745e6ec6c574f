// Package extractor converts locally generated Noir proof artifacts into the
// hex-encoded bundle expected by the Soroban contract invocation scripts.
package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Layout holds the expected artifact paths under a proofs directory.
// bb 3.0.0 writes the proof and the verification key into their own
// subdirectories.
type Layout struct {
	Dir        string
	ProofPath  string
	VKPath     string
	VKJSONPath string

	// PublicInputsPath is reserved for a later contract interface; the file
	// is located but never read.
	PublicInputsPath string

	JSONOutputPath  string
	ShellOutputPath string
}

// Locate computes the expected input and output paths under dir. The
// directory is resolved to an absolute path so that missing-file reports
// name exact locations.
func Locate(dir string) Layout {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return Layout{
		Dir:              dir,
		ProofPath:        filepath.Join(dir, "proof", "proof"),
		VKPath:           filepath.Join(dir, "vk", "vk"),
		VKJSONPath:       filepath.Join(dir, "vk.json"),
		PublicInputsPath: filepath.Join(dir, "proof", "public_inputs"),
		JSONOutputPath:   filepath.Join(dir, "soroban_data.json"),
		ShellOutputPath:  filepath.Join(dir, "proof_data.sh"),
	}
}

// MissingInputs returns the required input paths that do not exist, in layout
// order. The public inputs file is optional and never reported.
func (l Layout) MissingInputs() []string {
	var missing []string
	for _, path := range []string{l.ProofPath, l.VKPath, l.VKJSONPath} {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}

// MissingInputsError reports every required artifact that was absent, not
// just the first one found.
type MissingInputsError struct {
	Paths []string
}

func (e *MissingInputsError) Error() string {
	return fmt.Sprintf("missing required files: %s", strings.Join(e.Paths, ", "))
}
