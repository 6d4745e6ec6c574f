package extractor

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Bundle is the combined output of one extraction run. It is assembled once
// and never mutated; writing it twice against unchanged inputs produces
// byte-identical files.
type Bundle struct {
	Proof      EncodedArtifact
	VK         EncodedArtifact
	VKMetadata json.RawMessage
}

type bundleJSON struct {
	ProofHex       string          `json:"proof_hex"`
	ProofSizeBytes int             `json:"proof_size_bytes"`
	VKHex          string          `json:"vk_hex"`
	VKSizeBytes    int             `json:"vk_size_bytes"`
	VKJSON         json.RawMessage `json:"vk_json"`
}

// WriteJSON writes the bundle as an indented JSON document to path,
// overwriting any previous run's output.
func (b Bundle) WriteJSON(path string) error {
	doc := bundleJSON{
		ProofHex:       b.Proof.Hex,
		ProofSizeBytes: b.Proof.SizeBytes,
		VKHex:          b.VK.Hex,
		VKSizeBytes:    b.VK.SizeBytes,
		VKJSON:         b.VKMetadata,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal proof data")
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// WriteShellExports writes the bundle as a shell-sourceable export file to
// path. Every value is double-quoted so embedded characters stay safe when
// the file is sourced.
func (b Bundle) WriteShellExports(path string) error {
	var sb strings.Builder
	sb.WriteString("#!/bin/bash\n")
	sb.WriteString("# Auto-generated proof data for Soroban deployment\n\n")
	fmt.Fprintf(&sb, "export PROOF_HEX=\"%s\"\n", b.Proof.Hex)
	fmt.Fprintf(&sb, "export PROOF_SIZE=\"%d\"\n", b.Proof.SizeBytes)
	fmt.Fprintf(&sb, "export VK_HEX=\"%s\"\n", b.VK.Hex)
	fmt.Fprintf(&sb, "export VK_SIZE=\"%d\"\n", b.VK.SizeBytes)

	if err := os.WriteFile(path, []byte(sb.String()), 0o755); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
