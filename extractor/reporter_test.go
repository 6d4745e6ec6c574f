package extractor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterMissingInputsListsEveryPath(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.MissingInputs(&MissingInputsError{Paths: []string{"/p/proof/proof", "/p/vk/vk", "/p/vk.json"}})

	out := buf.String()
	assert.Contains(t, out, "ERROR: Missing required files:")
	assert.Contains(t, out, "  - /p/proof/proof")
	assert.Contains(t, out, "  - /p/vk/vk")
	assert.Contains(t, out, "  - /p/vk.json")
	assert.Contains(t, out, "./scripts/build_noir.sh")
}

func TestReporterSummaryTruncatesPreviews(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	longHex := strings.Repeat("ab", 100)
	r.Summary(Bundle{
		Proof: EncodedArtifact{Hex: longHex, SizeBytes: 100},
		VK:    EncodedArtifact{Hex: "ffee", SizeBytes: 2},
	})

	out := buf.String()
	assert.Contains(t, out, "Proof (first 64 chars): "+longHex[:64]+"...")
	assert.Contains(t, out, "VK (first 64 chars): ffee...")
	assert.Contains(t, out, "--proof_blob \""+longHex+"\"")
}

func TestReporterNumbersStepsInOrder(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Locating(Locate(t.TempDir()))
	r.ProofEncoded(EncodedArtifact{Hex: "01", SizeBytes: 1})
	r.VKEncoded(EncodedArtifact{Hex: "02", SizeBytes: 1})
	r.MetadataLoaded([]byte(`["a"]`))
	r.JSONWritten("/p/soroban_data.json")
	r.ShellExportsWritten("/p/proof_data.sh")

	out := buf.String()
	require.Contains(t, out, "=== Extracting Proof Data for Soroban ===")
	assert.Contains(t, out, "1. Converting proof to hex...")
	assert.Contains(t, out, "2. Converting verification key to hex...")
	assert.Contains(t, out, "3. Reading VK JSON...")
	assert.Contains(t, out, "   VK JSON fields: 1")
	assert.Contains(t, out, "4. Data saved to: /p/soroban_data.json")
	assert.Contains(t, out, "5. Shell exports saved to: /p/proof_data.sh")
}
