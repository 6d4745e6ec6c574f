package extractor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// hexPreviewLen is how much of each hex string the summary shows.
const hexPreviewLen = 64

// Reporter renders pipeline progress for the operator. Everything goes to a
// single writer so all diagnostics stay on standard output.
type Reporter struct {
	out  io.Writer
	log  zerolog.Logger
	step int
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out: out,
		log: zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).With().Timestamp().Logger(),
	}
}

func (r *Reporter) Locating(layout Layout) {
	fmt.Fprintln(r.out, "=== Extracting Proof Data for Soroban ===")
	fmt.Fprintf(r.out, "Proofs directory: %s\n", layout.Dir)
}

// MissingInputs prints every absent required path and the build step that
// produces them.
func (r *Reporter) MissingInputs(err *MissingInputsError) {
	fmt.Fprintln(r.out, "\nERROR: Missing required files:")
	for _, path := range err.Paths {
		fmt.Fprintf(r.out, "  - %s\n", path)
	}
	fmt.Fprintln(r.out, "\nRun './scripts/build_noir.sh' first to generate these files.")
}

func (r *Reporter) ProofEncoded(artifact EncodedArtifact) {
	r.stepHeader("Converting proof to hex...")
	fmt.Fprintf(r.out, "   Proof size: %d bytes\n", artifact.SizeBytes)
}

func (r *Reporter) VKEncoded(artifact EncodedArtifact) {
	r.stepHeader("Converting verification key to hex...")
	fmt.Fprintf(r.out, "   VK size: %d bytes\n", artifact.SizeBytes)
}

func (r *Reporter) MetadataLoaded(meta json.RawMessage) {
	r.stepHeader("Reading VK JSON...")
	if n, ok := MetadataArrayLen(meta); ok {
		fmt.Fprintf(r.out, "   VK JSON fields: %d\n", n)
	} else {
		fmt.Fprintln(r.out, "   VK JSON fields: object")
	}
}

func (r *Reporter) JSONWritten(path string) {
	r.stepHeader(fmt.Sprintf("Data saved to: %s", path))
}

func (r *Reporter) ShellExportsWritten(path string) {
	r.step++
	fmt.Fprintf(r.out, "%d. Shell exports saved to: %s\n", r.step, path)
}

// Summary prints truncated hex previews and the exact values an operator
// passes to the downstream Stellar CLI invocation.
func (r *Reporter) Summary(bundle Bundle) {
	fmt.Fprintln(r.out, "\n=== Summary ===")
	fmt.Fprintf(r.out, "Proof (first %d chars): %s...\n", hexPreviewLen, preview(bundle.Proof.Hex))
	fmt.Fprintf(r.out, "VK (first %d chars): %s...\n", hexPreviewLen, preview(bundle.VK.Hex))

	fmt.Fprintln(r.out, "\n=== For Stellar CLI Usage ===")
	fmt.Fprintln(r.out, "To use with stellar contract invoke:")
	fmt.Fprintf(r.out, "  --proof_blob \"%s\"\n", bundle.Proof.Hex)
	fmt.Fprintln(r.out, "  --vk_json (use content from vk.json)")

	fmt.Fprintln(r.out, "\nNext steps:")
	fmt.Fprintln(r.out, "  1. Run: ./scripts/build_soroban.sh")
	fmt.Fprintln(r.out, "  2. Run: ./scripts/deploy_testnet.sh")
}

// Failure reports a terminal pipeline error.
func (r *Reporter) Failure(err error) {
	r.log.Error().Err(err).Msg("proof data extraction failed")
}

func (r *Reporter) stepHeader(msg string) {
	r.step++
	fmt.Fprintf(r.out, "\n%d. %s\n", r.step, msg)
}

func preview(s string) string {
	if len(s) > hexPreviewLen {
		return s[:hexPreviewLen]
	}
	return s
}
