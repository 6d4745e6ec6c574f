package extractor

import "encoding/json"

// Observer receives structured results as the pipeline advances. The Reporter
// is the production implementation; tests can substitute their own.
type Observer interface {
	Locating(layout Layout)
	ProofEncoded(artifact EncodedArtifact)
	VKEncoded(artifact EncodedArtifact)
	MetadataLoaded(meta json.RawMessage)
	JSONWritten(path string)
	ShellExportsWritten(path string)
	Summary(bundle Bundle)
}

// Run executes the extraction pipeline against the proofs directory rooted at
// dir: locate inputs, hex-encode the proof and verification key, load the VK
// JSON description, then write the JSON bundle and the shell export file.
//
// When any required input is absent Run returns a *MissingInputsError naming
// every absent path, before any file content is read and before any output is
// written. Every other failure is terminal for the invocation; once encoding
// has started failing no output file is written.
func Run(dir string, obs Observer) error {
	layout := Locate(dir)
	obs.Locating(layout)

	if missing := layout.MissingInputs(); len(missing) > 0 {
		return &MissingInputsError{Paths: missing}
	}

	proof, err := EncodeFile(layout.ProofPath)
	if err != nil {
		return err
	}
	obs.ProofEncoded(proof)

	vk, err := EncodeFile(layout.VKPath)
	if err != nil {
		return err
	}
	obs.VKEncoded(vk)

	meta, err := LoadMetadata(layout.VKJSONPath)
	if err != nil {
		return err
	}
	obs.MetadataLoaded(meta)

	bundle := Bundle{Proof: proof, VK: vk, VKMetadata: meta}

	if err := bundle.WriteJSON(layout.JSONOutputPath); err != nil {
		return err
	}
	obs.JSONWritten(layout.JSONOutputPath)

	if err := bundle.WriteShellExports(layout.ShellOutputPath); err != nil {
		return err
	}
	obs.ShellExportsWritten(layout.ShellOutputPath)

	obs.Summary(bundle)
	return nil
}
