// internal/writers/doc.go

// Package writers turns match matrices into serialized artifacts.
//
// Design:
//   - Renderers own all presentation knowledge (PNG, SVG, text).
//   - The dotplot core stays domain-only; appcore stays orchestration-only.
//   - Formats are looked up by name in a registry filled from init().
package writers
