// Package analyze turns a natural-language project description into the raw
// field mapping consumed by project.Build. Two interchangeable strategies
// exist: a deterministic keyword analyzer that never fails, and a Gemini
// analyzer that asks the model for structured hints and falls back to the
// keyword result on any failure.
package analyze
