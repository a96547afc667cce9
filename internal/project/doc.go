// Package project defines the validated project configuration that drives
// catalog selection and generation. Build turns a loosely structured field
// mapping (from the analyzer or a config file) into an immutable Config,
// validating against an embedded JSON Schema and reporting every violated
// field at once.
package project
