// Package generate materializes selected catalog entries into a destination
// directory. It validates the destination before any write (rejecting parent
// directory traversal on the raw path), applies the conflict policy,
// scaffolds the category tree, copies verbatim entries byte-for-byte,
// renders renderable entries through the Renderer, and reports every written
// path in a Manifest. A fatal materialization error aborts the run naming
// the offending entry; already-written files are left for the caller to
// clean up.
package generate
