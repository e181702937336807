//go:build !gridunchecked

package grid

// checksEnabled turns precondition violations into panics.
// Build with -tags gridunchecked to compile the checks out.
const checksEnabled = true
