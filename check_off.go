//go:build gridunchecked

package grid

const checksEnabled = false
