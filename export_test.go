package grid

// ChecksEnabled exposes the build-tag controlled precondition switch to the
// external test package.
const ChecksEnabled = checksEnabled
