//go:build !dynarrdebug

package dynarr

// debugChecks gates per-access bounds checking and raw-memory poisoning.
// It is a constant so the checks compile out entirely in normal builds.
const debugChecks = false
