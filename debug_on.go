//go:build dynarrdebug

package dynarr

// debugChecks enables per-access bounds checking in Get/Set and fills raw
// slots with a poison pattern so reads of unconstructed memory surface
// quickly. Build with -tags dynarrdebug.
const debugChecks = true
