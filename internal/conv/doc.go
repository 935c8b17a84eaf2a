// Package conv provides checked integer conversions.
//
// Snapshot headers and arena handles move values between Go's int and the
// fixed-width unsigned types that go on the wire or into handle fields. These
// helpers reject values that would wrap instead of silently truncating them.
// For conversions that are provably in range (loop indices over a slice,
// bounded counters), plain casts are fine.
package conv
