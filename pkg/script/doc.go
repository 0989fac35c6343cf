// Package script renders prompt requests into AppleScript source.
//
// Rendering is pure: no I/O, no environment lookups, and equal requests always
// produce byte-identical scripts. Every piece of caller text goes through Quote,
// which is the only place string literals are produced.
package script
