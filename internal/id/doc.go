// Package id provides the random primitives behind every randr format.
//
// It is the single place where randomness is drawn in the codebase:
//
//   - UUID: standard UUID v4 (random), delegated to github.com/google/uuid
//   - UUIDv7: time-ordered UUID v7, delegated to github.com/google/uuid
//   - FromCharset: fixed-length strings over an arbitrary alphabet, with the
//     URLSafe, APIKey and Suffix shorthands
//   - Pick / PickN: uniform draws with replacement from a word pool
//   - Number: inclusive-range decimal suffixes
//
// Draws use math/rand/v2's top-level source. It is process-local and safe for
// concurrent use but is not cryptographically secure; nothing produced here
// should be used as a secret.
//
// Invalid arguments (empty pools, non-positive lengths, inverted ranges) are
// programming errors and panic. They never come from user input.
package id
