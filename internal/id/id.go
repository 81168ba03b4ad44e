package id

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Alphabets used by the charset generators.
const (
	// URLSafeCharset is the 64-symbol RFC 4648 URL-safe alphabet.
	URLSafeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

	// APIKeyCharset is uppercase letters and digits (36 symbols).
	APIKeyCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// SuffixCharset is lowercase letters and digits (36 symbols).
	SuffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// SuffixLength is the number of characters produced by Suffix.
const SuffixLength = 3

// UUID generates a UUID v4 (random).
// Returns a string in the format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
func UUID() string {
	return uuid.New().String()
}

// UUIDv7 generates a time-ordered UUID v7.
// The first 48 bits hold the Unix timestamp in milliseconds, so values taken
// in sequence sort by creation time.
func UUIDv7() string {
	u, err := uuid.NewV7()
	if err != nil {
		panic(fmt.Sprintf("id: generate uuid v7: %v", err))
	}
	return u.String()
}

// FromCharset generates a string of the given length where every position is
// drawn independently and uniformly from charset.
// Panics if length is not positive or charset is empty.
func FromCharset(length int, charset string) string {
	if length <= 0 {
		panic(fmt.Sprintf("id: length must be positive, got %d", length))
	}
	if charset == "" {
		panic("id: empty charset")
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}

// URLSafe generates a random string over the 64-symbol URL-safe alphabet.
func URLSafe(length int) string {
	return FromCharset(length, URLSafeCharset)
}

// APIKey generates a random uppercase alphanumeric string.
func APIKey(length int) string {
	return FromCharset(length, APIKeyCharset)
}

// Suffix generates a short lowercase alphanumeric tag, e.g. "x7k".
func Suffix() string {
	return FromCharset(SuffixLength, SuffixCharset)
}

// Number returns a uniform integer in [lo, hi] as decimal text.
// Panics if lo > hi.
func Number(lo, hi int) string {
	if lo > hi {
		panic(fmt.Sprintf("id: invalid range [%d, %d]", lo, hi))
	}
	return strconv.Itoa(lo + rand.IntN(hi-lo+1))
}

// Pick returns one element of pool chosen uniformly at random.
// Panics if pool is empty.
func Pick[T any](pool []T) T {
	if len(pool) == 0 {
		panic("id: pick from empty pool")
	}
	return pool[rand.IntN(len(pool))]
}

// PickN draws a count uniformly from [lo, hi], then picks that many elements
// of pool independently with replacement.
// Panics if pool is empty, lo < 1 or lo > hi.
func PickN[T any](pool []T, lo, hi int) []T {
	if lo < 1 || lo > hi {
		panic(fmt.Sprintf("id: invalid draw count range [%d, %d]", lo, hi))
	}
	n := lo + rand.IntN(hi-lo+1)
	out := make([]T, n)
	for i := range out {
		out[i] = Pick(pool)
	}
	return out
}
