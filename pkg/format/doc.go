// Package format is the catalog of identifier formats randr can generate.
//
// Each Format couples a canonical label, a precomputed entropy estimate and a
// generator that returns one random sample:
//
//	for _, f := range format.All() {
//	    fmt.Println(f.DisplayName(), format.Generate(f))
//	}
//
// All returns the formats ranked by descending entropy. The estimates are
// fixed constants documented next to each catalog entry, not measurements.
//
// Resolve maps user input such as "geo" or "Api (125)" to a Format.
//
// Word-based and charset formats draw from math/rand/v2 and are not suitable
// as secrets. UUIDs come from github.com/google/uuid.
package format
