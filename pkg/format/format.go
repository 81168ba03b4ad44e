package format

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getmockd/randr/internal/id"
)

// Format identifies one identifier generation strategy.
type Format int

// Formats in declaration order. All() returns them ranked by entropy; ties
// keep this order.
const (
	UUID Format = iota
	UUIDv7
	URLSafe
	APIKey
	MemorableName
	HistoricalFigure
	GeographicName
	CharacterName
	PhoneticAlphabet
	RhymingPair
	MusicalTerm
	ScientificElement
	ConstellationName
	SportsReference
	FoodCombination

	numFormats
)

// Default lengths for the charset formats.
const (
	DefaultURLSafeLength = 16
	DefaultAPIKeyLength  = 24
)

type entry struct {
	label    string
	entropy  int
	generate func() string
}

// catalog maps each Format to its label, entropy estimate and generator.
//
// Entropy is ceil(log2(N)) where N is the number of distinct strings the
// generator can produce: pool sizes multiplied together, times the size of
// the numeric or charset suffix space. Multi-draw formats sum the sequence
// counts over each allowed length (e.g. PHONETIC is 26^2 + 26^3).
var catalog = [numFormats]entry{
	UUID:   {"UUID", 122, id.UUID},   // 128 bits minus 6 version/variant bits
	UUIDv7: {"UUID7", 62, id.UUIDv7}, // rand_b only; rand_a holds a sub-millisecond sequence
	URLSafe: {"URL", 96, func() string { // 16 × log2(64)
		return GenerateURLSafe(DefaultURLSafeLength)
	}},
	APIKey: {"API", 125, func() string { // 24 × log2(36) = 124.08
		return GenerateAPIKey(DefaultAPIKeyLength)
	}},
	MemorableName:     {"NAME", 17, memorableName},              // 35 × 35 × 99
	HistoricalFigure:  {"HISTORICAL", 16, historicalFigure},     // 39 × 999
	GeographicName:    {"GEO", 21, geographicName},              // 41 distinct × 36^3
	CharacterName:     {"CHARACTER", 22, characterName},         // 45 × 36^3 = 21.002
	PhoneticAlphabet:  {"PHONETIC", 21, phoneticAlphabet},       // (26^2 + 26^3) × 99
	RhymingPair:       {"RHYME", 12, rhymingPair},               // 21 × 99
	MusicalTerm:       {"MUSIC", 17, musicalTerm},               // (30 + 30^2) × 99
	ScientificElement: {"ELEMENT", 17, scientificElement},       // (31 + 31^2) × 99
	ConstellationName: {"CONSTELLATION", 21, constellationName}, // 26 × 36^3
	SportsReference:   {"SPORTS", 12, sportsReference},          // 31 × 99
	FoodCombination:   {"FOOD", 17, foodCombination},            // 24 × 32 × 99
}

// ranked holds every format sorted by descending entropy, stable on
// declaration order.
var ranked = func() []Format {
	out := make([]Format, 0, numFormats)
	for f := Format(0); f < numFormats; f++ {
		out = append(out, f)
	}
	slices.SortStableFunc(out, func(a, b Format) int {
		return catalog[b].entropy - catalog[a].entropy
	})
	return out
}()

// All returns every format ordered by descending entropy. Formats with equal
// entropy keep their declaration order. The returned slice is a copy.
func All() []Format {
	return slices.Clone(ranked)
}

// Names returns the display name of every format in All() order.
func Names() []string {
	names := make([]string, 0, len(ranked))
	for _, f := range ranked {
		names = append(names, f.DisplayName())
	}
	return names
}

// Valid reports whether f is one of the declared formats.
func (f Format) Valid() bool {
	return f >= 0 && f < numFormats
}

func (f Format) entry() entry {
	if !f.Valid() {
		panic(fmt.Sprintf("format: unknown format %d", int(f)))
	}
	return catalog[f]
}

// Label returns the canonical short label, e.g. "GEO".
func (f Format) Label() string {
	return f.entry().label
}

// Entropy returns the estimated entropy of one sample in bits.
func (f Format) Entropy() int {
	return f.entry().entropy
}

// DisplayName returns the label annotated with its entropy, e.g. "UUID (122)".
func (f Format) DisplayName() string {
	e := f.entry()
	return fmt.Sprintf("%s (%d)", e.label, e.entropy)
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return catalog[f].label
}

// MarshalText encodes the format as its canonical label.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("format: unknown format %d", int(f))
	}
	return []byte(catalog[f].label), nil
}

// Generate produces one sample for f.
func (f Format) Generate() string {
	return f.entry().generate()
}

// Generate produces one sample for f.
func Generate(f Format) string {
	return f.Generate()
}

// Samples produces n independent samples for f.
// Panics if n is not positive.
func Samples(f Format, n int) []string {
	if n <= 0 {
		panic(fmt.Sprintf("format: sample count must be positive, got %d", n))
	}
	gen := f.entry().generate
	out := make([]string, n)
	for i := range out {
		out[i] = gen()
	}
	return out
}

// GenerateURLSafe returns a token of the given length over the 64-symbol
// URL-safe alphabet.
func GenerateURLSafe(length int) string {
	return id.URLSafe(length)
}

// GenerateAPIKey returns a key of the given length over uppercase letters and
// digits.
func GenerateAPIKey(length int) string {
	return id.APIKey(length)
}

func join(parts ...string) string {
	return strings.Join(parts, "-")
}

func memorableName() string {
	return join(id.Pick(memorableAdjectives), id.Pick(memorableNouns), id.Number(1, 99))
}

func historicalFigure() string {
	return join(id.Pick(historicalFigures), id.Number(1, 999))
}

func geographicName() string {
	return join(id.Pick(geographicNames), id.Suffix())
}

func characterName() string {
	return join(id.Pick(characterNames), id.Suffix())
}

func phoneticAlphabet() string {
	return join(append(id.PickN(phoneticWords, 2, 3), id.Number(1, 99))...)
}

func rhymingPair() string {
	p := id.Pick(rhymePairs)
	return join(p[0], p[1], id.Number(1, 99))
}

func musicalTerm() string {
	return join(append(id.PickN(musicalTerms, 1, 2), id.Number(1, 99))...)
}

func scientificElement() string {
	return join(append(id.PickN(scientificElements, 1, 2), id.Number(1, 99))...)
}

func constellationName() string {
	return join(id.Pick(constellationNames), id.Suffix())
}

func sportsReference() string {
	return join(id.Pick(sportsTerms), id.Number(1, 99))
}

func foodCombination() string {
	return join(id.Pick(foodAdjectives), id.Pick(foods), id.Number(1, 99))
}
