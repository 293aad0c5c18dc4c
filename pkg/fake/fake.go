// Package fake generates random but plausible field values for seeding.
//
// All randomness used by the factories flows through the Values interface, so
// the generation logic stays decoupled from the RNG behind it and tests can
// pin a seed for reproducible runs:
//
//	src := fake.NewSource(42)
//	src.Name()                  // "Priya Sharma"
//	src.DecimalBetween(5, 500)  // 217.49
//	src.Token("??###??")        // "QK402ZN"
package fake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Values is the value-distribution strategy consumed by the entity factories.
type Values interface {
	Name() string
	CompanyName() string
	Email(name string) string
	Phone() string
	Address() string
	Word() string
	Sentence() string
	Paragraph(sentences int) string
	IntBetween(lo, hi int) int
	DecimalBetween(lo, hi float64) float64
	Token(pattern string) string
	Pick(options []string) string
	Bool(probability float64) bool
	TimeBetween(from, to time.Time) time.Time
	Perm(n int) []int
}

// Source is the default Values implementation over math/rand.
type Source struct {
	r *rand.Rand
}

// NewSource returns a Source seeded with the given value.
// Pass 0 to seed from the current time.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{r: rand.New(rand.NewSource(seed))}
}

var (
	firstNames = []string{
		"James", "Maria", "Wei", "Aisha", "Carlos", "Priya", "Tom", "Elena",
		"Noah", "Fatima", "Lucas", "Hana", "Oliver", "Sofia", "Ethan", "Amara",
		"Daniel", "Ingrid", "Ravi", "Chloe",
	}
	lastNames = []string{
		"Smith", "Garcia", "Chen", "Khan", "Rodriguez", "Sharma", "Miller",
		"Petrov", "Brown", "Hassan", "Silva", "Kim", "Wilson", "Rossi",
		"Anderson", "Okafor", "Taylor", "Larsen", "Patel", "Dubois",
	}
	companyStems = []string{
		"Apex", "Blue Ridge", "Cascade", "Delta", "Evergreen", "Frontier",
		"Golden Gate", "Horizon", "Ironwood", "Juniper", "Keystone", "Lakeside",
		"Meridian", "Northwind", "Oakline", "Pinnacle",
	}
	companySuffixes = []string{
		"Supplies", "Trading Co", "Distribution", "Wholesale", "Industries",
		"Logistics", "Imports", "Group",
	}
	streetNames = []string{
		"Maple", "Oak", "Cedar", "Elm", "Pine", "Birch", "Willow", "Ash",
		"Chestnut", "Sycamore",
	}
	streetTypes = []string{"St", "Ave", "Blvd", "Rd", "Ln", "Dr"}
	cities      = []string{
		"Springfield", "Riverton", "Fairview", "Clayton", "Milford",
		"Georgetown", "Arlington", "Salem", "Ashland", "Burlington",
	}
	emailDomains = []string{"example.com", "example.org", "example.net", "mail.test"}
	loremWords   = []string{
		"premium", "durable", "compact", "versatile", "classic", "modern",
		"reliable", "elegant", "portable", "sturdy", "lightweight", "ergonomic",
		"refined", "essential", "practical", "robust", "sleek", "quality",
		"everyday", "signature",
	}
)

func (s *Source) Name() string {
	return s.Pick(firstNames) + " " + s.Pick(lastNames)
}

func (s *Source) CompanyName() string {
	return s.Pick(companyStems) + " " + s.Pick(companySuffixes)
}

// Email builds an address from a display name plus a random suffix
// so repeated names still produce distinct addresses.
func (s *Source) Email(name string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@%s", local, s.IntBetween(1, 9999), s.Pick(emailDomains))
}

func (s *Source) Phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d",
		s.IntBetween(200, 999), s.IntBetween(200, 999), s.IntBetween(0, 9999))
}

func (s *Source) Address() string {
	return fmt.Sprintf("%d %s %s, %s",
		s.IntBetween(1, 9999), s.Pick(streetNames), s.Pick(streetTypes), s.Pick(cities))
}

func (s *Source) Word() string {
	return s.Pick(loremWords)
}

func (s *Source) Sentence() string {
	n := s.IntBetween(5, 10)
	words := make([]string, n)
	for i := range words {
		words[i] = s.Word()
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ") + "."
}

func (s *Source) Paragraph(sentences int) string {
	if sentences < 1 {
		sentences = 1
	}
	parts := make([]string, sentences)
	for i := range parts {
		parts[i] = s.Sentence()
	}
	return strings.Join(parts, " ")
}

// IntBetween returns a random int in [lo, hi] inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// DecimalBetween returns a random amount in [lo, hi] rounded to 2 decimals.
func (s *Source) DecimalBetween(lo, hi float64) float64 {
	if hi <= lo {
		return Round2(lo)
	}
	return Round2(lo + s.r.Float64()*(hi-lo))
}

// Token expands a pattern where '?' becomes an uppercase letter and
// '#' a digit; every other rune passes through unchanged.
func (s *Source) Token(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, c := range pattern {
		switch c {
		case '?':
			b.WriteByte(byte('A' + s.r.Intn(26)))
		case '#':
			b.WriteByte(byte('0' + s.r.Intn(10)))
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func (s *Source) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.r.Intn(len(options))]
}

// Bool returns true with the given probability (0 → never, 1 → always).
func (s *Source) Bool(probability float64) bool {
	return s.r.Float64() < probability
}

// TimeBetween returns a random instant in [from, to].
func (s *Source) TimeBetween(from, to time.Time) time.Time {
	if !to.After(from) {
		return from
	}
	delta := to.Sub(from)
	return from.Add(time.Duration(s.r.Int63n(int64(delta))))
}

// Perm returns a random permutation of [0, n), used for sampling
// without replacement.
func (s *Source) Perm(n int) []int {
	return s.r.Perm(n)
}

// Round2 rounds an amount to cents. Money in this app is float64 kept at
// two decimal places; every arithmetic result passes through here.
func Round2(v float64) float64 {
	if v < 0 {
		return float64(int64(v*100-0.5)) / 100
	}
	return float64(int64(v*100+0.5)) / 100
}
