package synth

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/forgelab/repoforge/internal/domain"
)

// DefaultFaultRate is the probability that a unit's transform step is
// rendered as a deliberately defective statement
const DefaultFaultRate = 0.10

// Synthesizer renders synthetic source text for a manifest entry. Output is
// structurally representative of the language and role; it is never parsed
// back or required to compile.
type Synthesizer struct {
	rng       *rand.Rand
	faultRate float64
}

// NewSynthesizer creates a synthesizer with the given fault-injection rate
func NewSynthesizer(rng *rand.Rand, faultRate float64) *Synthesizer {
	return &Synthesizer{rng: rng, faultRate: faultRate}
}

// UnitCount is the number of class-like units emitted for a line budget
func UnitCount(lines int) int {
	if n := lines / 50; n > 1 {
		return n
	}
	return 1
}

// FunctionCount is the number of free functions emitted for a line budget,
// in languages that have them
func FunctionCount(lines int) int {
	if n := lines / 30; n > 1 {
		return n
	}
	return 1
}

// Synthesize renders source text for one file
func (s *Synthesizer) Synthesize(language string, role domain.Role, lines int) string {
	switch language {
	case "python":
		return s.python(role, lines)
	case "javascript":
		return s.javascript(lines, false)
	case "typescript":
		return s.javascript(lines, true)
	case "java":
		return s.java(lines)
	case "go":
		return s.golang(lines)
	case "rust":
		return s.rust(lines)
	default:
		return s.generic(lines)
	}
}

// faulty decides whether the next transform step carries an injected defect
func (s *Synthesizer) faulty() bool {
	return s.rng.Float64() < s.faultRate
}

// generic is the fallback for languages without a skeleton: one comment
// line per requested line
func (s *Synthesizer) generic(lines int) string {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		b.WriteString("// Line ")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('\n')
	}
	return b.String()
}
