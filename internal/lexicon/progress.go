package lexicon

import "github.com/heartmarshall/lexitron/internal/domain"

const (
	// workPhases is the number of phases sharing the 0..100 range (Reading..Hashing).
	workPhases = 4
	// progressStep is how often, in percent, progress is reported inside a phase.
	progressStep = 5
)

// progress turns per-line work into calls of a domain.ProgressFunc.
type progress struct {
	fn       domain.ProgressFunc
	perUnit  float64
	done     float64
	lastStep int
}

func newProgress(fn domain.ProgressFunc) *progress {
	if fn == nil {
		fn = func(domain.Phase, int) {}
	}
	return &progress{fn: fn}
}

// setUnits fixes the number of work units of one phase, once the line count is known.
func (p *progress) setUnits(n int) {
	if n > 0 {
		p.perUnit = 100.0 / float64(n*workPhases)
	}
}

// start reports the beginning of phase at the phase's share of the range.
func (p *progress) start(phase domain.Phase) {
	p.done = float64(int(phase) * 100 / workPhases)
	p.lastStep = int(p.done) / progressStep
	p.fn(phase, p.percent())
}

// step advances by one unit and reports whenever a progressStep boundary is crossed.
func (p *progress) step(phase domain.Phase) {
	p.done += p.perUnit
	if s := int(p.done) / progressStep; s > p.lastStep {
		p.lastStep = s
		p.fn(phase, p.percent())
	}
}

func (p *progress) finish() {
	p.done = 100
	p.fn(domain.PhaseDone, 100)
}

func (p *progress) percent() int {
	return min(int(p.done), 100)
}
