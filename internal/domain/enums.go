package domain

// Phase identifies a step of the lexicon build, in execution order.
type Phase int

const (
	PhaseReading Phase = iota
	PhaseNormalizing
	PhaseSorting
	PhaseHashing
	PhaseDone
)

var phaseNames = [...]string{"Reading", "Normalizing", "Sorting", "Hashing", "Done"}

func (p Phase) String() string {
	if !p.IsValid() {
		return "Unknown"
	}
	return phaseNames[p]
}

func (p Phase) IsValid() bool {
	return p >= PhaseReading && p <= PhaseDone
}

// ProgressFunc observes build progress. percent is cumulative over the whole
// build, in 0..100. It is called synchronously and must not block for long.
type ProgressFunc func(phase Phase, percent int)

// POS is a WordNet part-of-speech code.
type POS string

const (
	POSNoun         POS = "n"
	POSVerb         POS = "v"
	POSAdjective    POS = "a"
	POSAdjSatellite POS = "s"
	POSAdverb       POS = "r"
)

// AllPOS lists every part of speech a word may be lemmatized under, in lookup order.
var AllPOS = []POS{POSNoun, POSVerb, POSAdjective, POSAdjSatellite, POSAdverb}

func (p POS) String() string { return string(p) }

func (p POS) IsValid() bool {
	switch p {
	case POSNoun, POSVerb, POSAdjective, POSAdjSatellite, POSAdverb:
		return true
	}
	return false
}

// Label returns the short display category used in relation records.
func (p POS) Label() string {
	switch p {
	case POSNoun:
		return "N"
	case POSVerb:
		return "V"
	case POSAdjective:
		return "Adj"
	case POSAdjSatellite:
		return "Sat"
	case POSAdverb:
		return "Adv"
	}
	return string(p)
}
