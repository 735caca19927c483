package domain

type VoteKind uint8

const (
	VoteNone VoteKind = iota
	VoteValue
	VotePendingPair
)

// Vote is a tagged union: no vote, a concrete card label, or a pending pair
// of labels that is settled to one of them on reveal.
// The zero value is no vote.
type Vote struct {
	kind  VoteKind
	label string
	alt   string
}

func NoVote() Vote { return Vote{} }

func ValueVote(label string) Vote { return Vote{kind: VoteValue, label: label} }

func PairVote(a, b string) Vote { return Vote{kind: VotePendingPair, label: a, alt: b} }

func (v Vote) Kind() VoteKind { return v.kind }

func (v Vote) IsNone() bool { return v.kind == VoteNone }

// Label returns the concrete card label. ok is false unless the vote is a Value.
func (v Vote) Label() (label string, ok bool) {
	if v.kind != VoteValue {
		return "", false
	}
	return v.label, true
}

// Resolve settles a pending pair using pick, which must return 0 or 1.
// Any other vote is returned unchanged.
func (v Vote) Resolve(pick func() int) Vote {
	if v.kind != VotePendingPair {
		return v
	}
	if pick() == 0 {
		return ValueVote(v.label)
	}
	return ValueVote(v.alt)
}
