package selector

import "github.com/goliatone/go-inputmask/pkg/mask"

// Poly chooses between a primary mask and affine alternatives by affinity.
//
// The highest score wins and the primary gets no bonus. Exact ties keep the
// currently selected mask; otherwise WholeString ties go to the mask with
// fewer slots and any remaining tie to the earliest declared mask, primary
// first.
type Poly struct {
	primary  *mask.Mask
	affine   []*mask.Mask
	strategy mask.AffinityStrategy
	current  *mask.Mask
}

// NewPoly builds a Poly. Nil alternatives are ignored.
func NewPoly(primary *mask.Mask, affine []*mask.Mask, strategy mask.AffinityStrategy) *Poly {
	p := &Poly{primary: primary, strategy: strategy}
	for _, m := range affine {
		if m != nil {
			p.affine = append(p.affine, m)
		}
	}
	return p
}

// Strategy returns the affinity strategy used for scoring.
func (p *Poly) Strategy() mask.AffinityStrategy { return p.strategy }

// Primary returns the primary mask.
func (p *Poly) Primary() *mask.Mask { return p.primary }

// Current returns the mask chosen by the last Select, or nil before the first
// edit.
func (p *Poly) Current() *mask.Mask { return p.current }

// Reset forgets the current mask.
func (p *Poly) Reset() { p.current = nil }

// Select scores every candidate on in and records the winner.
func (p *Poly) Select(in mask.CaretString) *mask.Mask {
	if len(p.affine) == 0 {
		p.current = p.primary
		return p.primary
	}

	best := p.primary
	bestScore := p.strategy.Score(p.primary, in)
	for _, m := range p.affine {
		score := p.strategy.Score(m, in)
		if score > bestScore || (score == bestScore && p.preferOnTie(m, best)) {
			best, bestScore = m, score
		}
	}

	p.current = best
	return best
}

// Apply selects a mask and applies in to it.
func (p *Poly) Apply(in mask.CaretString) mask.Result {
	return p.Select(in).Apply(in)
}

// preferOnTie reports whether challenger should replace the incumbent when
// both score equally. Candidates are visited in declaration order, so a false
// result keeps the earlier mask.
func (p *Poly) preferOnTie(challenger, incumbent *mask.Mask) bool {
	if p.current != nil {
		if incumbent == p.current {
			return false
		}
		if challenger == p.current {
			return true
		}
	}
	if p.strategy == mask.WholeString {
		return challenger.Slots() < incumbent.Slots()
	}
	return false
}
