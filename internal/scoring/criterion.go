package scoring

import (
	"strings"
	"time"

	"leadscore/pkg/domain"
)

// evaluation is the outcome of applying one criterion to a profile.
type evaluation struct {
	points    float64
	satisfied bool
	// present reports whether the criterion's input data existed in the
	// profile at all. An absent field is never satisfied, but the distinction
	// feeds the breakdown's confidence value.
	present bool
}

// evalCriterion dispatches on the criterion type. All types share the same
// contract: a missing field yields {present: false, satisfied: false} and
// zero points.
func evalCriterion(c *Criterion, p *domain.CompanyProfile, now time.Time) evaluation {
	switch c.Type {
	case CriterionThreshold:
		return evalThreshold(c, p, now)
	case CriterionMembership:
		return evalMembership(c, p, now)
	case CriterionPresence:
		return evalPresence(c, p, now)
	case CriterionComposite:
		return evalComposite(c, p, now)
	default:
		return evaluation{}
	}
}

func evalThreshold(c *Criterion, p *domain.CompanyProfile, now time.Time) evaluation {
	v := resolveField(p, c.Field, now)
	if v.kind != fieldNumber {
		return evaluation{}
	}

	if len(c.Steps) > 0 {
		// Highest matching band wins.
		var best Step
		matched := false
		for _, s := range c.Steps {
			if v.num >= s.Min && (!matched || s.Min > best.Min) {
				best, matched = s, true
			}
		}

		return evaluation{points: best.Points, satisfied: matched, present: true}
	}

	if v.num < *c.Min {
		return evaluation{present: true}
	}
	if c.Max != nil && v.num > *c.Max {
		return evaluation{present: true}
	}

	return evaluation{points: c.Points, satisfied: true, present: true}
}

func evalMembership(c *Criterion, p *domain.CompanyProfile, now time.Time) evaluation {
	v := resolveField(p, c.Field, now)

	var candidates []string
	switch v.kind {
	case fieldString:
		candidates = []string{v.str}
	case fieldList:
		candidates = v.list
	default:
		return evaluation{}
	}

	for _, cand := range candidates {
		for _, want := range c.Values {
			if strings.EqualFold(strings.TrimSpace(cand), want) {
				return evaluation{points: c.Points, satisfied: true, present: true}
			}
		}
	}

	return evaluation{present: true}
}

func evalPresence(c *Criterion, p *domain.CompanyProfile, now time.Time) evaluation {
	v := resolveField(p, c.Field, now)
	if !v.present() {
		return evaluation{}
	}

	if v.kind == fieldBool && !v.b {
		return evaluation{present: true}
	}

	return evaluation{points: c.Points, satisfied: true, present: true}
}

func evalComposite(c *Criterion, p *domain.CompanyProfile, now time.Time) evaluation {
	anyPresent, allSatisfied, anySatisfied := false, true, false
	for i := range c.Children {
		child := evalCriterion(&c.Children[i], p, now)
		anyPresent = anyPresent || child.present
		allSatisfied = allSatisfied && child.satisfied
		anySatisfied = anySatisfied || child.satisfied
	}

	satisfied := anySatisfied
	if c.Mode == "all" {
		satisfied = allSatisfied && len(c.Children) > 0
	}

	if !satisfied {
		return evaluation{present: anyPresent}
	}

	return evaluation{points: c.Points, satisfied: true, present: anyPresent}
}
