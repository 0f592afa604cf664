package scoring

import (
	"strings"

	"leadscore/pkg/domain"
)

// Recommend derives the follow-up guidance for a scored profile. The output
// is fully determined by the model, the breakdown and the tier: scoring the
// same profile twice yields byte-identical recommendations.
func (e *Engine) Recommend(p *domain.CompanyProfile, breakdown *domain.ScoreBreakdown, tier domain.Tier) domain.Recommendation {
	playbook := e.model.Playbooks[tier]

	rec := domain.Recommendation{
		Actions:     make([]domain.Action, 0, len(playbook.Actions)),
		Timing:      interpolate(playbook.Timing, p),
		Approach:    interpolate(playbook.Approach, p),
		Positioning: interpolate(playbook.Positioning, p),
	}
	for i, tmpl := range playbook.Actions {
		rec.Actions = append(rec.Actions, domain.Action{
			Priority: i + 1,
			Text:     interpolate(tmpl, p),
		})
	}

	if playbook.Email != nil {
		rec.Email = &domain.EmailTemplate{
			Subject: interpolate(playbook.Email.Subject, p),
			Body:    interpolate(playbook.Email.Body, p),
		}
	}

	if playbook.CallScript != nil {
		script := &domain.CallScript{
			Opening: interpolate(playbook.CallScript.Opening, p),
			Closing: interpolate(playbook.CallScript.Closing, p),
		}
		for _, point := range playbook.CallScript.TalkingPoints {
			script.TalkingPoints = append(script.TalkingPoints, interpolate(point, p))
		}
		rec.CallScript = script
	}

	for _, tmpl := range playbook.Content {
		rec.Content = append(rec.Content, interpolate(tmpl, p))
	}

	// Weak categories are reported in canonical category order so the
	// suggestion list is stable.
	for _, cat := range domain.Categories() {
		rule, ok := e.model.Improvements[cat]
		if !ok {
			continue
		}

		if cs, ok := breakdown.CategoryScores[cat]; ok && cs.Points < rule.Floor {
			rec.Improvements = append(rec.Improvements, interpolate(rule.Suggestion, p))
		}
	}

	return rec
}

// interpolate substitutes {{name}}, {{domain}} and {{industry}} placeholders
// in playbook templates. A missing profile value falls back to a neutral
// phrase instead of leaving holes in the text.
func interpolate(tmpl string, p *domain.CompanyProfile) string {
	name := p.Name
	if name == "" {
		name = p.Domain
	}

	industry := p.Industry
	if industry == "" {
		industry = "their industry"
	}

	r := strings.NewReplacer(
		"{{name}}", name,
		"{{domain}}", p.Domain,
		"{{industry}}", industry,
	)

	return r.Replace(tmpl)
}
