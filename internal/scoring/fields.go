package scoring

import (
	"time"

	"leadscore/pkg/domain"
)

type fieldKind int

const (
	fieldAbsent fieldKind = iota
	fieldNumber
	fieldString
	fieldList
	fieldBool
)

// fieldValue is a resolved profile field in one of the shapes criteria know
// how to evaluate.
type fieldValue struct {
	kind fieldKind
	num  float64
	str  string
	list []string
	b    bool
}

func absent() fieldValue          { return fieldValue{kind: fieldAbsent} }
func number(v float64) fieldValue { return fieldValue{kind: fieldNumber, num: v} }
func str(v string) fieldValue     { return fieldValue{kind: fieldString, str: v} }
func list(v []string) fieldValue  { return fieldValue{kind: fieldList, list: v} }
func boolean(v bool) fieldValue   { return fieldValue{kind: fieldBool, b: v} }

func (v fieldValue) present() bool { return v.kind != fieldAbsent }

func optInt(p *int) fieldValue {
	if p == nil {
		return absent()
	}

	return number(float64(*p))
}

func optFloat(p *float64) fieldValue {
	if p == nil {
		return absent()
	}

	return number(*p)
}

func optStr(s string) fieldValue {
	if s == "" {
		return absent()
	}

	return str(s)
}

func optList(l []string) fieldValue {
	if len(l) == 0 {
		return absent()
	}

	return list(l)
}

// resolveField maps a criterion's dotted field path onto a profile value.
// Unknown paths resolve to absent, which criteria treat as "not satisfied";
// a typo in a model therefore degrades scores instead of crashing, and
// model validation plus tests are expected to catch it.
func resolveField(p *domain.CompanyProfile, path string, now time.Time) fieldValue {
	switch path {
	case "domain":
		return optStr(p.Domain)
	case "name":
		return optStr(p.Name)
	case "industry":
		return optStr(p.Industry)
	case "headquarters":
		return optStr(p.Headquarters)
	case "tech_stack":
		return optList(p.TechStack)
	case "contacts":
		return optList(contactTitles(p.Contacts))
	case "contacts.seniority":
		return optList(contactSeniorities(p.Contacts))
	case "metrics.employee_count":
		return optInt(p.Metrics.EmployeeCount)
	case "metrics.annual_revenue":
		return optFloat(p.Metrics.AnnualRevenue)
	case "metrics.founded_year":
		return optInt(p.Metrics.FoundedYear)
	case "metrics.company_age":
		if p.Metrics.FoundedYear == nil {
			return absent()
		}

		return number(float64(now.Year() - *p.Metrics.FoundedYear))
	case "metrics.growth_rate_pct":
		return optFloat(p.Metrics.GrowthRatePct)
	case "metrics.funding_total":
		return optFloat(p.Metrics.FundingTotal)
	case "metrics.last_funding_round":
		return optStr(p.Metrics.LastFundingRound)
	case "signals.job_postings":
		return optList(p.Signals.JobPostings)
	case "signals.job_posting_count":
		if len(p.Signals.JobPostings) == 0 {
			return absent()
		}

		return number(float64(len(p.Signals.JobPostings)))
	case "signals.recent_news":
		return optList(p.Signals.RecentNews)
	case "signals.website_visits":
		return optInt(p.Signals.WebsiteVisits)
	case "signals.content_downloads":
		return optInt(p.Signals.ContentDownloads)
	case "signals.demo_requested":
		return boolean(p.Signals.DemoRequested)
	case "signals.pricing_page_viewed":
		return boolean(p.Signals.PricingPageViewed)
	case "signals.competitor_user":
		return boolean(p.Signals.CompetitorUser)
	case "signals.contract_renewal_days":
		if p.Signals.ContractRenewal == nil {
			return absent()
		}

		return number(p.Signals.ContractRenewal.Sub(now).Hours() / 24)
	default:
		return absent()
	}
}

func contactTitles(contacts []domain.Contact) []string {
	titles := make([]string, 0, len(contacts))
	for _, c := range contacts {
		if c.Title != "" {
			titles = append(titles, c.Title)
		}
	}

	return titles
}

func contactSeniorities(contacts []domain.Contact) []string {
	out := make([]string, 0, len(contacts))
	for _, c := range contacts {
		if c.Seniority != "" {
			out = append(out, c.Seniority)
		}
	}

	return out
}
