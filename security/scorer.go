package security

import (
	"regexp"
	"strings"

	"github.com/elsonpulikkan96/reborncloud.online/model"
)

// Scoring weights. All signals are independent and additive.
const (
	scoreCorporateDomain = 30
	scoreBusinessDomain  = 20
	scorePersonalDomain  = 5
	scoreIndicator       = 10
	scoreMobileDevice    = 5
	scoreTabletDevice    = 8
	scoreDesktopDevice   = 15
	scoreReferral        = 25

	// Form-derived bonuses for the professional verification variant.
	BonusHighValueRole   = 15
	BonusProfessionalUse = 10
	BonusCompanyGiven    = 5
	BonusChallengePassed = 10
)

// corporateDomains is the curated set of exact-match trusted employers.
var corporateDomains = map[string]bool{
	// Tech giants
	"google.com": true, "microsoft.com": true, "apple.com": true,
	"amazon.com": true, "meta.com": true, "netflix.com": true,
	"uber.com": true, "airbnb.com": true, "spotify.com": true, "zoom.us": true,

	// Consulting and professional services
	"mckinsey.com": true, "bcg.com": true, "bain.com": true,
	"deloitte.com": true, "pwc.com": true, "ey.com": true, "kpmg.com": true,
	"accenture.com": true, "ibm.com": true, "oracle.com": true,

	// Financial services
	"jpmorgan.com": true, "goldmansachs.com": true, "morganstanley.com": true,
	"blackrock.com": true, "citi.com": true, "wellsfargo.com": true,
	"bankofamerica.com": true, "chase.com": true,

	// Healthcare and pharma
	"pfizer.com": true, "jnj.com": true, "roche.com": true,
	"novartis.com": true, "merck.com": true,

	// Aerospace and defense
	"boeing.com": true, "lockheedmartin.com": true, "raytheon.com": true,
	"northropgrumman.com": true,

	// Automotive
	"tesla.com": true, "ford.com": true, "gm.com": true,
	"toyota.com": true, "bmw.com": true,

	// Common corporate email patterns
	"corp.com": true, "company.com": true, "inc.com": true,
	"ltd.com": true, "llc.com": true,
}

// freeMailDomains are common personal providers.
var freeMailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
}

// businessDomainPattern matches domains following common corporate suffixes.
var businessDomainPattern = regexp.MustCompile(
	`(corp|company|inc|ltd|llc|group|consulting|solutions|tech|systems)\.com$`)

// indicatorCategories maps indicator categories to their keyword sets. Order
// is fixed so repeated scoring of the same input yields the same record
// ordering.
var indicatorCategories = []struct {
	category string
	keywords []string
}{
	{"high_value", []string{"ceo", "cto", "vp", "director", "manager", "lead", "senior", "principal"}},
	{"tech_roles", []string{"engineer", "developer", "architect", "devops", "sre", "data", "ml", "ai"}},
	{"business_roles", []string{"analyst", "consultant", "strategy", "product", "marketing", "sales"}},
	{"hr_recruiting", []string{"recruiter", "hr", "talent", "hiring", "people", "recruitment"}},
}

// professionalReferrers are hiring/networking sites whose referrals raise trust.
var professionalReferrers = []string{"linkedin.com", "indeed.com", "glassdoor.com", "monster.com"}

// Curated form-value sets for the professional variant.
var (
	highValueRoles       = map[string]bool{"recruiter": true, "hiring_manager": true, "cto_vp": true, "tech_lead": true}
	professionalPurposes = map[string]bool{"job_opportunity": true, "consulting_project": true, "partnership": true}
)

// Scorer computes a trust score and risk tier from request metadata. It is a
// pure function of its inputs: no side effects, no network calls.
type Scorer struct{}

// NewScorer creates a context scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Analyze maps (email, userAgent, referrer) to a ProfessionalContext using
// the pre-form risk schedule. Any input may be empty; missing or malformed
// values contribute zero and never fail.
func (s *Scorer) Analyze(email, userAgent, referrer string) *model.ProfessionalContext {
	ctx := &model.ProfessionalContext{
		DomainType:    model.DomainUnknown,
		DeviceType:    model.DeviceUnknown,
		AccessPattern: model.AccessStandard,
	}

	score := 0

	if email != "" {
		domain := emailDomain(email)
		ctx.EmailDomain = domain

		switch {
		case corporateDomains[domain]:
			ctx.EmailScore = scoreCorporateDomain
			ctx.DomainType = model.DomainCorporate
		case businessDomainPattern.MatchString(domain):
			ctx.EmailScore = scoreBusinessDomain
			ctx.DomainType = model.DomainBusiness
		case freeMailDomains[domain]:
			ctx.EmailScore = scorePersonalDomain
			ctx.DomainType = model.DomainPersonal
		}
		score += ctx.EmailScore

		emailLower := strings.ToLower(email)
		for _, cat := range indicatorCategories {
			for _, keyword := range cat.keywords {
				if strings.Contains(emailLower, keyword) {
					score += scoreIndicator
					ctx.Indicators = append(ctx.Indicators, model.ProfessionalIndicator{
						Category: cat.category,
						Keyword:  keyword,
					})
				}
			}
		}
	}

	if userAgent != "" {
		ctx.DeviceType = DetectDevice(userAgent)
		switch ctx.DeviceType {
		case model.DeviceMobile:
			score += scoreMobileDevice
		case model.DeviceTablet:
			score += scoreTabletDevice
		case model.DeviceDesktop:
			score += scoreDesktopDevice
		}
	}

	if referrer != "" {
		referrerLower := strings.ToLower(referrer)
		for _, host := range professionalReferrers {
			if strings.Contains(referrerLower, host) {
				score += scoreReferral
				ctx.AccessPattern = model.AccessProfessionalReferral
				break
			}
		}
	}

	ctx.TotalScore = score
	ctx.RiskLevel = RiskPreForm(score)
	return ctx
}

// ApplyFormBonuses folds form-derived signal into the context: high-value
// role +15, professional purpose +10, non-empty company +5. Each bonus is
// independent. The bonus total is recorded separately on the context, the
// risk level is recomputed under the stricter post-form schedule, and the
// bonus total is returned.
func (s *Scorer) ApplyFormBonuses(ctx *model.ProfessionalContext, role, purpose, company string) int {
	bonus := 0
	if highValueRoles[role] {
		bonus += BonusHighValueRole
	}
	if professionalPurposes[purpose] {
		bonus += BonusProfessionalUse
	}
	if company != "" {
		bonus += BonusCompanyGiven
	}

	ctx.FormBonus += bonus
	ctx.TotalScore += bonus
	ctx.RiskLevel = RiskPostForm(ctx.TotalScore)
	return bonus
}

// ApplyChallengeBonus records a passed challenge and re-evaluates the risk
// tier from the updated score.
func (s *Scorer) ApplyChallengeBonus(ctx *model.ProfessionalContext) {
	ctx.ChallengePassed = true
	ctx.FormBonus += BonusChallengePassed
	ctx.TotalScore += BonusChallengePassed
	ctx.RiskLevel = RiskPostForm(ctx.TotalScore)
}

// RiskPreForm is the coarse schedule applied before form-derived bonuses.
func RiskPreForm(score int) model.RiskLevel {
	switch {
	case score >= 50:
		return model.RiskLow
	case score >= 25:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

// RiskPostForm is the stricter schedule applied once form bonuses are folded
// in. The two schedules are intentionally distinct: the bar tightens when
// more signal is available.
func RiskPostForm(score int) model.RiskLevel {
	switch {
	case score >= 60:
		return model.RiskLow
	case score >= 35:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

// emailDomain extracts the lowercased domain of an email address. A value
// with no "@" degrades to an empty domain rather than an error.
func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
