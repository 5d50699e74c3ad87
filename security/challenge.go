package security

import "github.com/elsonpulikkan96/reborncloud.online/model"

// Challenge is a contextual verification question presented alongside the
// professional access form. Correct is an index into Options; intent-style
// challenges have no correct answer and omit the field. A pointer keeps
// index 0 on the wire.
type Challenge struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  *int     `json:"correct,omitempty"`
	Category string   `json:"category"`
}

func answerIndex(i int) *int { return &i }

// Recommendation is a human-readable access hint shown by the context
// analysis endpoint.
type Recommendation struct {
	Type    string `json:"type"` // "success", "info", "warning"
	Message string `json:"message"`
}

var industryChallenges = []Challenge{
	{
		Question: `What does "CI/CD" stand for in software development?`,
		Options: []string{
			"Continuous Integration/Continuous Deployment",
			"Code Integration/Code Deployment",
			"Central Integration/Central Deployment",
		},
		Correct:  answerIndex(0),
		Category: "tech",
	},
	{
		Question: "What is the primary purpose of a load balancer?",
		Options: []string{
			"Store data",
			"Distribute traffic across servers",
			"Encrypt communications",
		},
		Correct:  answerIndex(1),
		Category: "tech",
	},
	{
		Question: `In project management, what does "MVP" typically mean?`,
		Options: []string{
			"Most Valuable Player",
			"Minimum Viable Product",
			"Maximum Value Proposition",
		},
		Correct:  answerIndex(1),
		Category: "business",
	},
}

var intentChallenge = Challenge{
	Question: "You are accessing this resume for:",
	Options: []string{
		"Job opportunity evaluation",
		"Academic research",
		"Personal interest",
		"Competitive analysis",
	},
	Category: "intent",
}

// ContextualChallenge selects the challenge appropriate for a scored context.
// High-trust corporate users (score above 40) skip the challenge entirely;
// tech and business indicator matches get a matching knowledge question;
// everyone else gets the intent question.
func ContextualChallenge(ctx *model.ProfessionalContext) *Challenge {
	if ctx.DomainType == model.DomainCorporate && ctx.TotalScore > 40 {
		return nil
	}

	for _, ind := range ctx.Indicators {
		if ind.Category == "tech_roles" {
			c := industryChallenges[0]
			return &c
		}
	}
	for _, ind := range ctx.Indicators {
		if ind.Category == "business_roles" {
			c := industryChallenges[2]
			return &c
		}
	}

	c := intentChallenge
	return &c
}

// Recommendations builds the access hints keyed off domain type and risk
// level.
func Recommendations(ctx *model.ProfessionalContext) []Recommendation {
	recs := []Recommendation{}

	switch ctx.DomainType {
	case model.DomainCorporate:
		recs = append(recs, Recommendation{
			Type:    "success",
			Message: "Corporate email detected - Priority access available",
		})
	case model.DomainBusiness:
		recs = append(recs, Recommendation{
			Type:    "info",
			Message: "Business email detected - Standard verification process",
		})
	case model.DomainPersonal:
		recs = append(recs, Recommendation{
			Type:    "warning",
			Message: "Personal email - Enhanced verification required",
		})
	}

	switch ctx.RiskLevel {
	case model.RiskLow:
		recs = append(recs, Recommendation{
			Type:    "success",
			Message: "High-trust profile - Streamlined access process",
		})
	case model.RiskHigh:
		recs = append(recs, Recommendation{
			Type:    "info",
			Message: "Additional verification steps may be required",
		})
	}

	return recs
}
