package model

// DomainType classifies the domain of a submitted email address.
type DomainType string

const (
	DomainCorporate DomainType = "corporate"
	DomainBusiness  DomainType = "business"
	DomainPersonal  DomainType = "personal"
	DomainUnknown   DomainType = "unknown"
)

// DeviceType is derived from the requester's user agent.
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceUnknown DeviceType = "unknown"
)

// AccessPattern describes how the visitor reached the resume access page.
type AccessPattern string

const (
	AccessStandard             AccessPattern = "standard"
	AccessProfessionalReferral AccessPattern = "professional_referral"
)

// RiskLevel is the coarse trust classification derived from the context score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ProfessionalIndicator records a role/seniority keyword found in an email
// address, e.g. category "tech_roles", keyword "engineer".
type ProfessionalIndicator struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
}

// ProfessionalContext is the result of scoring one access request. It is
// computed once per verification transaction and may be cached in the session
// for the duration of that transaction.
type ProfessionalContext struct {
	EmailDomain   string                  `json:"emailDomain,omitempty"`
	DomainType    DomainType              `json:"domainType"`
	EmailScore    int                     `json:"emailScore"`
	DeviceType    DeviceType              `json:"deviceType"`
	AccessPattern AccessPattern           `json:"accessPattern"`
	Indicators    []ProfessionalIndicator `json:"professionalIndicators,omitempty"`

	// TotalScore includes FormBonus once form-derived bonuses are folded in.
	// FormBonus is kept separate for auditability.
	TotalScore      int       `json:"totalScore"`
	FormBonus       int       `json:"formBonus,omitempty"`
	ChallengePassed bool      `json:"challengePassed,omitempty"`
	RiskLevel       RiskLevel `json:"riskLevel"`
}
