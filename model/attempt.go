package model

import "time"

// VerificationAttempt is a write-only audit record. Every verification or
// download branch, success or rejection, produces exactly one.
type VerificationAttempt struct {
	ID        string    `json:"id"`
	IP        string    `json:"ip"`
	Route     string    `json:"route"`
	Success   bool      `json:"success"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`

	// Populated on scored verifications only.
	Score      int        `json:"score,omitempty"`
	RiskLevel  RiskLevel  `json:"riskLevel,omitempty"`
	DomainType DomainType `json:"domainType,omitempty"`
}
