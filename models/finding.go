package models

import "strings"

// Severity is the impact level assigned to a finding by the scanning engine.
type Severity string

const (
	SeverityHigh        Severity = "HIGH"
	SeverityMedium      Severity = "MEDIUM"
	SeverityLow         Severity = "LOW"
	SeverityInformation Severity = "INFORMATION"
)

// Confidence is how sure the scanning engine is that a finding is real.
type Confidence string

const (
	ConfidenceCertain   Confidence = "CERTAIN"
	ConfidenceFirm      Confidence = "FIRM"
	ConfidenceTentative Confidence = "TENTATIVE"
)

var severityRanks = map[Severity]int{
	SeverityInformation: 0,
	SeverityLow:         1,
	SeverityMedium:      2,
	SeverityHigh:        3,
}

var confidenceRanks = map[Confidence]int{
	ConfidenceTentative: 0,
	ConfidenceFirm:      1,
	ConfidenceCertain:   2,
}

// ParseSeverity normalizes s (case-insensitive, "INFO" alias accepted).
// The returned value may be unknown; check it with [Severity.Rank].
func ParseSeverity(s string) Severity {
	v := Severity(strings.ToUpper(strings.TrimSpace(s)))
	if v == "INFO" {
		return SeverityInformation
	}
	return v
}

// Rank returns the ordinal of s, higher meaning more severe. ok is false for
// unknown values.
func (s Severity) Rank() (int, bool) {
	r, ok := severityRanks[s]
	return r, ok
}

// ParseConfidence normalizes s (case-insensitive).
func ParseConfidence(s string) Confidence {
	return Confidence(strings.ToUpper(strings.TrimSpace(s)))
}

// Rank returns the ordinal of c, higher meaning more confident. ok is false
// for unknown values.
func (c Confidence) Rank() (int, bool) {
	r, ok := confidenceRanks[c]
	return r, ok
}

// Finding is a read-only snapshot of one security issue reported by the
// scanning engine.
type Finding struct {
	Name        string     `json:"name" yaml:"name"`
	BaseURL     string     `json:"baseUrl" yaml:"baseUrl"`
	Host        string     `json:"host" yaml:"host"`
	Port        int        `json:"port" yaml:"port"`
	Secure      bool       `json:"secure" yaml:"secure"`
	Severity    Severity   `json:"severity" yaml:"severity"`
	Confidence  Confidence `json:"confidence" yaml:"confidence"`
	Detail      string     `json:"detail" yaml:"detail"`
	Remediation string     `json:"remediation" yaml:"remediation"`

	Background *string `json:"background,omitempty" yaml:"background,omitempty"`
	Request    *string `json:"request,omitempty" yaml:"request,omitempty"`
	Response   *string `json:"response,omitempty" yaml:"response,omitempty"`
}

// Issue is a finding paired with its fingerprint. The fingerprint is
// flattened next to the finding fields on the wire.
type Issue struct {
	ID string `json:"id"`
	Finding
}
