package models

type Severity string

const (
	SeverityCritical      Severity = "critical"
	SeverityInformational Severity = "informational"
)

type RulesetKind string

const (
	RulesetKindReviewRequirement RulesetKind = "review_requirement"
	RulesetKindBlockForcePush    RulesetKind = "block_force_push"
	RulesetKindCodeOwners        RulesetKind = "codeowners"
)

func (k RulesetKind) Label() string {
	switch k {
	case RulesetKindReviewRequirement:
		return "merged without required review"
	case RulesetKindBlockForcePush:
		return "force push"
	case RulesetKindCodeOwners:
		return "code owners check bypassed"
	default:
		return string(k)
	}
}

// CriticalRuleset ties a tracked ruleset kind to the organization ruleset ID.
type CriticalRuleset struct {
	Kind RulesetKind
	ID   int64
}

type Reason struct {
	Kind        RulesetKind
	RulesetID   int64
	RulesetName string
}

func (r Reason) String() string {
	return r.Kind.Label()
}

type Verdict struct {
	Severity   Severity
	AssetLevel AssetLevel
	Reasons    []Reason
	// CallOut is set when the violation must also be raised in the
	// compliance channel, not only with the actor.
	CallOut  bool
	Failures []RuleEvaluation
}

func (v Verdict) Critical() bool {
	return v.Severity == SeverityCritical
}

func (v Verdict) HasReason(kind RulesetKind) bool {
	for _, r := range v.Reasons {
		if r.Kind == kind {
			return true
		}
	}
	return false
}
