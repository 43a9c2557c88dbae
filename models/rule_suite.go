package models

import "time"

type RuleOutcome string

const (
	RuleOutcomePass   RuleOutcome = "pass"
	RuleOutcomeFail   RuleOutcome = "fail"
	RuleOutcomeBypass RuleOutcome = "bypass"
)

type EvaluationResult string

const (
	EvaluationResultPass EvaluationResult = "pass"
	EvaluationResultFail EvaluationResult = "fail"
)

type Enforcement string

const (
	EnforcementActive         Enforcement = "active"
	EnforcementEvaluate       Enforcement = "evaluate"
	EnforcementDeletedRuleset Enforcement = "deleted ruleset"
)

// RuleSuiteFilter narrows a rule suite listing. TimePeriod is one of hour,
// day, week or month; empty values use the GitHub defaults.
type RuleSuiteFilter struct {
	TimePeriod string
	Result     RuleOutcome
}

const (
	RuleSourceRuleset         = "ruleset"
	RuleSourceProtectedBranch = "protected_branch"
)

type RuleSource struct {
	Type string  `json:"type"`
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// IsRuleset reports whether the evaluation came from a named ruleset.
func (s RuleSource) IsRuleset() bool {
	return s.Type == RuleSourceRuleset && s.ID != nil && s.Name != nil
}

// IsProtectedBranch reports whether the evaluation came from classic branch
// protection. Unknown source types are treated the same way.
func (s RuleSource) IsProtectedBranch() bool {
	return !s.IsRuleset()
}

func (s RuleSource) GetID() int64 {
	if s.ID == nil {
		return 0
	}
	return *s.ID
}

func (s RuleSource) GetName() string {
	if s.Name == nil {
		return ""
	}
	return *s.Name
}

type RuleEvaluation struct {
	RuleSource  RuleSource       `json:"rule_source"`
	Enforcement Enforcement      `json:"enforcement"`
	Result      EvaluationResult `json:"result"`
	RuleType    string           `json:"rule_type"`
	Details     *string          `json:"details,omitempty"`
}

// Failed reports whether an actively enforced rule did not pass.
func (e RuleEvaluation) Failed() bool {
	return e.Enforcement == EnforcementActive && e.Result == EvaluationResultFail
}

func (e RuleEvaluation) GetDetails() string {
	if e.Details == nil {
		return ""
	}
	return *e.Details
}

// RuleSuite mirrors the GitHub rule suite document returned by
// GET /repos/{owner}/{repo}/rulesets/rule-suites/{id}.
type RuleSuite struct {
	ID               int64            `json:"id"`
	ActorID          *int64           `json:"actor_id,omitempty"`
	ActorName        *string          `json:"actor_name,omitempty"`
	BeforeSHA        string           `json:"before_sha"`
	AfterSHA         string           `json:"after_sha"`
	Ref              string           `json:"ref"`
	RepositoryID     int64            `json:"repository_id"`
	RepositoryName   string           `json:"repository_name"`
	PushedAt         time.Time        `json:"pushed_at"`
	Result           RuleOutcome      `json:"result"`
	EvaluationResult *RuleOutcome     `json:"evaluation_result,omitempty"`
	RuleEvaluations  []RuleEvaluation `json:"rule_evaluations,omitempty"`
}

func (s RuleSuite) GetActorName() string {
	if s.ActorName == nil {
		return ""
	}
	return *s.ActorName
}

// Failures returns the failed evaluations of a bypassed suite. Suites that
// were not bypassed have nothing to report.
func (s RuleSuite) Failures() []RuleEvaluation {
	if s.Result != RuleOutcomeBypass {
		return nil
	}

	var failures []RuleEvaluation
	for _, eval := range s.RuleEvaluations {
		if eval.Failed() {
			failures = append(failures, eval)
		}
	}
	return failures
}

// AnyFailed reports whether a bypassed suite has an evaluation with a failed
// result matching match, whatever its enforcement.
func (s RuleSuite) AnyFailed(match func(RuleEvaluation) bool) bool {
	if s.Result != RuleOutcomeBypass {
		return false
	}
	for _, eval := range s.RuleEvaluations {
		if eval.Result == EvaluationResultFail && match(eval) {
			return true
		}
	}
	return false
}

// ShortSHA returns the abbreviated resulting commit.
func (s RuleSuite) ShortSHA() string {
	if len(s.AfterSHA) < 7 {
		return "commit"
	}
	return s.AfterSHA[:7]
}

// StoredRuleSuite is the payload persisted in RuleSuiteEvent.EventData: the
// rule suite as fetched plus the repository asset level at ingestion time.
type StoredRuleSuite struct {
	RuleSuite
	AssetLevel AssetLevel `json:"asset_level"`
}
