package policy

import (
	"encoding/json"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

const (
	dependabotUserID     = 49699333
	dependabotLogin      = "dependabot[bot]"
	policyExceptionLabel = "policy-exception"
)

// Rules is the classification input taken from configuration.
type Rules struct {
	CriticalRulesets   []models.CriticalRuleset
	CriticalAssetLevel models.AssetLevel
	CalloutAssetLevel  models.AssetLevel
	// InScopeAssetLevel is the lowest level notified about. Repositories
	// without a level are never in scope.
	InScopeAssetLevel  models.AssetLevel
}

// InScope reports whether events of a repository at level are notified.
func (r Rules) InScope(level models.AssetLevel) bool {
	return level != models.AssetLevelUnspecified && level >= r.InScopeAssetLevel
}

// Classify computes the verdict for a stored event. It performs no I/O; the
// only error is an undecodable payload.
func Classify(event models.RuleSuiteEvent, rules Rules) (models.Verdict, error) {
	suite, err := DecodeSuite(event)
	if err != nil {
		return models.Verdict{}, err
	}

	failures := suite.Failures()
	verdict := models.Verdict{
		Severity:   models.SeverityInformational,
		AssetLevel: suite.AssetLevel,
		Failures:   failures,
	}

	for _, critical := range rules.CriticalRulesets {
		for _, failure := range failures {
			if failure.RuleSource.ID == nil || *failure.RuleSource.ID != critical.ID {
				continue
			}
			verdict.Reasons = append(verdict.Reasons, models.Reason{
				Kind:        critical.Kind,
				RulesetID:   critical.ID,
				RulesetName: failure.RuleSource.GetName(),
			})
			break
		}
	}

	if len(verdict.Reasons) > 0 && suite.AssetLevel >= rules.CriticalAssetLevel {
		verdict.Severity = models.SeverityCritical
	}

	verdict.CallOut = callOut(event, suite, verdict, rules)

	return verdict, nil
}

func callOut(event models.RuleSuiteEvent, suite models.StoredRuleSuite, verdict models.Verdict, rules Rules) bool {
	if suite.AssetLevel < rules.CalloutAssetLevel || suite.Result != models.RuleOutcomeBypass {
		return false
	}

	if verdict.HasReason(models.RulesetKindBlockForcePush) {
		return true
	}

	// Branch protection failures count even when only evaluated.
	if suite.AnyFailed(func(eval models.RuleEvaluation) bool { return eval.RuleSource.IsProtectedBranch() }) {
		return true
	}

	if verdict.HasReason(models.RulesetKindReviewRequirement) {
		return !authoredByDependabot(ResultingCommit(event)) && !hasPolicyException(PullRequest(event))
	}

	return false
}

func authoredByDependabot(commit *gh.RepositoryCommit) bool {
	if commit == nil || commit.Author == nil {
		return false
	}
	return commit.Author.GetID() == dependabotUserID && commit.Author.GetLogin() == dependabotLogin
}

func hasPolicyException(pr *gh.PullRequest) bool {
	if pr == nil {
		return false
	}
	for _, label := range pr.Labels {
		if strings.Contains(label.GetName(), policyExceptionLabel) {
			return true
		}
	}
	return false
}

// DecodeSuite decodes the stored rule suite payload.
func DecodeSuite(event models.RuleSuiteEvent) (models.StoredRuleSuite, error) {
	var suite models.StoredRuleSuite
	if err := json.Unmarshal([]byte(event.EventData), &suite); err != nil {
		return models.StoredRuleSuite{}, fmt.Errorf("decoding rule suite %s: %w", event.GithubID, err)
	}
	return suite, nil
}

// ResultingCommit decodes the stored commit. A missing or malformed value
// yields nil.
func ResultingCommit(event models.RuleSuiteEvent) *gh.RepositoryCommit {
	if event.ResultingCommit == nil {
		return nil
	}
	var commit gh.RepositoryCommit
	if err := json.Unmarshal([]byte(*event.ResultingCommit), &commit); err != nil {
		return nil
	}
	return &commit
}

// PullRequests decodes the stored pull request associations. A missing or
// malformed value yields nil.
func PullRequests(event models.RuleSuiteEvent) []*gh.PullRequest {
	if event.PullRequests == nil {
		return nil
	}
	var prs []*gh.PullRequest
	if err := json.Unmarshal([]byte(*event.PullRequests), &prs); err != nil {
		return nil
	}
	return prs
}

// PullRequest returns the pull request associated with the event when there
// is exactly one; with several candidates none can be attributed.
func PullRequest(event models.RuleSuiteEvent) *gh.PullRequest {
	prs := PullRequests(event)
	if len(prs) != 1 {
		return nil
	}
	return prs[0]
}
