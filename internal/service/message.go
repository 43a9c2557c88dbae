package service

import (
	"fmt"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

const (
	colorCritical = "#E01E5A"
	colorWarning  = "#ECB22E"

	genericReason = "rule suite violation"
)

// MessageInput is everything the notification text depends on.
type MessageInput struct {
	Repository  string // owner/name
	Suite       models.StoredRuleSuite
	Verdict     models.Verdict
	PullRequest *gh.PullRequest
	// Recipient is the chat user addressed in the summary, nil when the
	// actor could not be resolved.
	Recipient  *models.ChatUser
	WebBaseURL string
	Org        string
}

// FormatNotification renders a verdict. It is deterministic.
func FormatNotification(in MessageInput) models.Notification {
	critical := in.Verdict.Critical()

	title := "Potential GitHub Policy Violation"
	summary := fmt.Sprintf("%s, please make sure no security policy has been violated. No need to comment.", mention(in))
	if critical {
		title = "Critical GitHub Policy Violation"
		summary = fmt.Sprintf("%s, please leave a comment in the thread why the below rules were violated.", mention(in))
	}

	attachments := make([]models.NotificationAttachment, 0, len(in.Verdict.Failures))
	for _, failure := range in.Verdict.Failures {
		attachments = append(attachments, models.NotificationAttachment{
			Color:  attachmentColor(in.Verdict, failure),
			Fields: failureFields(in, failure),
		})
	}

	return models.Notification{
		Title:       title,
		Summary:     summary,
		Actor:       actorName(in.Suite),
		Context:     contextSection(in),
		Attachments: attachments,
		Text:        summary + "\n\n" + describe(in),
	}
}

func mention(in MessageInput) string {
	if in.Recipient != nil {
		return fmt.Sprintf("<@%s>", in.Recipient.ID)
	}
	return fmt.Sprintf("*%s*", actorName(in.Suite))
}

func actorName(suite models.StoredRuleSuite) string {
	if name := suite.GetActorName(); name != "" {
		return name
	}
	return "Unknown"
}

func contextSection(in MessageInput) string {
	reasons := make([]string, 0, len(in.Verdict.Reasons))
	for _, reason := range in.Verdict.Reasons {
		reasons = append(reasons, reason.String())
	}
	if len(reasons) == 0 {
		reasons = append(reasons, genericReason)
	}

	return fmt.Sprintf("*Repository*\n<%s/%s|%s> (%s)\n*Reason*\n%s",
		in.WebBaseURL, in.Repository, in.Repository, in.Verdict.AssetLevel, strings.Join(reasons, ", "))
}

func commitURL(in MessageInput) string {
	return fmt.Sprintf("%s/%s/commit/%s", in.WebBaseURL, in.Repository, in.Suite.AfterSHA)
}

func commitLink(in MessageInput) string {
	return fmt.Sprintf("<%s|`%s`> in `%s`.", commitURL(in), in.Suite.ShortSHA(), in.Repository)
}

func attachmentColor(verdict models.Verdict, failure models.RuleEvaluation) string {
	if !verdict.Critical() || failure.RuleSource.ID == nil {
		return colorWarning
	}
	for _, reason := range verdict.Reasons {
		if reason.RulesetID == *failure.RuleSource.ID {
			return colorCritical
		}
	}
	return colorWarning
}

func failureFields(in MessageInput, failure models.RuleEvaluation) []models.NotificationField {
	fields := []models.NotificationField{
		{Title: "Commit", Value: commitLink(in), Short: true},
		{Title: "Sub-type", Value: fmt.Sprintf("*%s*", failure.RuleType), Short: true},
	}

	if pr := in.PullRequest; pr != nil && pr.GetHTMLURL() != "" {
		fields = append(fields, models.NotificationField{
			Title: "Pull Request",
			Value: fmt.Sprintf("<%s|#%d>", pr.GetHTMLURL(), pr.GetNumber()),
		})
	}

	if details := failure.GetDetails(); details != "" {
		fields = append(fields, models.NotificationField{Title: "Details", Value: details})
	}

	source := failure.RuleSource
	switch {
	case source.IsRuleset():
		fields = append(fields, models.NotificationField{
			Title: "Ruleset",
			Value: fmt.Sprintf("<%s/organizations/%s/settings/rules/%d|%s>", in.WebBaseURL, in.Org, source.GetID(), source.GetName()),
		})
	case source.Type == models.RuleSourceProtectedBranch:
		fields = append(fields, models.NotificationField{Title: "Source", Value: "branch protection"})
	default:
		value := source.Type
		if value == "" {
			value = "unknown"
		}
		fields = append(fields, models.NotificationField{Title: "Source", Value: value})
	}

	return fields
}

// describe is the plain text form of the failures.
func describe(in MessageInput) string {
	if len(in.Verdict.Failures) == 0 {
		return "Bypass with no failures.\n"
	}

	var b strings.Builder
	for _, failure := range in.Verdict.Failures {
		fmt.Fprintf(&b, "%s violated rule (`%s`)", actorName(in.Suite), failure.RuleType)
		if name := failure.RuleSource.GetName(); name != "" {
			if failure.RuleSource.Type == models.RuleSourceRuleset {
				fmt.Fprintf(&b, " from ruleset `%s`", name)
			} else {
				fmt.Fprintf(&b, " from `%s`", name)
			}
		}
		fmt.Fprintf(&b, " with %s\n", commitLink(in))

		if details := failure.GetDetails(); details != "" {
			fmt.Fprintf(&b, "\n%s\n", details)
		}
	}
	return b.String()
}
