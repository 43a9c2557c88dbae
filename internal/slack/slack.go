// Package slack delivers notifications through the Slack Web API.
package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/slack-go/slack"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

const usersNotFound = "users_not_found"

type Messenger struct {
	client *slack.Client
}

type options struct {
	apiURL     string
	httpClient *http.Client
}

type Option func(*options)

// WithAPIURL overrides https://slack.com/api/, mostly for tests.
func WithAPIURL(apiURL string) Option {
	return func(o *options) { o.apiURL = apiURL }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) { o.httpClient = httpClient }
}

func New(token string, opts ...Option) *Messenger {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var clientOpts []slack.Option
	if o.apiURL != "" {
		apiURL := o.apiURL
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		clientOpts = append(clientOpts, slack.OptionAPIURL(apiURL))
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, slack.OptionHTTPClient(o.httpClient))
	}

	return &Messenger{client: slack.New(token, clientOpts...)}
}

func (m *Messenger) LookupUserByEmail(ctx context.Context, email string) (*models.ChatUser, error) {
	user, err := m.client.GetUserByEmailContext(ctx, email)
	if err != nil {
		if isUserNotFound(err) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("slack: looking up %s: %w", email, err)
	}
	return &models.ChatUser{ID: user.ID, Name: user.Name}, nil
}

func isUserNotFound(err error) bool {
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return slackErr.Err == usersNotFound
	}
	return err.Error() == usersNotFound
}

// Send posts the notification to a channel, or to a user ID which Slack
// delivers as a direct message from the app.
func (m *Messenger) Send(ctx context.Context, dest models.Destination, n models.Notification) error {
	if dest.ID == "" {
		return fmt.Errorf("slack: empty %s destination", dest.Kind)
	}

	_, _, err := m.client.PostMessageContext(ctx, dest.ID,
		slack.MsgOptionText(n.Text, false),
		slack.MsgOptionBlocks(blocks(n)...),
		slack.MsgOptionAttachments(attachments(n)...),
	)
	if err != nil {
		return fmt.Errorf("slack: posting to %s %s: %w", dest.Kind, dest.ID, err)
	}
	return nil
}

func blocks(n models.Notification) []slack.Block {
	result := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, n.Title, false, false)),
		markdownSection(n.Summary),
	}
	if n.Actor != "" {
		result = append(result, markdownSection("*Actor*\n"+n.Actor))
	}
	if n.Context != "" {
		result = append(result, markdownSection(n.Context))
	}
	return result
}

func markdownSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

func attachments(n models.Notification) []slack.Attachment {
	result := make([]slack.Attachment, 0, len(n.Attachments))
	for _, a := range n.Attachments {
		fields := make([]slack.AttachmentField, 0, len(a.Fields))
		for _, f := range a.Fields {
			fields = append(fields, slack.AttachmentField{Title: f.Title, Value: f.Value, Short: f.Short})
		}
		result = append(result, slack.Attachment{
			Color:      a.Color,
			Fallback:   n.Title,
			Fields:     fields,
			MarkdownIn: []string{"fields"},
		})
	}
	return result
}
