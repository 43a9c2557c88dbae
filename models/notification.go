package models

type DestinationKind string

const (
	DestinationChannel DestinationKind = "channel"
	DestinationDirect  DestinationKind = "direct"
)

// Destination is a messaging target: a channel ID or a user ID for a
// direct message.
type Destination struct {
	Kind DestinationKind
	ID   string
}

type NotificationField struct {
	Title string
	Value string
	Short bool
}

type NotificationAttachment struct {
	Color  string
	Fields []NotificationField
}

// Notification is a transport independent message. Summary and Context are
// markdown; Text is the plain fallback used by clients that do not render
// blocks.
type Notification struct {
	Title       string
	Summary     string
	Actor       string
	Context     string
	Attachments []NotificationAttachment
	Text        string
}
