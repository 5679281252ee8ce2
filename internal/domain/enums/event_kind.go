package enums

// EventKind names a state change emitted by one of the stores.
type EventKind string

const (
	EventSessionLoggedIn      EventKind = "session.logged_in"
	EventSessionLoggedOut     EventKind = "session.logged_out"
	EventSessionProfileSaved  EventKind = "session.profile_updated"
	EventMatchesFetched       EventKind = "matches.fetched"
	EventQueueFetched         EventKind = "matches.queue_fetched"
	EventMatchCreated         EventKind = "matches.created"
	EventCandidateLiked       EventKind = "matches.liked"
	EventCandidatePassed      EventKind = "matches.passed"
	EventConversationsFetched EventKind = "messages.conversations_fetched"
	EventMessagesFetched      EventKind = "messages.fetched"
	EventMessageSent          EventKind = "messages.sent"
	EventConversationActive   EventKind = "messages.active_changed"
)
