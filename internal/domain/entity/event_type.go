package entity

import (
	"strings"
)

// Category is a coarse notification classification used for preference toggles and rate-limit buckets.
type Category string

const (
	CategorySocial Category = "SOCIAL"
	CategorySystem Category = "SYSTEM"
)

// AllCategories lists every category a user can toggle.
var AllCategories = []Category{CategorySocial, CategorySystem}

// Valid reports whether the category is known.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}

	return false
}

// EventType is the closed set of business events that can produce a notification.
type EventType string

const (
	EventPostLiked          EventType = "POST_LIKED"
	EventPostCommented      EventType = "POST_COMMENTED"
	EventCommentReplied     EventType = "COMMENT_REPLIED"
	EventUserFollowed       EventType = "USER_FOLLOWED"
	EventUserMentioned      EventType = "USER_MENTIONED"
	EventSystemAnnouncement EventType = "SYSTEM_ANNOUNCEMENT"
)

// AllEventTypes lists every event type. Each entry must have a spec in eventTypeSpecs.
var AllEventTypes = []EventType{
	EventPostLiked,
	EventPostCommented,
	EventCommentReplied,
	EventUserFollowed,
	EventUserMentioned,
	EventSystemAnnouncement,
}

// eventTypeSpec binds an event type to its category and message templates.
// Templates substitute {actor} and {snippet}.
type eventTypeSpec struct {
	category      Category
	titleTemplate string
	bodyTemplate  string
}

var eventTypeSpecs = map[EventType]eventTypeSpec{
	EventPostLiked: {
		category:      CategorySocial,
		titleTemplate: "{actor} liked your post",
		bodyTemplate:  "{snippet}",
	},
	EventPostCommented: {
		category:      CategorySocial,
		titleTemplate: "{actor} commented on your post",
		bodyTemplate:  "{snippet}",
	},
	EventCommentReplied: {
		category:      CategorySocial,
		titleTemplate: "{actor} replied to your comment",
		bodyTemplate:  "{snippet}",
	},
	EventUserFollowed: {
		category:      CategorySocial,
		titleTemplate: "{actor} started following you",
		bodyTemplate:  "Tap to view {actor}'s profile",
	},
	EventUserMentioned: {
		category:      CategorySocial,
		titleTemplate: "{actor} mentioned you",
		bodyTemplate:  "{snippet}",
	},
	EventSystemAnnouncement: {
		category:      CategorySystem,
		titleTemplate: "{actor}",
		bodyTemplate:  "{snippet}",
	},
}

// Valid reports whether the event type is known.
func (t EventType) Valid() bool {
	_, ok := eventTypeSpecs[t]

	return ok
}

// Category returns the category derived from the event type, or "" for unknown types.
func (t EventType) Category() Category {
	return eventTypeSpecs[t].category
}

// RenderedContent is the user-facing text for one event.
type RenderedContent struct {
	Title    string
	Body     string
	Deeplink string
}

// Render builds the title, body and deeplink for an event payload.
func (t EventType) Render(payload EventPayload) RenderedContent {
	spec := eventTypeSpecs[t]

	actor := strings.TrimSpace(payload.ActorName)
	if actor == "" {
		actor = "Someone"
	}

	replacer := strings.NewReplacer("{actor}", actor, "{snippet}", payload.Snippet)

	return RenderedContent{
		Title:    strings.TrimSpace(replacer.Replace(spec.titleTemplate)),
		Body:     strings.TrimSpace(replacer.Replace(spec.bodyTemplate)),
		Deeplink: payload.Deeplink(),
	}
}
