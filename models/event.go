package models

import "time"

// EventType discriminates the feed entry variants.
type EventType string

const (
	EventGlobalMessage     EventType = "GlobalMessageEvent"
	EventExpiry            EventType = "ExpiryEvent"
	EventDelete            EventType = "DeleteEvent"
	EventKeywordCreated    EventType = "KeywordCreatedEvent"
	EventMessage           EventType = "MessageEvent"
	EventInterest          EventType = "InterestEvent"
	EventPurchased         EventType = "PurchasedEvent"
	EventInterestPurchased EventType = "InterestPurchasedEvent"
)

// EventTypes lists every feed entry variant the backend emits.
var EventTypes = []EventType{
	EventGlobalMessage,
	EventExpiry,
	EventDelete,
	EventKeywordCreated,
	EventMessage,
	EventInterest,
	EventPurchased,
	EventInterestPurchased,
}

// EventTag is the user-assigned colour tag on a feed entry.
type EventTag string

const (
	TagNone   EventTag = "none"
	TagRed    EventTag = "red"
	TagOrange EventTag = "orange"
	TagYellow EventTag = "yellow"
	TagGreen  EventTag = "green"
	TagBlue   EventTag = "blue"
	TagPurple EventTag = "purple"
)

// EventTags lists every colour tag a feed entry can carry.
var EventTags = []EventTag{TagNone, TagRed, TagOrange, TagYellow, TagGreen, TagBlue, TagPurple}

// EventStatus is the user-assigned shelving state of a feed entry.
type EventStatus string

const (
	StatusNormal   EventStatus = "normal"
	StatusStarred  EventStatus = "starred"
	StatusArchived EventStatus = "archived"
)

// EventStatuses lists every shelving state.
var EventStatuses = []EventStatus{StatusNormal, StatusStarred, StatusArchived}

// Conversation identifies the card discussion a MessageEvent belongs to.
type Conversation struct {
	Card  MarketplaceCard `json:"card"`
	Buyer User            `json:"buyer"`
}

// Event is a newsfeed entry. The Type field discriminates which payload
// pointer is populated; all other payload fields are nil.
type Event struct {
	ID           int         `json:"id"`
	Type         EventType   `json:"type"`
	Created      string      `json:"created"`
	Tag          EventTag    `json:"tag"`
	Status       EventStatus `json:"status"`
	Read         bool        `json:"read"`
	LastModified string      `json:"lastModified"`

	// GlobalMessageEvent
	Message *string `json:"message,omitempty"`
	// ExpiryEvent, InterestEvent
	Card *MarketplaceCard `json:"card,omitempty"`
	// DeleteEvent: title and section of the card that was removed
	Title   *string             `json:"title,omitempty"`
	Section *MarketplaceSection `json:"section,omitempty"`
	// KeywordCreatedEvent
	Keyword *Keyword `json:"keyword,omitempty"`
	Creator *User    `json:"creator,omitempty"`
	// MessageEvent
	ConversationMessage *Message      `json:"conversationMessage,omitempty"`
	Conversation        *Conversation `json:"conversation,omitempty"`
	// InterestEvent
	Interested *bool `json:"interested,omitempty"`
	// PurchasedEvent, InterestPurchasedEvent
	BoughtSaleItem *BoughtSale `json:"boughtSaleItem,omitempty"`
}

// lastModified timestamps arrive as backend-formatted strings. Parse what we
// can; anything unparseable falls back to lexicographic order, which matches
// the backend's zero-padded format anyway.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999Z",
	"2006-01-02 15:04:05",
}

// TimestampAfter reports whether timestamp a is strictly later than b.
func TimestampAfter(a, b string) bool {
	ta, okA := parseTimestamp(a)
	tb, okB := parseTimestamp(b)
	if okA && okB {
		return ta.After(tb)
	}
	return a > b
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
