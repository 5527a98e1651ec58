// Package alexa defines the voice-platform wire format: the request
// envelope delivered once per conversation turn and the response envelope
// returned to the platform. Parsing and rendering only — everything the
// skill actually does with a request lives in the skill package.
package alexa

import "encoding/json"

// Request types delivered by the voice platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// RequestEnvelope is the top-level body of an inbound voice request.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session is the conversational context spanning multiple turns. Attributes
// round-trip through the platform: values written into a response come back
// unchanged on the next request of the same session.
type Session struct {
	New        bool                       `json:"new"`
	SessionID  string                     `json:"sessionId"`
	User       User                       `json:"user"`
	Attributes map[string]json.RawMessage `json:"attributes,omitempty"`
}

// User identifies the speaker. AccessToken is present only when the user
// has linked their account; an empty token means "not logged in".
type User struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Request is one turn's payload. Intent is populated for IntentRequest only.
type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp,omitempty"`
	Intent    Intent `json:"intent,omitempty"`
	Reason    string `json:"reason,omitempty"` // SessionEndedRequest only
}

// Intent names a recognized utterance plus any captured slot values.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is a single captured value, e.g. the free-text subject of a search.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// SlotValue returns the named slot's value, or "" when absent.
func (r Request) SlotValue(name string) string {
	slot, ok := r.Intent.Slots[name]
	if !ok {
		return ""
	}
	return slot.Value
}

// UserToken returns the linked-account access token, or "" when the user
// has not linked their account.
func (e RequestEnvelope) UserToken() string {
	return e.Session.User.AccessToken
}
