package skill

import (
	"encoding/json"

	"github.com/clintonb/alexa-skills/internal/enrollment"
)

// Session attribute keys. Attributes ride the voice envelope: whatever a
// response carries comes back verbatim on the session's next request.
const (
	attrQuestion    = "QUESTION"
	attrEnrollments = "ENROLLMENTS"
)

// questionEnrollments marks that the skill asked "would you like me to list
// them?" and is waiting for a yes/no.
const questionEnrollments = "ENROLLMENTS"

// Attributes is the typed view of the session state the skill carries
// between turns. The enrollment set is the only cross-turn data; Question
// records which confirmation, if any, is pending.
type Attributes struct {
	Question    string
	Enrollments enrollment.Set
}

// DecodeAttributes reads typed attributes from the raw envelope map.
// Unknown or malformed entries are ignored — a garbled session degrades to
// an empty state, never an error.
func DecodeAttributes(raw map[string]json.RawMessage) Attributes {
	var attrs Attributes
	if v, ok := raw[attrQuestion]; ok {
		_ = json.Unmarshal(v, &attrs.Question)
	}
	if v, ok := raw[attrEnrollments]; ok {
		_ = json.Unmarshal(v, &attrs.Enrollments)
	}
	return attrs
}

// Encode serializes the attributes for the response envelope. Returns nil
// when there is nothing to carry, which omits the field entirely.
func (a Attributes) Encode() map[string]json.RawMessage {
	raw := make(map[string]json.RawMessage)
	if a.Question != "" {
		v, _ := json.Marshal(a.Question)
		raw[attrQuestion] = v
	}
	if len(a.Enrollments) > 0 {
		v, _ := json.Marshal(a.Enrollments)
		raw[attrEnrollments] = v
	}
	if len(raw) == 0 {
		return nil
	}
	return raw
}

// AwaitingListConfirmation reports whether the previous turn stored an
// enrollment set and asked the user to confirm listing it.
func (a Attributes) AwaitingListConfirmation() bool {
	return a.Question == questionEnrollments && len(a.Enrollments) > 0
}
