package alexa

import (
	"encoding/json"
	"strings"
)

// Output speech types.
const (
	SpeechTypePlainText = "PlainText"
	SpeechTypeSSML      = "SSML"
)

// Card types.
const (
	CardTypeSimple      = "Simple"
	CardTypeLinkAccount = "LinkAccount"
)

// ResponseEnvelope is the top-level body returned to the voice platform.
type ResponseEnvelope struct {
	Version           string                     `json:"version"`
	SessionAttributes map[string]json.RawMessage `json:"sessionAttributes,omitempty"`
	Response          Response                   `json:"response"`
}

// Response carries the spoken output for one turn. A response without a
// reprompt ends the session.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is the synthesized speech payload, plain text or SSML.
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

// Card is the visual summary shown in the companion app.
type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// Reprompt is spoken when the user stays silent; its presence keeps the
// session open for another utterance.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// Statement creates a response that speaks text and ends the session.
func Statement(text string) ResponseEnvelope {
	return ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     plainSpeech(text),
			ShouldEndSession: true,
		},
	}
}

// Question creates a response that speaks text, sets a reprompt, and keeps
// the session open.
func Question(text, reprompt string) ResponseEnvelope {
	return ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     plainSpeech(text),
			Reprompt:         &Reprompt{OutputSpeech: *plainSpeech(reprompt)},
			ShouldEndSession: false,
		},
	}
}

// SSMLStatement creates a session-ending response with SSML speech.
func SSMLStatement(ssml string) ResponseEnvelope {
	return ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     ssmlSpeech(ssml),
			ShouldEndSession: true,
		},
	}
}

// SSMLQuestion creates an open response with SSML speech and a plain reprompt.
func SSMLQuestion(ssml, reprompt string) ResponseEnvelope {
	return ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     ssmlSpeech(ssml),
			Reprompt:         &Reprompt{OutputSpeech: *plainSpeech(reprompt)},
			ShouldEndSession: false,
		},
	}
}

// Empty creates a response with no speech, acknowledging a request that
// needs no spoken output (e.g. session-ended notifications).
func Empty() ResponseEnvelope {
	return ResponseEnvelope{
		Version:  "1.0",
		Response: Response{ShouldEndSession: true},
	}
}

// WithSimpleCard attaches a simple text card.
func (e ResponseEnvelope) WithSimpleCard(title, content string) ResponseEnvelope {
	e.Response.Card = &Card{Type: CardTypeSimple, Title: title, Content: content}
	return e
}

// WithLinkAccountCard attaches the account-linking card, prompting the user
// to connect their account in the companion app.
func (e ResponseEnvelope) WithLinkAccountCard() ResponseEnvelope {
	e.Response.Card = &Card{Type: CardTypeLinkAccount}
	return e
}

// WithAttributes sets the session attributes echoed back on the next turn.
func (e ResponseEnvelope) WithAttributes(attrs map[string]json.RawMessage) ResponseEnvelope {
	e.SessionAttributes = attrs
	return e
}

func plainSpeech(text string) *OutputSpeech {
	return &OutputSpeech{Type: SpeechTypePlainText, Text: text}
}

func ssmlSpeech(ssml string) *OutputSpeech {
	return &OutputSpeech{Type: SpeechTypeSSML, SSML: ssml}
}

// SSMLBuilder assembles paragraph-wrapped speech for list-style output.
type SSMLBuilder struct {
	b strings.Builder
}

// Paragraph appends text wrapped in a paragraph element, giving the
// synthesizer a natural pause between list items.
func (s *SSMLBuilder) Paragraph(text string) *SSMLBuilder {
	s.b.WriteString("<p>")
	s.b.WriteString(escapeSSML(text))
	s.b.WriteString("</p>")
	return s
}

// Text appends unwrapped text, typically a trailing prompt.
func (s *SSMLBuilder) Text(text string) *SSMLBuilder {
	s.b.WriteString(escapeSSML(text))
	return s
}

// String returns the accumulated speech wrapped in a speak element.
func (s *SSMLBuilder) String() string {
	return "<speak>" + s.b.String() + "</speak>"
}

// escapeSSML escapes characters that would break SSML markup. Course titles
// come from the catalog and can contain ampersands or angle brackets.
func escapeSSML(text string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(text)
}
