package alexa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestEnvelopeDecoding(t *testing.T) {
	raw := `{
		"version": "1.0",
		"session": {
			"new": false,
			"sessionId": "amzn1.echo-api.session.abc",
			"user": {"userId": "amzn1.ask.account.xyz", "accessToken": "user-token"},
			"attributes": {"QUESTION": "\"ENROLLMENTS\""}
		},
		"request": {
			"type": "IntentRequest",
			"requestId": "amzn1.echo-api.request.123",
			"intent": {
				"name": "EdXSearchIntent",
				"slots": {"Subject": {"name": "Subject", "value": "data science"}}
			}
		}
	}`

	var env RequestEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	assert.Equal(t, RequestTypeIntent, env.Request.Type)
	assert.Equal(t, "EdXSearchIntent", env.Request.Intent.Name)
	assert.Equal(t, "data science", env.Request.SlotValue("Subject"))
	assert.Equal(t, "", env.Request.SlotValue("Missing"))
	assert.Equal(t, "user-token", env.UserToken())
	assert.False(t, env.Session.New)
	assert.Contains(t, env.Session.Attributes, "QUESTION")
}

func TestStatementEndsSession(t *testing.T) {
	resp := Statement("Okay")

	assert.True(t, resp.Response.ShouldEndSession)
	assert.Nil(t, resp.Response.Reprompt)
	require.NotNil(t, resp.Response.OutputSpeech)
	assert.Equal(t, SpeechTypePlainText, resp.Response.OutputSpeech.Type)
	assert.Equal(t, "Okay", resp.Response.OutputSpeech.Text)
}

func TestQuestionKeepsSessionOpen(t *testing.T) {
	resp := Question("Would you like me to list them?", "Would you like me to list them?")

	assert.False(t, resp.Response.ShouldEndSession)
	require.NotNil(t, resp.Response.Reprompt)
	assert.Equal(t, "Would you like me to list them?", resp.Response.Reprompt.OutputSpeech.Text)
}

func TestCards(t *testing.T) {
	simple := Statement("hi").WithSimpleCard("edX", "hi")
	require.NotNil(t, simple.Response.Card)
	assert.Equal(t, CardTypeSimple, simple.Response.Card.Type)
	assert.Equal(t, "edX", simple.Response.Card.Title)

	link := Statement("log in").WithLinkAccountCard()
	require.NotNil(t, link.Response.Card)
	assert.Equal(t, CardTypeLinkAccount, link.Response.Card.Type)
	assert.Empty(t, link.Response.Card.Title)
}

func TestSSMLBuilder(t *testing.T) {
	var b SSMLBuilder
	got := b.Paragraph("Your courses include").
		Paragraph("Intro to Go").
		Text("How else may I assist you?").
		String()

	assert.Equal(t,
		"<speak><p>Your courses include</p><p>Intro to Go</p>How else may I assist you?</speak>",
		got)
}

func TestSSMLBuilderEscapesMarkup(t *testing.T) {
	var b SSMLBuilder
	got := b.Paragraph("Circuits & Electronics <Part 1>").String()

	assert.Equal(t, "<speak><p>Circuits &amp; Electronics &lt;Part 1&gt;</p></speak>", got)
}

func TestResponseJSONShape(t *testing.T) {
	resp := SSMLQuestion("<speak>hi</speak>", "again?").
		WithSimpleCard("edX", "hi").
		WithAttributes(map[string]json.RawMessage{"KEY": json.RawMessage(`"v"`)})

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "1.0", decoded["version"])
	assert.Contains(t, decoded, "sessionAttributes")

	response := decoded["response"].(map[string]any)
	speech := response["outputSpeech"].(map[string]any)
	assert.Equal(t, "SSML", speech["type"])
	assert.Equal(t, "<speak>hi</speak>", speech["ssml"])
	_, hasText := speech["text"]
	assert.False(t, hasText)
}

func TestEmptyResponse(t *testing.T) {
	resp := Empty()
	assert.Nil(t, resp.Response.OutputSpeech)
	assert.True(t, resp.Response.ShouldEndSession)
}
