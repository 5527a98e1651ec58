package skill

import (
	"context"

	"github.com/clintonb/alexa-skills/internal/alexa"
)

func (d *Dispatcher) handleLaunch(_ context.Context, turn *Turn) alexa.ResponseEnvelope {
	if turn.Token == "" {
		return alexa.Question(welcomeUnlinked, welcomeUnlinked).WithLinkAccountCard()
	}
	return alexa.Question(welcomeLinked, welcomeLinked).WithSimpleCard(appName, welcomeLinked)
}

// handleEnrollments fetches the enrollment count, stores the raw set in
// session attributes, and asks whether to list the titles. A failed fetch
// ends the turn with the generic retry message and writes no state.
func (d *Dispatcher) handleEnrollments(ctx context.Context, turn *Turn) alexa.ResponseEnvelope {
	set, err := d.svc.Fetch(ctx, turn.Token)
	if err != nil {
		return errorStatement()
	}

	if len(set) == 0 {
		return alexa.Statement(notEnrolledText).WithSimpleCard(appName, notEnrolledText)
	}

	text := enrollmentCountQuestion(len(set))
	attrs := Attributes{Question: questionEnrollments, Enrollments: set}
	return alexa.Question(text, text).
		WithSimpleCard(appName, text).
		WithAttributes(attrs.Encode())
}

// handleYes lists the stored enrollment set after the user confirms. The
// attributes are echoed back unchanged, so a repeated "yes" replays the
// same snapshot rather than refetching.
func (d *Dispatcher) handleYes(ctx context.Context, turn *Turn) alexa.ResponseEnvelope {
	if turn.Envelope.Session.New || !turn.Attrs.AwaitingListConfirmation() {
		return d.handleHelp(ctx, turn)
	}

	set, err := d.svc.EnrichTitles(ctx, turn.Attrs.Enrollments)
	if err != nil {
		return errorStatement()
	}

	titles := set.SpokenTitles()
	speech := titleListSpeech("Your courses include", titles, repromptAssist)
	return alexa.SSMLQuestion(speech, repromptAssist).
		WithSimpleCard(appName, cardText("Your courses include", titles)).
		WithAttributes(turn.Attrs.Encode())
}

// handleEnd acknowledges a no/cancel and closes the turn.
func (d *Dispatcher) handleEnd(ctx context.Context, turn *Turn) alexa.ResponseEnvelope {
	if turn.Envelope.Session.New {
		return d.handleHelp(ctx, turn)
	}
	return alexa.Statement(okayText).WithSimpleCard(appName, okayText)
}

// handleListEnrollments fetches, enriches, and speaks the full list with
// count in one turn, bypassing the confirmation flow.
func (d *Dispatcher) handleListEnrollments(ctx context.Context, turn *Turn) alexa.ResponseEnvelope {
	set, err := d.svc.Fetch(ctx, turn.Token)
	if err != nil {
		return errorStatement()
	}
	set, err = d.svc.EnrichTitles(ctx, set)
	if err != nil {
		return errorStatement()
	}

	if len(set) == 0 {
		return alexa.Statement(notEnrolledText).WithSimpleCard(appName, notEnrolledText)
	}

	titles := set.SpokenTitles()
	intro := listIntro(len(set))
	speech := titleListSpeech(intro, titles, repromptAssist)
	return alexa.SSMLQuestion(speech, repromptAssist).
		WithSimpleCard(appName, cardText(intro, titles)).
		WithAttributes(turn.Attrs.Encode())
}

// handleEnroll enrolls the user in the skill's single supported course.
func (d *Dispatcher) handleEnroll(ctx context.Context, turn *Turn) alexa.ResponseEnvelope {
	if err := d.svc.SetActive(ctx, turn.Token, fixedCourseKey, true); err != nil {
		return errorStatement()
	}

	text := enrolledText + repromptAssist
	return alexa.Question(text, repromptAssist).
		WithSimpleCard(appName, text).
		WithAttributes(turn.Attrs.Encode())
}

// handleUnenroll always refuses. The enrollment API only accepts
// unenrollment from server-to-server calls, so the skill points the user at
// the web dashboard instead of attempting the change.
func (d *Dispatcher) handleUnenroll(_ context.Context, _ *Turn) alexa.ResponseEnvelope {
	return alexa.Statement(unenrollText).WithSimpleCard(appName, unenrollText)
}

// handleSearch speaks catalog search results for the requested subject.
// No session-state interaction.
func (d *Dispatcher) handleSearch(ctx context.Context, turn *Turn) alexa.ResponseEnvelope {
	subject := turn.Envelope.Request.SlotValue("Subject")

	results, err := d.svc.Search(ctx, subject)
	if err != nil {
		return errorStatement()
	}

	if len(results) == 0 {
		text := noResultsText(subject)
		return alexa.Statement(text).WithSimpleCard(appName, text)
	}

	titles := make([]string, 0, len(results))
	for _, r := range results {
		titles = append(titles, r.Title)
	}

	intro := searchIntro(len(results), subject)
	speech := titleListSpeech(intro, titles, "")
	return alexa.SSMLStatement(speech).
		WithSimpleCard(appName, cardText(intro, titles))
}

func (d *Dispatcher) handleAbout(_ context.Context, turn *Turn) alexa.ResponseEnvelope {
	return alexa.SSMLQuestion(aboutSpeech(), repromptAssist).
		WithSimpleCard(appName, "Founded by Harvard University and MIT in 2012, edX offers "+
			"high-quality courses from the world's best universities and institutions.").
		WithAttributes(turn.Attrs.Encode())
}

func (d *Dispatcher) handleHelp(_ context.Context, _ *Turn) alexa.ResponseEnvelope {
	return alexa.Statement(helpText).WithSimpleCard(appName, helpText)
}
