package skill

import (
	"fmt"
	"strings"

	"github.com/clintonb/alexa-skills/internal/alexa"
)

const (
	appName    = "edX"
	spokenName = "ed ex"

	// The skill only supports enrolling in this one course; it is not the
	// result of any prior search. A known limitation carried over from the
	// original skill definition.
	fixedCourseKey   = "course-v1:DavidsonX+DavNowX_Voting+3T2016"
	fixedCourseTitle = "US Voting Access and Fraud"
)

// Literal spoken strings. Several are asserted verbatim by tests; change
// with care.
const (
	repromptAssist = "How else may I assist you?"

	welcomeLinked   = "Welcome to the " + spokenName + " app. You can request your current enrollments."
	welcomeUnlinked = "Welcome to the " + spokenName + " app. You must be logged in to continue."

	errorText = "An error occurred while contacting the " + spokenName + " server. Please try again."

	notEnrolledText = "You are not currently enrolled in any courses"

	authEnrollmentStatus = "You must be logged in to get your enrollment status."
	authEnroll           = "You must be logged in to enroll in a course."

	unenrollText = "I am not yet able to unenroll learners. " +
		"Please visit your course dashboard to unenroll from courses."

	helpText = "You can request your current enrollment count"

	okayText = "Okay"

	enrolledText = "You have been enrolled in " + fixedCourseTitle + ". "
)

// courseWord returns the grammatical noun for a course count.
func courseWord(n int) string {
	if n == 1 {
		return "course"
	}
	return "courses"
}

// enrollmentCountQuestion phrases the count prompt that precedes listing.
func enrollmentCountQuestion(n int) string {
	return fmt.Sprintf("You are currently enrolled in %d %s. Would you like me to list them?",
		n, courseWord(n))
}

// listIntro phrases the combined count-and-list opener.
func listIntro(n int) string {
	if n == 1 {
		return fmt.Sprintf("You are currently enrolled in %d course. It is", n)
	}
	return fmt.Sprintf("You are currently enrolled in %d courses. They are", n)
}

// searchIntro phrases the search-result opener for a non-empty result set.
func searchIntro(n int, subject string) string {
	if n == 1 {
		return fmt.Sprintf("I found %d course about %s. It is", n, subject)
	}
	return fmt.Sprintf("I found %d courses about %s. They are", n, subject)
}

// noResultsText phrases the empty search result.
func noResultsText(subject string) string {
	return fmt.Sprintf("I found no courses about %s", subject)
}

// titleListSpeech builds SSML speaking an intro, one paragraph per title,
// and an optional trailing prompt.
func titleListSpeech(intro string, titles []string, trailing string) string {
	var b alexa.SSMLBuilder
	b.Paragraph(intro)
	for _, title := range titles {
		b.Paragraph(title)
	}
	if trailing != "" {
		b.Text(trailing)
	}
	return b.String()
}

// cardText builds the plain-text card equivalent of a spoken list.
func cardText(intro string, titles []string) string {
	lines := append([]string{intro}, titles...)
	return strings.Join(lines, "\n")
}

// aboutSpeech is the static informational response about edX.
func aboutSpeech() string {
	var b alexa.SSMLBuilder
	b.Paragraph("Founded by Harvard University and MIT in 2012, " + spokenName +
		" is an online learning destination and MOOC provider, offering high-quality courses " +
		"from the world's best universities and institutions to learners everywhere.")
	b.Paragraph("The mission of " + spokenName + " is to Increase access to high-quality education " +
		"for everyone everywhere, Enhance teaching and learning on campus and online, " +
		"and Advance teaching and learning through research")
	b.Text(repromptAssist)
	return b.String()
}

// errorStatement is the single generic response for any upstream failure.
func errorStatement() alexa.ResponseEnvelope {
	return alexa.Statement(errorText).WithSimpleCard(appName, errorText)
}

// ErrorResponse exposes the generic error statement for callers outside the
// dispatch path, e.g. the gateway's panic recovery.
func ErrorResponse() alexa.ResponseEnvelope {
	return errorStatement()
}
