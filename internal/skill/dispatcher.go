// Package skill implements the intent dispatcher: it maps each recognized
// voice intent to a handler, reads and writes session attributes, and
// renders the spoken response.
package skill

import (
	"context"
	"time"

	"github.com/clintonb/alexa-skills/internal/alexa"
	"github.com/clintonb/alexa-skills/internal/enrollment"
	"github.com/clintonb/alexa-skills/internal/logging"
)

// Intent names the skill responds to.
const (
	IntentEnrollments     = "EdXEnrollmentsIntent"
	IntentListEnrollments = "EdXListEnrollmentsIntent"
	IntentEnroll          = "EdXEnrollIntent"
	IntentUnenroll        = "EdXUnenrollIntent"
	IntentSearch          = "EdXSearchIntent"
	IntentAbout           = "EdXAboutIntent"
	IntentYes             = "AMAZON.YesIntent"
	IntentNo              = "AMAZON.NoIntent"
	IntentCancel          = "AMAZON.CancelIntent"
	IntentHelp            = "AMAZON.HelpIntent"
)

// EnrollmentService is the slice of the enrollment service the dispatcher
// needs; satisfied by *enrollment.Service.
type EnrollmentService interface {
	Fetch(ctx context.Context, userToken string) (enrollment.Set, error)
	EnrichTitles(ctx context.Context, set enrollment.Set) (enrollment.Set, error)
	Search(ctx context.Context, query string) ([]enrollment.SearchResult, error)
	SetActive(ctx context.Context, userToken, courseKey string, active bool) error
}

// Turn carries everything a handler needs for one request/response exchange.
type Turn struct {
	Envelope alexa.RequestEnvelope
	Attrs    Attributes
	Token    string // user access token, "" when the account is not linked
}

// Handler processes one intent within a turn.
type Handler func(ctx context.Context, turn *Turn) alexa.ResponseEnvelope

type registration struct {
	handler Handler

	// requiresAuth routes the turn to a link-account response when no user
	// token is present. authDenied is the spoken text for that case; each
	// intent keeps its own phrasing.
	requiresAuth bool
	authDenied   string
}

// Dispatcher routes voice requests to intent handlers. One invocation per
// inbound request; the dispatcher itself holds no per-session state.
type Dispatcher struct {
	svc      EnrollmentService
	handlers map[string]registration
	log      *logging.Logger
}

// NewDispatcher creates a dispatcher with all intents registered.
func NewDispatcher(svc EnrollmentService, log *logging.Logger) *Dispatcher {
	d := &Dispatcher{
		svc:      svc,
		handlers: make(map[string]registration),
		log:      log.Sub("skill"),
	}

	d.handle(IntentEnrollments, d.handleEnrollments, authEnrollmentStatus)
	d.handle(IntentListEnrollments, d.handleListEnrollments, authEnrollmentStatus)
	d.handle(IntentEnroll, d.handleEnroll, authEnroll)
	d.handle(IntentUnenroll, d.handleUnenroll, "")
	d.handle(IntentSearch, d.handleSearch, "")
	d.handle(IntentAbout, d.handleAbout, "")
	d.handle(IntentYes, d.handleYes, "")
	d.handle(IntentNo, d.handleEnd, "")
	d.handle(IntentCancel, d.handleEnd, "")
	d.handle(IntentHelp, d.handleHelp, "")

	return d
}

func (d *Dispatcher) handle(intent string, h Handler, authDenied string) {
	d.handlers[intent] = registration{
		handler:      h,
		requiresAuth: authDenied != "",
		authDenied:   authDenied,
	}
}

// Dispatch processes one inbound envelope and returns the response to
// speak. It never fails: anything unexpected degrades to the help response.
func (d *Dispatcher) Dispatch(ctx context.Context, env alexa.RequestEnvelope) alexa.ResponseEnvelope {
	start := time.Now()
	turn := &Turn{
		Envelope: env,
		Attrs:    DecodeAttributes(env.Session.Attributes),
		Token:    env.UserToken(),
	}

	resp := d.route(ctx, turn)

	d.log.Info().
		Str("requestType", env.Request.Type).
		Str("intent", env.Request.Intent.Name).
		Bool("linked", turn.Token != "").
		Bool("endsSession", resp.Response.ShouldEndSession).
		Dur("duration", time.Since(start)).
		Msg("turn handled")

	return resp
}

func (d *Dispatcher) route(ctx context.Context, turn *Turn) alexa.ResponseEnvelope {
	switch turn.Envelope.Request.Type {
	case alexa.RequestTypeLaunch:
		return d.handleLaunch(ctx, turn)

	case alexa.RequestTypeSessionEnded:
		// Acknowledged; no side effects.
		return alexa.Empty()

	case alexa.RequestTypeIntent:
		reg, ok := d.handlers[turn.Envelope.Request.Intent.Name]
		if !ok {
			d.log.Warn().Str("intent", turn.Envelope.Request.Intent.Name).Msg("unknown intent")
			return d.handleHelp(ctx, turn)
		}
		if reg.requiresAuth && turn.Token == "" {
			return alexa.Statement(reg.authDenied).WithLinkAccountCard()
		}
		return reg.handler(ctx, turn)

	default:
		d.log.Warn().Str("requestType", turn.Envelope.Request.Type).Msg("unknown request type")
		return d.handleHelp(ctx, turn)
	}
}
