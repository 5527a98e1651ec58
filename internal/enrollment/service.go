package enrollment

import (
	"context"

	"github.com/clintonb/alexa-skills/internal/edx"
	"github.com/clintonb/alexa-skills/internal/logging"
)

// EnrollmentAPI is the slice of the LMS client the service needs.
type EnrollmentAPI interface {
	List(ctx context.Context, userToken string) ([]edx.Enrollment, error)
	SetActive(ctx context.Context, userToken, courseID string, active bool) error
}

// CatalogAPI is the slice of the catalog client the service needs.
type CatalogAPI interface {
	CourseRuns(ctx context.Context, keys []string) ([]edx.CourseRun, error)
	Search(ctx context.Context, query string) ([]edx.CourseRun, error)
}

// Service composes the LMS and catalog clients: it fetches raw enrollments,
// joins them with catalog titles, and performs enroll/unenroll side effects.
type Service struct {
	lms     EnrollmentAPI
	catalog CatalogAPI
	log     *logging.Logger
}

// NewService creates the enrollment service.
func NewService(lms EnrollmentAPI, catalog CatalogAPI, log *logging.Logger) *Service {
	return &Service{
		lms:     lms,
		catalog: catalog,
		log:     log.Sub("enrollment"),
	}
}

// Fetch lists the user's enrollments and reduces them to a Set of course-run
// keys with empty records. Any upstream failure surfaces as edx.ErrUpstream.
func (s *Service) Fetch(ctx context.Context, userToken string) (Set, error) {
	enrollments, err := s.lms.List(ctx, userToken)
	if err != nil {
		s.log.Error().Err(err).Msg("an error occurred while retrieving enrollments")
		return nil, err
	}

	set := make(Set, len(enrollments))
	for _, e := range enrollments {
		set[e.CourseID] = Record{}
	}
	return set, nil
}

// EnrichTitles joins the set with catalog titles using one batched lookup
// over all keys. Keys the catalog does not know keep an empty title; only a
// failure of the catalog call itself is an error. Enriching twice yields the
// same titles — catalog lookups are pure reads.
func (s *Service) EnrichTitles(ctx context.Context, set Set) (Set, error) {
	if len(set) == 0 {
		return set, nil
	}

	runs, err := s.catalog.CourseRuns(ctx, set.Keys())
	if err != nil {
		s.log.Error().Err(err).Msg("an error occurred while looking up course titles")
		return nil, err
	}

	for _, run := range runs {
		if _, ok := set[run.Key]; ok {
			set[run.Key] = Record{Title: run.Title}
		}
	}
	return set, nil
}

// Search runs a free-text catalog search. The client applies the skill's
// fixed filters: first page only, ten results, active course runs.
func (s *Service) Search(ctx context.Context, query string) ([]SearchResult, error) {
	runs, err := s.catalog.Search(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("an error occurred while searching the catalog")
		return nil, err
	}

	results := make([]SearchResult, 0, len(runs))
	for _, run := range runs {
		results = append(results, SearchResult{Key: run.Key, Title: run.Title})
	}
	return results, nil
}

// SetActive posts an enrollment change with mode fixed to "audit". There is
// no confirmation read-back; callers assume success when no error is raised.
func (s *Service) SetActive(ctx context.Context, userToken, courseKey string, active bool) error {
	if err := s.lms.SetActive(ctx, userToken, courseKey, active); err != nil {
		s.log.Error().Err(err).Str("courseKey", courseKey).Bool("active", active).
			Msg("an error occurred while changing the user's enrollment")
		return err
	}
	return nil
}
