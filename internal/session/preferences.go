package session

import (
	"context"
	"errors"

	"applicant-portal-service/internal/models"
	"applicant-portal-service/internal/transform"
	"applicant-portal-service/internal/upstream"
)

// ConfigClient is the slice of the upstream client the preferences session
// needs.
type ConfigClient interface {
	GetConfig(ctx context.Context, userID, subscriptionID string) (*models.ConfigPublic, error)
	UpdateConfig(ctx context.Context, userID, subscriptionID string, cfg *models.ConfigPublic) error
}

// PreferencesSession orchestrates one job-preferences form: fetch with
// 404-as-creation, wholesale reset into form state, validation-gated submit,
// created/updated messaging.
type PreferencesSession struct {
	client   ConfigClient
	notifier Notifier
	anchor   ViewportAnchor

	userID         string
	subscriptionID string
	onboarding     bool
	onComplete     func()

	state         State
	form          models.JobPreferencesForm
	isCreatingNew bool
	fetching      bool
}

type PreferencesSessionOptions struct {
	UserID         string
	SubscriptionID string
	Onboarding     bool
	IsCreatingNew  bool
	Form           *models.JobPreferencesForm
	OnComplete     func()
}

func NewPreferencesSession(client ConfigClient, notifier Notifier, anchor ViewportAnchor, opts PreferencesSessionOptions) *PreferencesSession {
	s := &PreferencesSession{
		client:         client,
		notifier:       notifier,
		anchor:         anchor,
		userID:         opts.UserID,
		subscriptionID: opts.SubscriptionID,
		onboarding:     opts.Onboarding,
		isCreatingNew:  opts.IsCreatingNew,
		onComplete:     opts.OnComplete,
		state:          StateIdle,
		form:           transform.DefaultJobPreferencesForm(),
	}
	if opts.Form != nil {
		s.form = *opts.Form
	}
	return s
}

// Fetch pulls the current config and resets the form wholesale with the
// converted value. A 404 is the benign "not created yet" outcome: defaults
// are seeded, isCreatingNew is raised, and the user is told once to fill the
// form in. The fetching flag clears on every path.
func (s *PreferencesSession) Fetch(ctx context.Context) error {
	s.state = StateFetching
	s.fetching = true
	defer func() { s.fetching = false }()

	position := 0
	if s.anchor != nil {
		position = s.anchor.Capture()
	}

	cfg, err := s.client.GetConfig(ctx, s.userID, s.subscriptionID)
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		s.state = StateNotFound
		s.form = transform.DefaultJobPreferencesForm()
		if !s.isCreatingNew {
			s.isCreatingNew = true
			if !s.onboarding {
				s.notifier.Success("No preferences saved yet. Fill in the form to create them.")
			}
		}
	case err != nil:
		s.state = StateErrored
		s.notifier.Error(failureMessage(err))
		return err
	default:
		s.state = StateLoaded
		s.form = transform.ConfigToForm(cfg)
	}

	// Restore only after the reset has committed; the reset is what moves
	// the viewport in the first place.
	if s.anchor != nil {
		s.anchor.Restore(position)
	}
	return nil
}

// AttemptSubmit validates, converts and writes the form upstream. Validation
// rejections never reach the network. Implements Submittable.
func (s *PreferencesSession) AttemptSubmit(ctx context.Context) (bool, error) {
	if s.subscriptionID == "" {
		return s.reject(upstream.NewValidationFailure("Select a subscription before saving preferences.", "subscription"))
	}
	if len(s.form.Positions) == 0 {
		return s.reject(upstream.NewValidationFailure("Add at least one position.", "positions"))
	}
	if len(s.form.Locations) == 0 {
		return s.reject(upstream.NewValidationFailure("Add at least one location.", "locations"))
	}
	if !models.IsValidDistance(s.form.Distance) {
		return s.reject(upstream.NewValidationFailure("Distance must be one of the offered radius options.", "distance"))
	}

	cfg := transform.FormToConfig(&s.form)
	if err := s.client.UpdateConfig(ctx, s.userID, s.subscriptionID, &cfg); err != nil {
		s.notifier.Error(failureMessage(err))
		return false, err
	}

	if s.isCreatingNew {
		s.isCreatingNew = false
		if !s.onboarding {
			s.notifier.Success("Preferences created.")
		}
	} else if !s.onboarding {
		s.notifier.Success("Preferences updated.")
	}

	if s.onComplete != nil {
		s.onComplete()
	}
	return true, nil
}

func (s *PreferencesSession) reject(failure *upstream.Failure) (bool, error) {
	s.notifier.Error(failure.Message())
	return false, failure
}

func (s *PreferencesSession) Form() models.JobPreferencesForm { return s.form }

// SetForm replaces the form with user edits.
func (s *PreferencesSession) SetForm(form models.JobPreferencesForm) { s.form = form }

func (s *PreferencesSession) State() State        { return s.state }
func (s *PreferencesSession) IsCreatingNew() bool { return s.isCreatingNew }
func (s *PreferencesSession) Fetching() bool      { return s.fetching }
