package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"applicant-portal-service/internal/models"
	"applicant-portal-service/internal/transform"
	"applicant-portal-service/internal/upstream"
)

type ResumeClient interface {
	GetPlainTextResume(ctx context.Context, userID string) (json.RawMessage, error)
	UpdatePlainTextResume(ctx context.Context, userID string, resume *models.ResumeAPI) error
}

// ResumeSession mirrors the preferences session for the structured resume.
// The fetch tolerates every payload shape the backend is known to return;
// conversion failures degrade to defaults instead of erroring the session.
type ResumeSession struct {
	client   ResumeClient
	notifier Notifier
	anchor   ViewportAnchor

	userID     string
	onboarding bool
	onComplete func()

	state         State
	form          models.ResumeForm
	isCreatingNew bool
	fetching      bool
}

type ResumeSessionOptions struct {
	UserID        string
	Onboarding    bool
	IsCreatingNew bool
	Form          *models.ResumeForm
	OnComplete    func()
}

func NewResumeSession(client ResumeClient, notifier Notifier, anchor ViewportAnchor, opts ResumeSessionOptions) *ResumeSession {
	s := &ResumeSession{
		client:        client,
		notifier:      notifier,
		anchor:        anchor,
		userID:        opts.UserID,
		onboarding:    opts.Onboarding,
		isCreatingNew: opts.IsCreatingNew,
		onComplete:    opts.OnComplete,
		state:         StateIdle,
		form:          transform.DefaultResumeForm(),
	}
	if opts.Form != nil {
		s.form = *opts.Form
	}
	return s
}

func (s *ResumeSession) Fetch(ctx context.Context) error {
	s.state = StateFetching
	s.fetching = true
	defer func() { s.fetching = false }()

	position := 0
	if s.anchor != nil {
		position = s.anchor.Capture()
	}

	raw, err := s.client.GetPlainTextResume(ctx, s.userID)
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		s.state = StateNotFound
		s.form = transform.DefaultResumeForm()
		if !s.isCreatingNew {
			s.isCreatingNew = true
			if !s.onboarding {
				s.notifier.Success("No resume saved yet. Fill in the form to create one.")
			}
		}
	case err != nil:
		s.state = StateErrored
		s.notifier.Error(failureMessage(err))
		return err
	default:
		s.state = StateLoaded
		s.form = transform.ResumeToForm(raw)
	}

	if s.anchor != nil {
		s.anchor.Restore(position)
	}
	return nil
}

// AttemptSubmit validates required identity fields, converts and writes the
// resume upstream. Implements Submittable.
func (s *ResumeSession) AttemptSubmit(ctx context.Context) (bool, error) {
	if failure := s.validate(); failure != nil {
		s.notifier.Error(failure.Message())
		return false, failure
	}

	api := transform.ResumeFormToAPI(&s.form)
	if err := s.client.UpdatePlainTextResume(ctx, s.userID, &api); err != nil {
		s.notifier.Error(failureMessage(err))
		return false, err
	}

	if s.isCreatingNew {
		s.isCreatingNew = false
		if !s.onboarding {
			s.notifier.Success("Resume created.")
		}
	} else if !s.onboarding {
		s.notifier.Success("Resume updated.")
	}

	if s.onComplete != nil {
		s.onComplete()
	}
	return true, nil
}

func (s *ResumeSession) validate() *upstream.Failure {
	personal := s.form.PersonalInformation
	missing := []string{}
	if strings.TrimSpace(personal.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(personal.Surname) == "" {
		missing = append(missing, "surname")
	}
	if strings.TrimSpace(personal.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return upstream.NewValidationFailure("Name, surname and email are required.", missing...)
	}

	for _, language := range s.form.Languages {
		if !validLanguageLevel(language.Level) {
			return upstream.NewValidationFailure("Unknown language proficiency level.", "languages")
		}
	}
	return nil
}

func validLanguageLevel(level string) bool {
	switch models.LanguageLevel(level) {
	case models.LanguageLevelNative, models.LanguageLevelFluent,
		models.LanguageLevelProfessional, models.LanguageLevelIntermediate,
		models.LanguageLevelBeginner:
		return true
	}
	return false
}

func (s *ResumeSession) Form() models.ResumeForm        { return s.form }
func (s *ResumeSession) SetForm(form models.ResumeForm) { s.form = form }
func (s *ResumeSession) State() State                   { return s.state }
func (s *ResumeSession) IsCreatingNew() bool            { return s.isCreatingNew }
func (s *ResumeSession) Fetching() bool                 { return s.fetching }
