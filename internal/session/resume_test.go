package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"applicant-portal-service/internal/models"
	"applicant-portal-service/internal/transform"
	"applicant-portal-service/internal/upstream"
)

type fakeResumeClient struct {
	getResult   json.RawMessage
	getErr      error
	updateErr   error
	getCalls    int
	updateCalls int
	lastUpdate  *models.ResumeAPI
}

func (f *fakeResumeClient) GetPlainTextResume(ctx context.Context, userID string) (json.RawMessage, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeResumeClient) UpdatePlainTextResume(ctx context.Context, userID string, resume *models.ResumeAPI) error {
	f.updateCalls++
	f.lastUpdate = resume
	return f.updateErr
}

func resumeFormFixture() models.ResumeForm {
	form := transform.DefaultResumeForm()
	form.PersonalInformation = models.PersonalInformation{
		Name:    "Ada",
		Surname: "Lovelace",
		Email:   "ada@example.com",
	}
	return form
}

func TestResumeFetchNotFoundSeedsDefaults(t *testing.T) {
	client := &fakeResumeClient{getErr: upstream.ErrNotFound}
	collector := NewCollector()
	s := NewResumeSession(client, collector, nil, ResumeSessionOptions{UserID: "user-1"})

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("404 must not surface as an error, got %v", err)
	}
	if s.State() != StateNotFound {
		t.Errorf("expected not_found state, got %q", s.State())
	}
	if !s.IsCreatingNew() {
		t.Error("expected isCreatingNew to be set")
	}
	if got := s.Form().SalaryExpectation.Currency; got != "USD" {
		t.Errorf("expected default form seeded, got currency %q", got)
	}
	if len(collector.Notifications()) != 1 || collector.Notifications()[0].Level != "success" {
		t.Errorf("expected one success-styled notification, got %+v", collector.Notifications())
	}
}

func TestResumeFetchStringPayloadIsParsed(t *testing.T) {
	inner := `{"personal_information":{"name":"Grace","surname":"Hopper","email":"grace@example.com"}}`
	encoded, err := json.Marshal(inner)
	if err != nil {
		t.Fatalf("failed to build payload: %v", err)
	}

	client := &fakeResumeClient{getResult: encoded}
	s := NewResumeSession(client, NewCollector(), nil, ResumeSessionOptions{UserID: "user-1"})

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Form().PersonalInformation.Name; got != "Grace" {
		t.Errorf("expected parsed string payload, got name %q", got)
	}
}

func TestResumeFetchGarbagePayloadDegradesToDefaults(t *testing.T) {
	client := &fakeResumeClient{getResult: json.RawMessage(`[1,2,3]`)}
	collector := NewCollector()
	s := NewResumeSession(client, collector, nil, ResumeSessionOptions{UserID: "user-1"})

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("conversion failures must not error the session, got %v", err)
	}
	if s.State() != StateLoaded {
		t.Errorf("expected loaded state, got %q", s.State())
	}
	for _, n := range collector.Notifications() {
		if n.Level == "error" {
			t.Errorf("transform failures are recovered silently, got %+v", n)
		}
	}
}

func TestResumeOnboardingSuppressesToasts(t *testing.T) {
	client := &fakeResumeClient{getErr: upstream.ErrNotFound}
	collector := NewCollector()
	s := NewResumeSession(client, collector, nil, ResumeSessionOptions{
		UserID:     "user-1",
		Onboarding: true,
	})

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(collector.Notifications()) != 0 {
		t.Errorf("onboarding mode suppresses toasts, got %+v", collector.Notifications())
	}

	form := resumeFormFixture()
	s.SetForm(form)
	if ok, err := s.AttemptSubmit(context.Background()); !ok || err != nil {
		t.Fatalf("expected success, got ok=%v err=%v", ok, err)
	}
	if len(collector.Notifications()) != 0 {
		t.Errorf("onboarding submit success stays quiet, got %+v", collector.Notifications())
	}
	if client.updateCalls != 1 {
		t.Errorf("expected one update call, got %d", client.updateCalls)
	}
}

func TestResumeSubmitRequiresIdentityFields(t *testing.T) {
	client := &fakeResumeClient{}
	collector := NewCollector()
	s := NewResumeSession(client, collector, nil, ResumeSessionOptions{UserID: "user-1"})

	ok, err := s.AttemptSubmit(context.Background())
	if ok || err == nil {
		t.Fatal("expected rejection for missing identity fields")
	}
	var failure *upstream.Failure
	if !errors.As(err, &failure) || failure.Kind != upstream.FailureKindValidation {
		t.Errorf("expected validation failure, got %v", err)
	}
	if client.updateCalls != 0 {
		t.Errorf("validation rejections must not reach the network, saw %d calls", client.updateCalls)
	}
}

func TestResumeSubmitConvertsFormToAPI(t *testing.T) {
	client := &fakeResumeClient{}
	form := resumeFormFixture()
	form.WorkExperience = []models.WorkExperienceForm{
		{Position: "Dev", Company: "Acme", StartDate: "2020-01", EndDate: "2022-06"},
	}
	s := NewResumeSession(client, NewCollector(), nil, ResumeSessionOptions{
		UserID: "user-1",
		Form:   &form,
	})

	if ok, err := s.AttemptSubmit(context.Background()); !ok || err != nil {
		t.Fatalf("expected success, got ok=%v err=%v", ok, err)
	}
	if client.lastUpdate == nil {
		t.Fatal("expected an update payload")
	}
	if got := client.lastUpdate.WorkExperience[0].EmploymentPeriod; got != "2020-01 - 2022-06" {
		t.Errorf("expected joined employment period, got %q", got)
	}
}

func TestOnboardingWizardHaltsOnFailure(t *testing.T) {
	okClient := &fakeResumeClient{}
	okForm := resumeFormFixture()
	stepOne := NewResumeSession(okClient, NewCollector(), nil, ResumeSessionOptions{
		UserID: "user-1",
		Form:   &okForm,
	})

	failing := &fakeConfigClient{}
	stepTwo := NewPreferencesSession(failing, NewCollector(), nil, PreferencesSessionOptions{
		UserID:         "user-1",
		SubscriptionID: "sub-1",
		Onboarding:     true,
	})

	neverClient := &fakeResumeClient{}
	neverForm := resumeFormFixture()
	stepThree := NewResumeSession(neverClient, NewCollector(), nil, ResumeSessionOptions{
		UserID: "user-1",
		Form:   &neverForm,
	})

	wizard := NewOnboardingWizard(stepOne, stepTwo, stepThree)
	completed, err := wizard.Run(context.Background())
	if err == nil {
		t.Fatal("expected the wizard to halt")
	}
	if completed != 1 {
		t.Errorf("expected one completed step, got %d", completed)
	}
	if okClient.updateCalls != 1 {
		t.Errorf("first step should have submitted once, got %d", okClient.updateCalls)
	}
	if neverClient.updateCalls != 0 {
		t.Errorf("steps after the failure must not run, got %d calls", neverClient.updateCalls)
	}
}
