package handlers

import (
	"context"
	"testing"

	"applicant-portal-service/internal/event"
	"applicant-portal-service/internal/models"
	"applicant-portal-service/internal/session"
	"applicant-portal-service/internal/upstream"
)

type fakeSubmissionStore struct {
	records []*models.SubmissionRecord
}

func (f *fakeSubmissionStore) New(ctx context.Context, record *models.SubmissionRecord) (*models.SubmissionRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

type fakePublisher struct {
	events []*event.PortalEvent
}

func (f *fakePublisher) PublishPortalEvent(e *event.PortalEvent) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func TestRecordOnboardingOutcomeLogsHaltedStep(t *testing.T) {
	store := &fakeSubmissionStore{}
	publisher := &fakePublisher{}
	h := NewFormsHandler(nil, store, publisher, nil, nil)

	cause := upstream.NewValidationFailure("Add at least one position.", "positions")
	h.recordOnboardingOutcome("user-1", "sub-1", 1, cause)

	if len(store.records) != 2 {
		t.Fatalf("expected the completed and the halted step recorded, got %d records", len(store.records))
	}

	first := store.records[0]
	if first.Resource != models.SubmissionResourceResume || first.Outcome != models.SubmissionOutcomeAccepted {
		t.Errorf("expected accepted resume step, got %+v", first)
	}

	second := store.records[1]
	if second.Resource != models.SubmissionResourcePreferences {
		t.Errorf("expected the halting preferences step recorded, got %+v", second)
	}
	if second.Outcome != models.SubmissionOutcomeRejected {
		t.Errorf("expected rejected outcome for the halting step, got %q", second.Outcome)
	}
	if second.Reason != "Add at least one position." {
		t.Errorf("expected the rejection reason captured, got %q", second.Reason)
	}

	// Change events fire only for steps that went through.
	for _, e := range publisher.events {
		if e.EventType == event.PortalEventPreferencesCreated {
			t.Errorf("halted step must not publish a change event, got %+v", e)
		}
	}
}

func TestRecordOnboardingOutcomeAllStepsCompleted(t *testing.T) {
	store := &fakeSubmissionStore{}
	publisher := &fakePublisher{}
	h := NewFormsHandler(nil, store, publisher, nil, nil)

	h.recordOnboardingOutcome("user-1", "sub-1", 2, nil)

	if len(store.records) != 2 {
		t.Fatalf("expected two accepted records, got %d", len(store.records))
	}
	for _, record := range store.records {
		if record.Outcome != models.SubmissionOutcomeAccepted {
			t.Errorf("expected accepted outcome, got %+v", record)
		}
		if record.Action != models.SubmissionActionCreated {
			t.Errorf("onboarding steps are creates, got %+v", record)
		}
	}

	var preferencesEvent *event.PortalEvent
	for _, e := range publisher.events {
		if e.EventType == event.PortalEventPreferencesCreated {
			preferencesEvent = e
		}
	}
	if preferencesEvent == nil {
		t.Fatal("expected a preferences-created change event")
	}
	if preferencesEvent.SubscriptionID != "sub-1" {
		t.Errorf("expected subscription carried on the preferences event, got %q", preferencesEvent.SubscriptionID)
	}
}

func TestPublishNotificationsFansOutToasts(t *testing.T) {
	publisher := &fakePublisher{}
	h := NewFormsHandler(nil, nil, publisher, nil, nil)

	collector := session.NewCollector()
	collector.Success("Preferences created.")
	collector.Error("Something went wrong. Please try again.")

	h.publishNotifications("user-1", collector.Notifications())

	if len(publisher.events) != 2 {
		t.Fatalf("expected one event per notification, got %d", len(publisher.events))
	}
	for _, e := range publisher.events {
		if e.EventType != event.PortalEventNotification {
			t.Errorf("expected %s events, got %s", event.PortalEventNotification, e.EventType)
		}
		if e.UserID != "user-1" {
			t.Errorf("expected user scoping, got %q", e.UserID)
		}
	}
	if publisher.events[0].Level != "success" || publisher.events[0].Message != "Preferences created." {
		t.Errorf("expected the toast carried verbatim, got %+v", publisher.events[0])
	}
	if publisher.events[1].Level != "error" {
		t.Errorf("expected error level preserved, got %+v", publisher.events[1])
	}
}
