package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"applicant-portal-service/internal/cache"
	"applicant-portal-service/internal/event"
	"applicant-portal-service/internal/middleware"
	"applicant-portal-service/internal/models"
	"applicant-portal-service/internal/session"
	"applicant-portal-service/internal/upstream"

	"github.com/gofiber/fiber/v3"
)

// submissionStore is the slice of the submission repository the forms
// handler writes to.
type submissionStore interface {
	New(ctx context.Context, record *models.SubmissionRecord) (*models.SubmissionRecord, error)
}

// FormsHandler serves the job-preferences and resume form pages: fetch with
// 404-as-creation, validated submits, and the onboarding wizard that drives
// both forms in one request.
type FormsHandler struct {
	client      *upstream.Client
	submissions submissionStore
	publisher   event.Publisher
	queryCache  *cache.QueryCache
	jwtService  *middleware.JWTService
}

func NewFormsHandler(client *upstream.Client, submissions submissionStore, publisher event.Publisher, queryCache *cache.QueryCache, jwtService *middleware.JWTService) *FormsHandler {
	return &FormsHandler{
		client:      client,
		submissions: submissions,
		publisher:   publisher,
		queryCache:  queryCache,
		jwtService:  jwtService,
	}
}

func (h *FormsHandler) RegisterRoutes(app *fiber.App) {
	protectedGroup := app.Group("/protected", middleware.RequireUser(h.jwtService))

	protectedGroup.Get("/preferences", h.GetPreferences)
	protectedGroup.Put("/preferences", h.SubmitPreferences)
	protectedGroup.Get("/resume", h.GetResume)
	protectedGroup.Put("/resume", h.SubmitResume)
	protectedGroup.Post("/onboarding/submit", h.SubmitOnboarding)
}

// requestAnchor carries the viewport position the client reported so the
// session can capture it before fetching and hand it back once the form
// reset has committed.
type requestAnchor struct {
	position int
	restored int
}

func (a *requestAnchor) Capture() int         { return a.position }
func (a *requestAnchor) Restore(position int) { a.restored = position }

func (h *FormsHandler) GetPreferences(c fiber.Ctx) error {
	userID := middleware.UserID(c)
	scroll, _ := strconv.Atoi(c.Query("scroll", "0"))

	collector := session.NewCollector()
	anchor := &requestAnchor{position: scroll}
	s := session.NewPreferencesSession(h.client, collector, anchor, session.PreferencesSessionOptions{
		UserID:         userID,
		SubscriptionID: c.Query("subscriptionId"),
		Onboarding:     c.Query("onboarding") == "true",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Fetch(ctx); err != nil {
		log.Printf("Failed to fetch preferences for user %s: %v", userID, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"form":          s.Form(),
			"state":         s.State(),
			"isCreatingNew": s.IsCreatingNew(),
			"scroll":        anchor.restored,
		},
		"notifications": collector.Notifications(),
	})
}

type preferencesSubmitRequest struct {
	Form           models.JobPreferencesForm `json:"form"`
	SubscriptionID string                    `json:"subscriptionId"`
	IsCreatingNew  bool                      `json:"isCreatingNew"`
	Onboarding     bool                      `json:"onboarding"`
}

func (h *FormsHandler) SubmitPreferences(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req preferencesSubmitRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	collector := session.NewCollector()
	s := session.NewPreferencesSession(h.client, collector, nil, session.PreferencesSessionOptions{
		UserID:         userID,
		SubscriptionID: req.SubscriptionID,
		Onboarding:     req.Onboarding,
		IsCreatingNew:  req.IsCreatingNew,
		Form:           &req.Form,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	wasCreating := s.IsCreatingNew()
	ok, err := s.AttemptSubmit(ctx)
	h.recordSubmission(userID, models.SubmissionResourcePreferences, wasCreating, ok, err)
	h.publishNotifications(userID, collector.Notifications())

	if !ok {
		return h.submitFailure(c, collector, err)
	}

	h.publishChange(userID, models.SubmissionResourcePreferences, wasCreating, req.SubscriptionID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"isCreatingNew": s.IsCreatingNew(),
		},
		"notifications": collector.Notifications(),
	})
}

func (h *FormsHandler) GetResume(c fiber.Ctx) error {
	userID := middleware.UserID(c)
	scroll, _ := strconv.Atoi(c.Query("scroll", "0"))

	collector := session.NewCollector()
	anchor := &requestAnchor{position: scroll}
	s := session.NewResumeSession(h.client, collector, anchor, session.ResumeSessionOptions{
		UserID:     userID,
		Onboarding: c.Query("onboarding") == "true",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Fetch(ctx); err != nil {
		log.Printf("Failed to fetch resume for user %s: %v", userID, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"form":          s.Form(),
			"state":         s.State(),
			"isCreatingNew": s.IsCreatingNew(),
			"scroll":        anchor.restored,
		},
		"notifications": collector.Notifications(),
	})
}

type resumeSubmitRequest struct {
	Form          models.ResumeForm `json:"form"`
	IsCreatingNew bool              `json:"isCreatingNew"`
	Onboarding    bool              `json:"onboarding"`
}

func (h *FormsHandler) SubmitResume(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req resumeSubmitRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	collector := session.NewCollector()
	s := session.NewResumeSession(h.client, collector, nil, session.ResumeSessionOptions{
		UserID:        userID,
		Onboarding:    req.Onboarding,
		IsCreatingNew: req.IsCreatingNew,
		Form:          &req.Form,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	wasCreating := s.IsCreatingNew()
	ok, err := s.AttemptSubmit(ctx)
	h.recordSubmission(userID, models.SubmissionResourceResume, wasCreating, ok, err)
	h.publishNotifications(userID, collector.Notifications())

	if !ok {
		return h.submitFailure(c, collector, err)
	}

	h.publishChange(userID, models.SubmissionResourceResume, wasCreating, "")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"isCreatingNew": s.IsCreatingNew(),
		},
		"notifications": collector.Notifications(),
	})
}

type onboardingSubmitRequest struct {
	Resume         models.ResumeForm         `json:"resume"`
	Preferences    models.JobPreferencesForm `json:"preferences"`
	SubscriptionID string                    `json:"subscriptionId"`
}

// SubmitOnboarding drives the resume and preferences forms through their
// Submittable capability, halting at the first step that fails so the
// client-side wizard cannot advance past an unsaved form.
func (h *FormsHandler) SubmitOnboarding(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req onboardingSubmitRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	collector := session.NewCollector()
	resumeSession := session.NewResumeSession(h.client, collector, nil, session.ResumeSessionOptions{
		UserID:        userID,
		Onboarding:    true,
		IsCreatingNew: true,
		Form:          &req.Resume,
	})
	preferencesSession := session.NewPreferencesSession(h.client, collector, nil, session.PreferencesSessionOptions{
		UserID:         userID,
		SubscriptionID: req.SubscriptionID,
		Onboarding:     true,
		IsCreatingNew:  true,
		Form:           &req.Preferences,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	wizard := session.NewOnboardingWizard(resumeSession, preferencesSession)
	completed, err := wizard.Run(ctx)

	h.recordOnboardingOutcome(userID, req.SubscriptionID, completed, err)
	h.publishNotifications(userID, collector.Notifications())

	if err != nil {
		log.Printf("Onboarding halted for user %s: %v", userID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"data": fiber.Map{
				"completedSteps": completed,
			},
			"error":         failureMessage(err),
			"notifications": collector.Notifications(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"completedSteps": completed,
		},
		"notifications": collector.Notifications(),
	})
}

// onboardingStepResources mirrors the wizard's step order.
var onboardingStepResources = []models.SubmissionResource{
	models.SubmissionResourceResume,
	models.SubmissionResourcePreferences,
}

// recordOnboardingOutcome logs every completed step and, when the wizard
// halted, the rejected step too, so the submission log tells the same story
// for wizard submits as for single-resource ones.
func (h *FormsHandler) recordOnboardingOutcome(userID, subscriptionID string, completed int, cause error) {
	for i := 0; i < completed && i < len(onboardingStepResources); i++ {
		resource := onboardingStepResources[i]
		h.recordSubmission(userID, resource, true, true, nil)

		stepSubscription := ""
		if resource == models.SubmissionResourcePreferences {
			stepSubscription = subscriptionID
		}
		h.publishChange(userID, resource, true, stepSubscription)
	}

	if cause != nil && completed < len(onboardingStepResources) {
		h.recordSubmission(userID, onboardingStepResources[completed], true, false, cause)
	}
}

func (h *FormsHandler) submitFailure(c fiber.Ctx, collector *session.Collector, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error":         failureMessage(err),
		"notifications": collector.Notifications(),
	})
}

// recordSubmission keeps the submission log best-effort: a mongo hiccup must
// never fail the user's submit.
func (h *FormsHandler) recordSubmission(userID string, resource models.SubmissionResource, wasCreating, accepted bool, cause error) {
	if h.submissions == nil {
		return
	}

	record := &models.SubmissionRecord{
		UserID:   userID,
		Resource: resource,
		Action:   models.SubmissionActionUpdated,
		Outcome:  models.SubmissionOutcomeAccepted,
	}
	if wasCreating {
		record.Action = models.SubmissionActionCreated
	}
	if !accepted {
		record.Outcome = models.SubmissionOutcomeRejected
		record.Reason = failureMessage(cause)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := h.submissions.New(ctx, record); err != nil {
		log.Printf("Failed to record %s submission for user %s: %v", resource, userID, err)
		return
	}
	if err := h.queryCache.Invalidate(ctx, "submissions", userID); err != nil {
		log.Printf("Failed to invalidate submission cache for user %s: %v", userID, err)
	}
}

func (h *FormsHandler) publishChange(userID string, resource models.SubmissionResource, wasCreating bool, subscriptionID string) {
	if h.publisher == nil {
		return
	}

	eventType := event.PortalEventPreferencesUpdated
	switch {
	case resource == models.SubmissionResourcePreferences && wasCreating:
		eventType = event.PortalEventPreferencesCreated
	case resource == models.SubmissionResourceResume && wasCreating:
		eventType = event.PortalEventResumeCreated
	case resource == models.SubmissionResourceResume:
		eventType = event.PortalEventResumeUpdated
	}

	if err := h.publisher.PublishPortalEvent(&event.PortalEvent{
		EventType:      eventType,
		UserID:         userID,
		Resource:       string(resource),
		SubscriptionID: subscriptionID,
		Source:         "portal",
	}); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}

// publishNotifications fans the session's user-facing messages out on the
// event bus so downstream consumers (notification service, audit) see the
// same toasts the client does.
func (h *FormsHandler) publishNotifications(userID string, notifications []session.Notification) {
	if h.publisher == nil {
		return
	}
	for _, n := range notifications {
		if err := h.publisher.PublishPortalEvent(&event.PortalEvent{
			EventType: event.PortalEventNotification,
			UserID:    userID,
			Level:     n.Level,
			Message:   n.Message,
			Source:    "portal",
		}); err != nil {
			log.Printf("Failed to publish notification event: %v", err)
		}
	}
}

// statusForError maps the failure taxonomy onto response codes: local
// validation is the caller's problem, upstream trouble is a gateway error.
func statusForError(err error) int {
	var failure *upstream.Failure
	if errors.As(err, &failure) {
		switch failure.Kind {
		case upstream.FailureKindValidation:
			return fiber.StatusBadRequest
		case upstream.FailureKindHTTP:
			if failure.Status >= 400 && failure.Status < 500 {
				return failure.Status
			}
			return fiber.StatusBadGateway
		}
	}
	return fiber.StatusBadGateway
}

func failureMessage(err error) string {
	var failure *upstream.Failure
	if errors.As(err, &failure) {
		return failure.Message()
	}
	if err != nil && errors.Is(err, upstream.ErrNotFound) {
		return "Resource not found"
	}
	return upstream.GenericFailureMessage
}
