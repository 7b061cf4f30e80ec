package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"applicant-portal-service/internal/cache"
	"applicant-portal-service/internal/middleware"
	"applicant-portal-service/internal/models"
	"applicant-portal-service/internal/repository"
	"applicant-portal-service/internal/upstream"

	"github.com/gofiber/fiber/v3"
)

const maxPageSize = 50

// AccountHandler serves the read-only account pages: subscriptions, payment
// history and the submission log. Upstream list reads go through the query
// cache so a page refresh does not hammer the backend.
type AccountHandler struct {
	client      *upstream.Client
	submissions *repository.SubmissionRepository
	queryCache  *cache.QueryCache
	jwtService  *middleware.JWTService
}

func NewAccountHandler(client *upstream.Client, submissions *repository.SubmissionRepository, queryCache *cache.QueryCache, jwtService *middleware.JWTService) *AccountHandler {
	return &AccountHandler{
		client:      client,
		submissions: submissions,
		queryCache:  queryCache,
		jwtService:  jwtService,
	}
}

func (h *AccountHandler) RegisterRoutes(app *fiber.App) {
	protectedGroup := app.Group("/protected", middleware.RequireUser(h.jwtService))

	protectedGroup.Get("/subscriptions", h.GetSubscriptions)
	protectedGroup.Get("/payments", h.GetPayments)
	protectedGroup.Get("/submissions", h.GetSubmissions)
}

func (h *AccountHandler) GetSubscriptions(c fiber.Ctx) error {
	userID := middleware.UserID(c)
	onlyActive := c.Query("onlyActive", "false") == "true"

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cacheKey := cache.Key("subscriptions", userID, strconv.FormatBool(onlyActive))
	var subscriptions []models.Subscription
	if !h.queryCache.Get(ctx, cacheKey, &subscriptions) {
		var err error
		subscriptions, err = h.client.GetUserSubscriptions(ctx, userID, onlyActive)
		switch {
		case errors.Is(err, upstream.ErrNotFound):
			subscriptions = []models.Subscription{}
		case err != nil:
			log.Printf("Failed to fetch subscriptions for user %s: %v", userID, err)
			return c.Status(statusForError(err)).JSON(fiber.Map{
				"error": failureMessage(err),
			})
		}
		if err := h.queryCache.Set(ctx, cacheKey, subscriptions); err != nil {
			log.Printf("Failed to cache subscriptions for user %s: %v", userID, err)
		}
	}

	if subscriptions == nil {
		subscriptions = []models.Subscription{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"subscriptions": subscriptions,
		},
	})
}

func (h *AccountHandler) GetPayments(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	query := models.PaymentListQuery{
		Page:     1,
		PageSize: 20,
	}
	if page, err := strconv.Atoi(c.Query("page", "1")); err == nil && page > 0 {
		query.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("pageSize", "20")); err == nil && pageSize > 0 && pageSize <= maxPageSize {
		query.PageSize = pageSize
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cacheKey := cache.Key("payments", userID, strconv.Itoa(query.Page), strconv.Itoa(query.PageSize))
	var result models.PaymentListResult
	if h.queryCache.Get(ctx, cacheKey, &result) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": result})
	}

	skip := (query.Page - 1) * query.PageSize
	page, err := h.client.ReadPaymentsByCurrentUser(ctx, userID, skip, query.PageSize)
	if err != nil {
		log.Printf("Failed to fetch payments for user %s: %v", userID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": failureMessage(err),
		})
	}

	payments := page.Data
	if payments == nil {
		payments = []models.Payment{}
	}
	result = models.PaymentListResult{
		Payments:    payments,
		TotalCount:  page.Count,
		PageCount:   pageCount(page.Count, query.PageSize),
		CurrentPage: query.Page,
	}

	if err := h.queryCache.Set(ctx, cacheKey, result); err != nil {
		log.Printf("Failed to cache payments for user %s: %v", userID, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": result})
}

func (h *AccountHandler) GetSubmissions(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	// The log is always scoped to the caller.
	query := models.SubmissionSearchQuery{
		UserID:   userID,
		Page:     1,
		PageSize: 20,
	}
	if page, err := strconv.Atoi(c.Query("page", "1")); err == nil && page > 0 {
		query.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("pageSize", "20")); err == nil && pageSize > 0 && pageSize <= maxPageSize {
		query.PageSize = pageSize
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cacheKey := cache.Key("submissions", userID, strconv.Itoa(query.Page), strconv.Itoa(query.PageSize))
	var result models.SubmissionSearchResult
	if h.queryCache.Get(ctx, cacheKey, &result) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": result})
	}

	records, total, err := h.submissions.Search(ctx, &query)
	if err != nil {
		log.Printf("Failed to search submissions for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load submission history",
		})
	}

	result = models.SubmissionSearchResult{
		Submissions: records,
		TotalCount:  total,
		PageCount:   pageCount(total, query.PageSize),
		CurrentPage: query.Page,
	}
	if err := h.queryCache.Set(ctx, cacheKey, result); err != nil {
		log.Printf("Failed to cache submissions for user %s: %v", userID, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": result})
}

func pageCount(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
