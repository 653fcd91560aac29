package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/medifind/internal/domain/account"
	"github.com/yanqian/medifind/internal/domain/directory"
	"github.com/yanqian/medifind/internal/domain/healthtools"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	directorySvc directory.Service
	toolsSvc     healthtools.Service
	auth         account.AuthProvider
	bookings     *account.BookingService
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(directorySvc directory.Service, toolsSvc healthtools.Service, auth account.AuthProvider, bookings *account.BookingService, logger *slog.Logger) *Handler {
	return &Handler{
		directorySvc: directorySvc,
		toolsSvc:     toolsSvc,
		auth:         auth,
		bookings:     bookings,
		logger:       logger.With("component", "http.handler"),
	}
}

type searchPayload struct {
	directory.SearchRequest
	Geo *directory.GeoCoordinates `json:"geo"`
}

// Search runs a grounded directory search. Valid requests always return 200,
// with an empty list when nothing usable came back.
func (h *Handler) Search(c *gin.Context) {
	var req searchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, bindingErrorCode(err), errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, h.directorySvc.Search(c.Request.Context(), req.SearchRequest, req.Geo))
}

// Chat answers a health question.
func (h *Handler) Chat(c *gin.Context) {
	var req directory.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, h.directorySvc.Chat(c.Request.Context(), req))
}

// Articles returns a freshly generated health feed.
func (h *Handler) Articles(c *gin.Context) {
	lang := directory.Language(c.DefaultQuery("lang", string(directory.LanguageEnglish)))
	if !lang.Valid() {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "lang must be en or bn", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": h.directorySvc.Articles(c.Request.Context(), lang)})
}

// Specialties lists the doctor filter catalogue.
func (h *Handler) Specialties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}

// BMI computes the body mass index.
func (h *Handler) BMI(c *gin.Context) {
	var req healthtools.BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.toolsSvc.BMI(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "tool_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Pregnancy estimates the due date.
func (h *Handler) Pregnancy(c *gin.Context) {
	var req healthtools.PregnancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.toolsSvc.Pregnancy(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "tool_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Vaccines returns the immunisation schedule for a birth date.
func (h *Handler) Vaccines(c *gin.Context) {
	var req healthtools.VaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.toolsSvc.Vaccines(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "tool_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Login issues a session token.
func (h *Handler) Login(c *gin.Context) {
	var req account.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "auth_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Profile returns the caller's profile from the session token.
func (h *Handler) Profile(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing claims", nil))
		return
	}
	c.JSON(http.StatusOK, claims.Profile)
}

// Book forwards an appointment request.
func (h *Handler) Book(c *gin.Context) {
	var req account.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	var requester string
	if claims, ok := getClaims(c); ok {
		requester = claims.Profile.ID
	}
	resp, err := h.bookings.Book(c.Request.Context(), req, requester)
	if err != nil {
		abortWithError(c, fromAppError(err, "booking_failed"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
