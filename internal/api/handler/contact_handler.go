package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightlane/site-api/internal/api/metrics"
	"github.com/brightlane/site-api/internal/core/domain"
	"github.com/brightlane/site-api/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create handles the public contact form submission.
//
// @Summary      Submit a contact message
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      createContactRequest  true  "Contact message"
// @Success      201   {object}  createContactResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	// Collapse the accepted field aliases into one canonical input; the
	// snake_case variant wins when a client sends both.
	input := ports.CreateContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
	}
	if input.FirstName == "" {
		input.FirstName = req.FirstNameCamel
	}
	if input.LastName == "" {
		input.LastName = req.LastNameCamel
	}

	msg, err := h.service.Submit(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrMissingContactFields) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.ContactsReceivedTotal.Inc()
	return c.JSON(http.StatusCreated, createContactResponse{Msg: "message saved", ID: msg.ID})
}

// List handles the admin-only message listing.
//
// @Summary      List contact messages
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   contactResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/contacts/admin/ [get]
func (h *ContactHandler) List(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	messages, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]contactResponse, 0, len(messages))
	for i := range messages {
		out = append(out, toContactResponse(&messages[i]))
	}
	return c.JSON(http.StatusOK, out)
}
