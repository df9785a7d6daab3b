package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/showcase/internal/services"
)

type ContactHandler struct {
	contact  *services.ContactService
	visitors *services.VisitorService
}

func NewContactHandler(contact *services.ContactService, visitors *services.VisitorService) *ContactHandler {
	return &ContactHandler{contact: contact, visitors: visitors}
}

// Form handles GET /contact-form and returns just the form HTML.
func (h *ContactHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title": "Contact Me",
	})
}

// Submit handles POST /contact. HTMX swaps the returned fragment in place,
// so failures are reported with a 200 and an error message.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"Error": "Please fill in every field."})
		return
	}

	client := h.visitors.HashIP(c.ClientIP())
	err := h.contact.Submit(c.Request.Context(), client, req)
	switch {
	case err == nil:
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"Success": "Thank you for your message! I'll get back to you soon.",
		})
	case errors.Is(err, services.ErrInvalidContact):
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"Error": "Please check the form: a name, a valid email and a message are required."})
	case errors.Is(err, services.ErrRateLimited):
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"Error": "You've sent a few messages already. Please try again later."})
	default:
		slog.ErrorContext(c.Request.Context(), "contact form delivery failed", "client", client, "err", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"Error": "Sorry, there was an error sending your message. Please try again later.",
		})
	}
}
