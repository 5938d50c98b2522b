package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/contact-inbox/internal/http/v1/contact"
	contactsvc "github.com/janisto/contact-inbox/internal/service/contact"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, contactService contactsvc.Service) {
	contact.Register(api, contactService)
}
