package contact

import (
	"github.com/janisto/contact-inbox/internal/platform/timeutil"

	contactsvc "github.com/janisto/contact-inbox/internal/service/contact"
)

// Contact is the serialized contact returned by the list operation.
type Contact struct {
	ID        string        `json:"id"        doc:"Unique identifier"                      example:"9f2b4c1a-8a37-4f0e-9a2d-1d2f3a4b5c6d"`
	Name      string        `json:"name"      doc:"Sender name"                            example:"Ann"`
	Email     string        `json:"email"     doc:"Sender email address"                   example:"ann@x.com"`
	Subject   string        `json:"subject"   doc:"Message subject"                        example:"Hi"`
	Message   string        `json:"message"   doc:"Message body"                           example:"Hello there"`
	Status    string        `json:"status"    doc:"Triage status" enum:"pending,read,replied" example:"pending"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Creation timestamp"                     example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt timeutil.Time `json:"updatedAt" doc:"Last update timestamp"                  example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPContact(c *contactsvc.Contact) Contact {
	return Contact{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: timeutil.Time{Time: c.CreatedAt},
		UpdatedAt: timeutil.Time{Time: c.UpdatedAt},
	}
}
