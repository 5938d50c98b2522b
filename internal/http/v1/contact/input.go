package contact

// SubmitInput for POST /v1/contacts.
//
// Fields carry no schema constraints: presence and length are checked by the
// service so that an invalid form receives the structured result messages
// rather than a schema error.
type SubmitInput struct {
	Body struct {
		Name    string `json:"name,omitempty"    doc:"Sender name, at most 50 characters"    example:"Ann"`
		Email   string `json:"email,omitempty"   doc:"Sender email address, at most 50 characters" example:"ann@x.com"`
		Subject string `json:"subject,omitempty" doc:"Message subject, at most 100 characters" example:"Hi"`
		Message string `json:"message,omitempty" doc:"Message body, at most 500 characters"  example:"Hello there"`
	}
}

// ListInput for GET /v1/contacts (no parameters).
type ListInput struct{}

// TransitionInput for PATCH /v1/contacts/{id}/status. The status value is
// validated by the service, which owns the error message.
type TransitionInput struct {
	ID   string `path:"id" doc:"Contact identifier" example:"9f2b4c1a-8a37-4f0e-9a2d-1d2f3a4b5c6d"`
	Body struct {
		Status string `json:"status,omitempty" doc:"New triage status: pending, read or replied" example:"read"`
	}
}
