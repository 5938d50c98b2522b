package contact

// SubmitData is the submit operation result.
type SubmitData struct {
	Success   bool   `json:"success"             doc:"Whether the submission was accepted"  example:"true"`
	Message   string `json:"message"             doc:"Human-readable result message"        example:"Contact created successfully"`
	ContactID string `json:"contactId,omitempty" doc:"Identifier of the created contact"    example:"9f2b4c1a-8a37-4f0e-9a2d-1d2f3a4b5c6d"`
	Error     string `json:"error,omitempty"     doc:"Underlying error detail, if any"`
}

// SubmitOutput for POST /v1/contacts. Status is set per result.
type SubmitOutput struct {
	Status int
	Body   SubmitData
}

// ListData is the list operation result.
type ListData struct {
	Success  bool      `json:"success"            doc:"Whether the listing succeeded" example:"true"`
	Contacts []Contact `json:"contacts" doc:"Stored contacts, newest first"`
	Count    int       `json:"count"              doc:"Number of contacts returned"   example:"1"`
	Message  string    `json:"message,omitempty"  doc:"Failure message, if any"`
	Error    string    `json:"error,omitempty"    doc:"Underlying error detail, if any"`
}

// ListOutput for GET /v1/contacts.
type ListOutput struct {
	Status int
	Body   ListData
}

// TransitionData is the status transition result.
type TransitionData struct {
	Success bool   `json:"success"         doc:"Whether the transition succeeded" example:"true"`
	Message string `json:"message"         doc:"Human-readable result message"    example:"Contact status updated successfully"`
	Error   string `json:"error,omitempty" doc:"Underlying error detail, if any"`
}

// TransitionOutput for PATCH /v1/contacts/{id}/status.
type TransitionOutput struct {
	Status int
	Body   TransitionData
}
