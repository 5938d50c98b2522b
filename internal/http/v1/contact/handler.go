package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/contact-inbox/internal/platform/logging"
	contactsvc "github.com/janisto/contact-inbox/internal/service/contact"
)

// Result messages returned to clients. The submission form and the review
// view display these verbatim.
const (
	msgCreated        = "Contact created successfully"
	msgFieldsRequired = "All fields are required"
	msgEmailExists    = "A contact with this email already exists"
	msgCreateFailed   = "Failed to create contact"
	msgListFailed     = "Failed to get contacts"
	msgUpdated        = "Contact status updated successfully"
	msgInvalidStatus  = "Invalid status. Must be one of: pending, read, replied"
	msgIDRequired     = "Contact ID is required"
	msgNotFound       = "Contact not found"
	msgUpdateFailed   = "Failed to update contact"
)

// Register wires contact endpoints.
func Register(api huma.API, svc contactsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "submit-contact",
		Method:        http.MethodPost,
		Path:          "/v1/contacts",
		Summary:       "Submit a contact message",
		Description:   "Validates and stores a contact-form submission. New contacts start in the pending status.",
		Tags:          []string{"Contacts"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
		created, err := svc.Submit(ctx, contactsvc.SubmitParams{
			Name:    input.Body.Name,
			Email:   input.Body.Email,
			Subject: input.Body.Subject,
			Message: input.Body.Message,
		})
		if err != nil {
			return submitFailure(ctx, err), nil
		}
		return &SubmitOutput{
			Status: http.StatusCreated,
			Body: SubmitData{
				Success:   true,
				Message:   msgCreated,
				ContactID: created.ID,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-contacts",
		Method:      http.MethodGet,
		Path:        "/v1/contacts",
		Summary:     "List contact messages",
		Description: "Returns all stored contacts ordered by creation time, newest first.",
		Tags:        []string{"Contacts"},
	}, func(ctx context.Context, _ *ListInput) (*ListOutput, error) {
		contacts, err := svc.List(ctx)
		if err != nil {
			applog.LogError(ctx, "list contacts failed", err)
			return &ListOutput{
				Status: http.StatusInternalServerError,
				Body: ListData{
					Success:  false,
					Contacts: []Contact{},
					Message:  msgListFailed,
					Error:    err.Error(),
				},
			}, nil
		}

		serialized := make([]Contact, 0, len(contacts))
		for _, c := range contacts {
			serialized = append(serialized, toHTTPContact(c))
		}
		return &ListOutput{
			Status: http.StatusOK,
			Body: ListData{
				Success:  true,
				Contacts: serialized,
				Count:    len(serialized),
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "transition-contact-status",
		Method:      http.MethodPatch,
		Path:        "/v1/contacts/{id}/status",
		Summary:     "Change a contact's triage status",
		Description: "Moves a contact to the given status and refreshes its update timestamp. Any status is reachable from any other.",
		Tags:        []string{"Contacts"},
	}, func(ctx context.Context, input *TransitionInput) (*TransitionOutput, error) {
		_, err := svc.UpdateStatus(ctx, input.ID, contactsvc.Status(input.Body.Status))
		if err != nil {
			return transitionFailure(ctx, err), nil
		}
		return &TransitionOutput{
			Status: http.StatusOK,
			Body:   TransitionData{Success: true, Message: msgUpdated},
		}, nil
	})
}

func submitFailure(ctx context.Context, err error) *SubmitOutput {
	var verr *contactsvc.ValidationError
	switch {
	case errors.Is(err, contactsvc.ErrFieldsRequired):
		return submitError(http.StatusUnprocessableEntity, msgFieldsRequired, "")
	case errors.As(err, &verr):
		return submitError(http.StatusUnprocessableEntity, verr.Message, "")
	case errors.Is(err, contactsvc.ErrEmailExists):
		return submitError(http.StatusConflict, msgEmailExists, "")
	default:
		applog.LogError(ctx, "create contact failed", err)
		return submitError(http.StatusInternalServerError, msgCreateFailed, err.Error())
	}
}

func submitError(status int, message, detail string) *SubmitOutput {
	return &SubmitOutput{
		Status: status,
		Body:   SubmitData{Success: false, Message: message, Error: detail},
	}
}

func transitionFailure(ctx context.Context, err error) *TransitionOutput {
	switch {
	case errors.Is(err, contactsvc.ErrInvalidStatus):
		return transitionError(http.StatusUnprocessableEntity, msgInvalidStatus, "")
	case errors.Is(err, contactsvc.ErrIDRequired):
		return transitionError(http.StatusUnprocessableEntity, msgIDRequired, "")
	case errors.Is(err, contactsvc.ErrNotFound):
		return transitionError(http.StatusNotFound, msgNotFound, "")
	default:
		applog.LogError(ctx, "update contact status failed", err)
		return transitionError(http.StatusInternalServerError, msgUpdateFailed, err.Error())
	}
}

func transitionError(status int, message, detail string) *TransitionOutput {
	return &TransitionOutput{
		Status: status,
		Body:   TransitionData{Success: false, Message: message, Error: detail},
	}
}
