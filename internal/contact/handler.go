package contact

import (
	"time"

	"github.com/muurk/vitrine/internal/logging"
)

// DefaultNoticeLifetime is how long the success notice stays up.
const DefaultNoticeLifetime = 3 * time.Second

// SuccessNotice is shown after an accepted submission.
const SuccessNotice = "Thanks! Your message has been received."

// Outcome tells the form what to do after a submit.
type Outcome struct {
	Err    error  // Non-nil when the submission was rejected
	Alert  string // Blocking alert text on rejection
	Notice string // Transient notice text on success
	Clear  bool   // Whether the form should clear its fields
}

// Accepted reports whether the submission passed validation.
func (o Outcome) Accepted() bool {
	return o.Err == nil
}

// Handler validates submissions and decides the form's next state.
// It never keeps or forwards field values.
type Handler struct {
	validator *Validator
}

// NewHandler creates a Handler with a fresh Validator.
func NewHandler() *Handler {
	return &Handler{validator: NewValidator()}
}

// Submit validates s. On rejection the form keeps its values and shows
// Alert; on success it shows Notice and clears.
func (h *Handler) Submit(s Submission) Outcome {
	if err := h.validator.Validate(s); err != nil {
		out := Outcome{Err: err, Alert: err.Error()}
		if ve, ok := AsValidationError(err); ok {
			out.Alert = ve.Message
			logging.LogFormSubmit(false, ve.Field, ve.Reason.String())
		}
		return out
	}

	logging.LogFormSubmit(true, "", "")
	return Outcome{Notice: SuccessNotice, Clear: true}
}
