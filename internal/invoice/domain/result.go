package domain

// Outcome tags the terminal state of one mutation attempt. A redirect is an
// ordinary result variant here, never a raised signal, so generic error
// handling can never intercept it.
type Outcome string

const (
	// OutcomeRejected means validation failed; Errors carries the field map.
	OutcomeRejected Outcome = "rejected"
	// OutcomeFailed means persistence failed; Message carries the generic text.
	OutcomeFailed Outcome = "failed"
	// OutcomeRedirected means the mutation committed and the caller should
	// navigate to Location.
	OutcomeRedirected Outcome = "redirected"
	// OutcomeReported means the mutation committed and reports in place.
	OutcomeReported Outcome = "reported"
)

// FieldErrors maps form fields to their accumulated validation messages.
// The field enumeration is exhaustive; no other fields ever appear.
type FieldErrors struct {
	CustomerID []string `json:"customerId,omitempty"`
	Amount     []string `json:"amount,omitempty"`
	Status     []string `json:"status,omitempty"`
}

// Empty reports whether no field collected any message.
func (e *FieldErrors) Empty() bool {
	return e == nil || (len(e.CustomerID) == 0 && len(e.Amount) == 0 && len(e.Status) == 0)
}

// Result is the user-facing outcome of one mutation attempt.
type Result struct {
	Outcome  Outcome      `json:"-"`
	Errors   *FieldErrors `json:"errors,omitempty"`
	Message  string       `json:"message,omitempty"`
	Location string       `json:"-"`
}

// Rejected builds a validation-failure result.
func Rejected(errs *FieldErrors, message string) Result {
	return Result{Outcome: OutcomeRejected, Errors: errs, Message: message}
}

// Failed builds a persistence-failure result.
func Failed(message string) Result {
	return Result{Outcome: OutcomeFailed, Message: message}
}

// Redirected builds a committed result that navigates to location.
func Redirected(location string) Result {
	return Result{Outcome: OutcomeRedirected, Location: location}
}

// Reported builds a committed result that reports in place.
func Reported(message string) Result {
	return Result{Outcome: OutcomeReported, Message: message}
}
