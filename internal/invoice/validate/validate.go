// Package validate turns raw invoice form input into a normalized record or a
// structured validation failure.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/finboard/finboard/internal/invoice/domain"
)

const (
	msgCustomerRequired = "Please select a customer."
	msgAmountPositive   = "Please enter an amount greater than $0."
	msgStatusRequired   = "Please select an invoice status."

	// maxAmount bounds the major-unit amount so its cent value fits in int64.
	maxAmount = math.MaxInt64 / 100
)

// Normalized is the strongly-typed record produced from valid input. Amount is
// still in major units; the pipeline converts to minor units.
type Normalized struct {
	CustomerID string
	Amount     float64
	Status     domain.Status
}

// Validator checks raw mutation input. It holds no state and is safe to share;
// it exists as a constructed value so pipelines own their validation schema
// instead of reaching for a package global.
type Validator struct{}

func New() Validator {
	return Validator{}
}

// Validate checks every field independently and collects all violations.
// Failure is an ordinary return value; the input is never trusted enough to
// crash over.
func (Validator) Validate(input domain.MutationInput) (Normalized, *domain.FieldErrors) {
	errs := &domain.FieldErrors{}

	customerID := strings.TrimSpace(input.CustomerID)
	if customerID == "" {
		errs.CustomerID = append(errs.CustomerID, msgCustomerRequired)
	}

	// ParseFloat accepts NaN, Inf and overflow-scale literals without error;
	// none of them is a representable amount.
	amount, err := strconv.ParseFloat(strings.TrimSpace(input.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 || amount > maxAmount {
		errs.Amount = append(errs.Amount, msgAmountPositive)
	}

	status := domain.Status(strings.TrimSpace(input.Status))
	if !status.Valid() {
		errs.Status = append(errs.Status, msgStatusRequired)
	}

	if !errs.Empty() {
		return Normalized{}, errs
	}

	return Normalized{
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
	}, nil
}
