package validate

import (
	"testing"

	"github.com/finboard/finboard/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMissingCustomer(t *testing.T) {
	v := New()

	_, errs := v.Validate(domain.MutationInput{
		CustomerID: "",
		Amount:     "100",
		Status:     "pending",
	})

	require.NotNil(t, errs)
	assert.Equal(t, []string{"Please select a customer."}, errs.CustomerID)
	assert.Empty(t, errs.Amount)
	assert.Empty(t, errs.Status)
}

func TestValidateZeroAmount(t *testing.T) {
	v := New()

	_, errs := v.Validate(domain.MutationInput{
		CustomerID: "c1",
		Amount:     "0",
		Status:     "paid",
	})

	require.NotNil(t, errs)
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs.Amount)
	assert.Empty(t, errs.CustomerID)
	assert.Empty(t, errs.Status)
}

func TestValidateNonNumericAmount(t *testing.T) {
	v := New()

	for _, raw := range []string{"", "abc", "12,5", "-3"} {
		_, errs := v.Validate(domain.MutationInput{
			CustomerID: "c1",
			Amount:     raw,
			Status:     "paid",
		})
		require.NotNil(t, errs, "amount %q should be rejected", raw)
		assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs.Amount)
	}
}

func TestValidateNonFiniteAmount(t *testing.T) {
	v := New()

	// ParseFloat parses all of these without error; none may reach the store.
	for _, raw := range []string{"NaN", "Inf", "+Inf", "-Inf", "1e300", "1e17"} {
		_, errs := v.Validate(domain.MutationInput{
			CustomerID: "c1",
			Amount:     raw,
			Status:     "paid",
		})
		require.NotNil(t, errs, "amount %q should be rejected", raw)
		assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs.Amount)
	}
}

func TestValidateUnknownStatus(t *testing.T) {
	v := New()

	for _, raw := range []string{"", "PAID", "open", "void"} {
		_, errs := v.Validate(domain.MutationInput{
			CustomerID: "c1",
			Amount:     "10",
			Status:     raw,
		})
		require.NotNil(t, errs, "status %q should be rejected", raw)
		assert.Equal(t, []string{"Please select an invoice status."}, errs.Status)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	v := New()

	_, errs := v.Validate(domain.MutationInput{})

	require.NotNil(t, errs)
	assert.Len(t, errs.CustomerID, 1)
	assert.Len(t, errs.Amount, 1)
	assert.Len(t, errs.Status, 1)
}

func TestValidateNormalizesValidInput(t *testing.T) {
	v := New()

	normalized, errs := v.Validate(domain.MutationInput{
		CustomerID: " c1 ",
		Amount:     "50.5",
		Status:     "pending",
	})

	require.Nil(t, errs)
	assert.Equal(t, "c1", normalized.CustomerID)
	assert.Equal(t, 50.5, normalized.Amount)
	assert.Equal(t, domain.StatusPending, normalized.Status)
}
