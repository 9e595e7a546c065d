package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Amount string `json:"amount" validate:"digits,required"`
	Kind   string `json:"kind" validate:"oneof=income expense"`
	Note   string `validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(sampleForm{Amount: "0", Kind: "income", Note: "x"}))
	})

	t.Run("first failing rule per field", func(t *testing.T) {
		fields := ValidateStruct(sampleForm{Amount: "", Kind: "gift"})

		assert.Equal(t, map[string]string{
			"amount": "Amount must be a valid number",
			"kind":   "Kind must be either income or expense",
			"Note":   "Note is required",
		}, fields)
	})

	t.Run("digits rejects decimals and signs", func(t *testing.T) {
		for _, amount := range []string{"12.5", "-3", "1e3", "abc", " 12", "١٢"} {
			fields := ValidateStruct(sampleForm{Amount: amount, Kind: "expense", Note: "x"})
			assert.Equal(t, "Amount must be a valid number", fields["amount"], "amount %q", amount)
		}
	})

	t.Run("non struct", func(t *testing.T) {
		fields := ValidateStruct("not a struct")
		assert.Contains(t, fields, "form")
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":"10","kind":"income"}`))
		var form sampleForm

		assert.Nil(t, DecodeJSON(req, &form))
		assert.Equal(t, "10", form.Amount)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":`))
		var form sampleForm

		appErr := DecodeJSON(req, &form)
		if assert.NotNil(t, appErr) {
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
		}
	})
}

func TestAppError_Send(t *testing.T) {
	rr := httptest.NewRecorder()
	NewValidationError(map[string]string{"amount": "Amount is required"}).Send(rr)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":400,"message":"Validation failed","errors":{"amount":"Amount is required"}}`, rr.Body.String())
}

func TestNewValidator_RegistersDigits(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })

	assert.NoError(t, v.Var("0123", "digits"))
	assert.Error(t, v.Var("12a", "digits"))
}
