package validator

import (
	"testing"

	"go-stocktrack/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Type      string `json:"type" validate:"required,oneof=sale purchase"`
}

func TestValidPasses(t *testing.T) {
	err := ValidateStruct(&sampleRequest{ProductID: "P1", Quantity: 2, Type: "sale"})
	assert.NoError(t, err)
}

func TestFirstViolationWins(t *testing.T) {
	// Both productId and quantity are invalid; declaration order decides.
	err := ValidateStruct(&sampleRequest{Type: "sale"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "productId", verr.Field)
	assert.Equal(t, "required", verr.Rule)
}

func TestFieldsReportedByJSONName(t *testing.T) {
	err := ValidateStruct(&sampleRequest{ProductID: "P1", Quantity: 0, Type: "sale"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Field)
}

func TestClosedSetRule(t *testing.T) {
	err := ValidateStruct(&sampleRequest{ProductID: "P1", Quantity: 1, Type: "refund"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)
	assert.Equal(t, "oneof", verr.Rule)
}
