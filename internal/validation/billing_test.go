package validation

import (
	"strings"
	"testing"

	"tippool/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateParticipantID(t *testing.T) {
	assert.NoError(t, ValidateParticipantID("alice"))
	assert.Error(t, ValidateParticipantID(""))
	assert.Error(t, ValidateParticipantID("  \t"))
}

func TestValidateAccountRef(t *testing.T) {
	assert.NoError(t, ValidateAccountRef("acct_1NXWPnByc"))
	assert.Error(t, ValidateAccountRef(""))
	assert.Error(t, ValidateAccountRef(strings.Repeat("x", MaxAccountRefLength+1)))

	err := ValidateAccountRef("")
	var domainErr *errors.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestValidateOptionalAccountRef(t *testing.T) {
	ref := "acct_1NXWPnByc"
	blank := " "

	assert.NoError(t, ValidateOptionalAccountRef(nil))
	assert.NoError(t, ValidateOptionalAccountRef(&ref))
	assert.Error(t, ValidateOptionalAccountRef(&blank))
}

func TestValidateCardToken(t *testing.T) {
	assert.NoError(t, ValidateCardToken("tok_visa"))
	assert.Error(t, ValidateCardToken(""))
}
