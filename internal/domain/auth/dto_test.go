package auth

import (
	"testing"

	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestRegisterOrgRequest_Validate(t *testing.T) {
	req := RegisterOrgRequest{
		OrgName:  "Rossi SRL",
		Name:     "Mario Rossi",
		Email:    "mario@rossi.it",
		Password: "supersecret",
	}
	assert.NoError(t, req.Validate())

	bad := RegisterOrgRequest{
		OrgName:  "  ",
		Name:     "",
		Email:    "not-an-email",
		Password: "short",
	}
	fields := fieldErrors(t, bad.Validate())
	assert.Contains(t, fields, "org_name")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestJoinOrgRequest_Validate_NormalizesCode(t *testing.T) {
	req := JoinOrgRequest{
		OrgCode:  "  ab12cd ",
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "supersecret",
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, "AB12CD", req.OrgCode)
}

func TestJoinOrgRequest_Validate_RejectsBadCode(t *testing.T) {
	for _, code := range []string{"", "ABC", "ABCDEFG", "AB-12C"} {
		req := JoinOrgRequest{
			OrgCode:  code,
			Name:     "Anna",
			Email:    "anna@example.com",
			Password: "supersecret",
		}
		fields := fieldErrors(t, req.Validate())
		assert.Contains(t, fields, "org_code", "code %q", code)
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Email: "mario@rossi.it", Password: "x"}
	assert.NoError(t, req.Validate())

	fields := fieldErrors(t, (&LoginRequest{Email: "nope", Password: ""}).Validate())
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestResetPasswordRequest_Validate(t *testing.T) {
	req := ResetPasswordRequest{
		Email:       "mario@rossi.it",
		Code:        "123456",
		NewPassword: "longenough",
	}
	assert.NoError(t, req.Validate())

	fields := fieldErrors(t, (&ResetPasswordRequest{
		Email:       "mario@rossi.it",
		Code:        " ",
		NewPassword: "short",
	}).Validate())
	assert.Contains(t, fields, "code")
	assert.Contains(t, fields, "new_password")
}
