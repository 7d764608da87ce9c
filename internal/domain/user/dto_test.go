package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateStatusRequest{Status: "ACTIVE"}).Validate())
	assert.NoError(t, (&UpdateStatusRequest{Status: "BLOCKED"}).Validate())

	// PENDING_APPROVAL is only ever set by the join flow.
	assert.Error(t, (&UpdateStatusRequest{Status: "PENDING_APPROVAL"}).Validate())
	assert.Error(t, (&UpdateStatusRequest{Status: "active"}).Validate())
	assert.Error(t, (&UpdateStatusRequest{}).Validate())
}

func TestUpdateContractRequest_Validate(t *testing.T) {
	endDate := "2025-12-31"
	badDate := "31/12/2025"

	assert.NoError(t, (&UpdateContractRequest{ContractType: "PERMANENT"}).Validate())
	assert.NoError(t, (&UpdateContractRequest{ContractType: "FIXED_TERM", EndDate: &endDate}).Validate())

	assert.Error(t, (&UpdateContractRequest{ContractType: "FIXED_TERM"}).Validate(), "fixed-term requires end date")
	assert.Error(t, (&UpdateContractRequest{ContractType: "FIXED_TERM", EndDate: &badDate}).Validate())
	assert.Error(t, (&UpdateContractRequest{ContractType: "SEASONAL"}).Validate())
}

func TestUser_CanPunch(t *testing.T) {
	cases := []struct {
		name string
		u    User
		want bool
	}{
		{"active verified", User{Status: StatusActive, EmailVerified: true}, true},
		{"active unverified", User{Status: StatusActive}, false},
		{"pending approval", User{Status: StatusPendingApproval, EmailVerified: true}, false},
		{"blocked", User{Status: StatusBlocked, EmailVerified: true}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.u.CanPunch(), c.name)
	}
}
