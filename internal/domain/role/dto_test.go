package role

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

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateRoleRequest_Validate(t *testing.T) {
	req := CreateRoleRequest{Name: "Waiter"}
	assert.NoError(t, req.Validate())

	req = CreateRoleRequest{Name: "  "}
	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "name")
}

func TestUpdateRoleRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      UpdateRoleRequest
		badField string
	}{
		{
			name: "rename only",
			req:  UpdateRoleRequest{RoleID: "r-1", Name: strPtr("Chef")},
		},
		{
			name: "reposition only",
			req:  UpdateRoleRequest{RoleID: "r-1", Position: intPtr(3)},
		},
		{
			name:     "nothing to update",
			req:      UpdateRoleRequest{RoleID: "r-1"},
			badField: "name",
		},
		{
			name:     "empty name",
			req:      UpdateRoleRequest{RoleID: "r-1", Name: strPtr("")},
			badField: "name",
		},
		{
			name:     "position below one",
			req:      UpdateRoleRequest{RoleID: "r-1", Position: intPtr(0)},
			badField: "position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.badField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldErrors(t, err), tt.badField)
		})
	}
}
