package user

import (
	"context"
	"testing"

	"github.com/clockport/clockport-backend-go/internal/domain/notification"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	users       map[string]user.User
	deletedID   string
	deletedOrg  string
	deleteCalls int
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (f *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepository) ListByOrg(ctx context.Context, orgID string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) UpdateStatus(ctx context.Context, id string, status user.Status) error {
	return nil
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}

func (f *fakeUserRepository) UpdateContract(ctx context.Context, id string, contractType user.ContractType, endDate *string) error {
	return nil
}

func (f *fakeUserRepository) SetVerificationCode(ctx context.Context, id string, code *string) error {
	return nil
}

func (f *fakeUserRepository) SetResetCode(ctx context.Context, id string, code *string) error {
	return nil
}

func (f *fakeUserRepository) MarkEmailVerified(ctx context.Context, id string) error {
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string, orgID string) error {
	f.deleteCalls++
	f.deletedID = id
	f.deletedOrg = orgID
	return nil
}

type noopNotificationService struct{}

func (noopNotificationService) ListMyNotifications(ctx context.Context, limit int) ([]notification.NotificationResponse, error) {
	return nil, nil
}

func (noopNotificationService) CountUnread(ctx context.Context) (notification.UnreadCountResponse, error) {
	return notification.UnreadCountResponse{}, nil
}

func (noopNotificationService) MarkRead(ctx context.Context, id string) error { return nil }

func (noopNotificationService) MarkAllRead(ctx context.Context) error { return nil }

func (noopNotificationService) Notify(ctx context.Context, n notification.Notification) {}

func (noopNotificationService) NotifyOrgAdmins(ctx context.Context, orgID string, n notification.Notification) {
}

func authedContext(t *testing.T, orgID, userID string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"org_id":  orgID,
		"user_id": userID,
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestDeleteMe_RemovesCaller(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := NewUserService(nil, repo, noopNotificationService{})
	ctx := authedContext(t, "org-1", "u-1")

	err := svc.DeleteMe(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.deleteCalls)
	assert.Equal(t, "u-1", repo.deletedID)
	assert.Equal(t, "org-1", repo.deletedOrg)
}

func TestDeleteUser_RejectsSelf(t *testing.T) {
	repo := &fakeUserRepository{
		users: map[string]user.User{
			"u-1": {ID: "u-1", OrgID: "org-1", Role: user.RoleAdmin},
		},
	}
	svc := NewUserService(nil, repo, noopNotificationService{})
	ctx := authedContext(t, "org-1", "u-1")

	err := svc.DeleteUser(ctx, "u-1")

	assert.ErrorIs(t, err, user.ErrInvalidStatusChange)
	assert.Equal(t, 0, repo.deleteCalls)
}

func TestDeleteUser_OtherOrgUserNotFound(t *testing.T) {
	repo := &fakeUserRepository{
		users: map[string]user.User{
			"u-2": {ID: "u-2", OrgID: "org-2"},
		},
	}
	svc := NewUserService(nil, repo, noopNotificationService{})
	ctx := authedContext(t, "org-1", "admin-1")

	err := svc.DeleteUser(ctx, "u-2")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Equal(t, 0, repo.deleteCalls)
}
