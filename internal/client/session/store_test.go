package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/physiofit/clinic/internal/client/client"
	"github.com/physiofit/clinic/internal/client/models"
	"github.com/physiofit/clinic/internal/client/repositories/metadata"
	"github.com/physiofit/clinic/internal/common"
)

// ---- helpers ----

func setupRepo(t *testing.T) metadata.Repository {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return metadata.NewSQLiteRepository(db)
}

func mintToken(t *testing.T, role, email string) string {
	t.Helper()
	claims := &models.Claims{
		UserID:    "7",
		RoleName:  role,
		FirstName: "Ada",
		LastName:  "Kowalska",
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func storedCredential(t *testing.T, repo metadata.Repository) *models.Credential {
	t.Helper()
	raw, err := repo.Get(context.Background(), common.CredentialStorageKey)
	require.NoError(t, err)
	if raw == nil {
		return nil
	}
	var cred models.Credential
	require.NoError(t, json.Unmarshal(raw, &cred))
	return &cred
}

// ---- fakes ----

type fakeIssuer struct {
	cred      *models.Credential
	err       error
	calls     int
	lastEmail string
}

func (f *fakeIssuer) ObtainToken(_ context.Context, email string, _ []byte) (*models.Credential, error) {
	f.calls++
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}
	c := *f.cred
	return &c, nil
}

type recordingNav struct {
	paths []string
	err   error
}

func (n *recordingNav) Navigate(_ context.Context, path string) error {
	n.paths = append(n.paths, path)
	return n.err
}

// faultyRepo wraps a Repository and fails the selected operations.
type faultyRepo struct {
	metadata.Repository
	setErr    error
	deleteErr error
	getErr    error
}

func (r *faultyRepo) Set(ctx context.Context, key string, value []byte) error {
	if r.setErr != nil {
		return r.setErr
	}
	return r.Repository.Set(ctx, key, value)
}

func (r *faultyRepo) Delete(ctx context.Context, key string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	return r.Repository.Delete(ctx, key)
}

func (r *faultyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.Repository.Get(ctx, key)
}

// ---- tests ----

func TestLogin_PersistsAndNavigates(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	cred := &models.Credential{Access: mintToken(t, "RECEPTIONIST", "rec@clinic.com"), Refresh: "refresh-1"}
	issuer := &fakeIssuer{cred: cred}
	nav := &recordingNav{}
	s := NewStore(issuer, repo, nav, nil)

	require.NoError(t, s.Login(ctx, "rec@clinic.com", []byte("pw")))

	user, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, models.RoleReceptionist, user.Role())
	assert.Equal(t, "rec@clinic.com", user.Email)
	assert.Equal(t, models.UserID("7"), user.UserID)
	assert.Equal(t, cred.Access, s.AccessToken())
	assert.Equal(t, "rec@clinic.com", issuer.lastEmail)

	if diff := cmp.Diff(cred, storedCredential(t, repo)); diff != "" {
		t.Fatalf("stored credential mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"/dashboard"}, nav.paths)
}

func TestLogin_LowercaseRoleNormalised(t *testing.T) {
	s := NewStore(&fakeIssuer{cred: &models.Credential{Access: mintToken(t, "admin", "a@clinic.com")}}, setupRepo(t), nil, nil)

	require.NoError(t, s.Login(context.Background(), "a@clinic.com", []byte("pw")))
	user, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, user.Role())
}

func TestLogin_FailureLeavesPriorSession(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	first := &models.Credential{Access: mintToken(t, "PHYSIO", "physio@clinic.com"), Refresh: "r1"}
	issuer := &fakeIssuer{cred: first}
	nav := &recordingNav{}
	s := NewStore(issuer, repo, nav, nil)
	require.NoError(t, s.Login(ctx, "physio@clinic.com", []byte("pw")))

	tests := []struct {
		name    string
		issuer  error
		access  string
		message string
		target  error
	}{
		{name: "rejected", issuer: client.ErrUnauthorized, message: MsgInvalidCredentials, target: client.ErrUnauthorized},
		{name: "unavailable", issuer: client.ErrUnavailable, message: MsgServerUnavailable, target: client.ErrUnavailable},
		{name: "bad request", issuer: &client.APIError{StatusCode: 400, Body: "{}"}, message: MsgInvalidCredentials},
		{name: "malformed token", access: "not-a-jwt", message: MsgInvalidCredentials, target: ErrMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer.err = tt.issuer
			issuer.cred = &models.Credential{Access: tt.access}

			err := s.Login(ctx, "other@clinic.com", []byte("bad"))
			var loginErr *LoginError
			require.ErrorAs(t, err, &loginErr)
			assert.Equal(t, tt.message, loginErr.Message)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}

			user, ok := s.CurrentUser()
			require.True(t, ok)
			assert.Equal(t, "physio@clinic.com", user.Email)
			assert.Equal(t, first.Access, s.AccessToken())
			assert.Equal(t, first, storedCredential(t, repo))
			assert.Equal(t, []string{"/dashboard"}, nav.paths)
		})
	}
}

func TestLogin_StorageFailure(t *testing.T) {
	repo := &faultyRepo{Repository: setupRepo(t), setErr: errors.New("disk full")}
	nav := &recordingNav{}
	s := NewStore(&fakeIssuer{cred: &models.Credential{Access: mintToken(t, "ADMIN", "a@clinic.com")}}, repo, nav, nil)

	err := s.Login(context.Background(), "a@clinic.com", []byte("pw"))
	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, MsgStorageFailure, loginErr.Message)

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, s.AccessToken())
	assert.Empty(t, nav.paths)
}

func TestLogin_NavigationErrorIsNotALoginFailure(t *testing.T) {
	nav := &recordingNav{err: errors.New("view failed")}
	s := NewStore(&fakeIssuer{cred: &models.Credential{Access: mintToken(t, "ADMIN", "a@clinic.com")}}, setupRepo(t), nav, nil)

	require.NoError(t, s.Login(context.Background(), "a@clinic.com", []byte("pw")))
	_, ok := s.CurrentUser()
	assert.True(t, ok)
}

func TestLogout_ClearsMemoryAndStorage(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	nav := &recordingNav{}
	s := NewStore(&fakeIssuer{cred: &models.Credential{Access: mintToken(t, "ADMIN", "a@clinic.com")}}, repo, nav, nil)
	require.NoError(t, s.Login(ctx, "a@clinic.com", []byte("pw")))

	require.NoError(t, s.Logout(ctx))

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, s.AccessToken())
	assert.Nil(t, storedCredential(t, repo))
	assert.Equal(t, []string{"/dashboard", "/login"}, nav.paths)
}

func TestLogout_WhenLoggedOut(t *testing.T) {
	nav := &recordingNav{}
	s := NewStore(&fakeIssuer{}, setupRepo(t), nav, nil)

	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, []string{"/login"}, nav.paths)
}

func TestLogout_StorageErrorStillClearsMemory(t *testing.T) {
	ctx := context.Background()
	repo := &faultyRepo{Repository: setupRepo(t)}
	nav := &recordingNav{}
	s := NewStore(&fakeIssuer{cred: &models.Credential{Access: mintToken(t, "ADMIN", "a@clinic.com")}}, repo, nav, nil)
	require.NoError(t, s.Login(ctx, "a@clinic.com", []byte("pw")))

	boom := errors.New("locked")
	repo.deleteErr = boom
	err := s.Logout(ctx)
	require.ErrorIs(t, err, boom)

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, []string{"/dashboard", "/login"}, nav.paths)
}

func TestRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	cred := &models.Credential{Access: mintToken(t, "PATIENT", "p@clinic.com"), Refresh: "r"}
	first := NewStore(&fakeIssuer{cred: cred}, repo, nil, nil)
	require.NoError(t, first.Login(ctx, "p@clinic.com", []byte("pw")))
	want, _ := first.CurrentUser()

	nav := &recordingNav{}
	second := NewStore(&fakeIssuer{}, repo, nav, nil)
	require.NoError(t, second.Restore(ctx))

	got, ok := second.CurrentUser()
	require.True(t, ok)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("restored claims mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, cred.Access, second.AccessToken())
	assert.Empty(t, nav.paths)
}

func TestRestore_NothingStored(t *testing.T) {
	s := NewStore(&fakeIssuer{}, setupRepo(t), nil, nil)

	require.NoError(t, s.Restore(context.Background()))
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestRestore_DropsCorruptEntry(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `eyJhbGciOi`},
		{"empty access", `{"access":"","refresh":"r"}`},
		{"access not a token", `{"access":"garbage","refresh":"r"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := setupRepo(t)
			require.NoError(t, repo.Set(ctx, common.CredentialStorageKey, []byte(tt.raw)))
			s := NewStore(&fakeIssuer{}, repo, nil, nil)

			require.NoError(t, s.Restore(ctx))

			_, ok := s.CurrentUser()
			assert.False(t, ok)
			raw, err := repo.Get(ctx, common.CredentialStorageKey)
			require.NoError(t, err)
			assert.Nil(t, raw)
		})
	}
}

func TestRestore_StorageError(t *testing.T) {
	boom := errors.New("io")
	s := NewStore(&fakeIssuer{}, &faultyRepo{Repository: setupRepo(t), getErr: boom}, nil, nil)

	require.ErrorIs(t, s.Restore(context.Background()), boom)
}

func TestCurrentUser_ReturnsCopy(t *testing.T) {
	s := NewStore(&fakeIssuer{cred: &models.Credential{Access: mintToken(t, "PHYSIO", "ph@clinic.com")}}, setupRepo(t), nil, nil)
	require.NoError(t, s.Login(context.Background(), "ph@clinic.com", []byte("pw")))

	u, _ := s.CurrentUser()
	exp := u.Expiry()
	require.False(t, exp.IsZero())

	u.RoleName = "ADMIN"
	u.ExpiresAt.Time = time.Time{}

	again, _ := s.CurrentUser()
	assert.Equal(t, models.RolePhysio, again.Role())
	assert.Equal(t, exp, again.Expiry())
}
