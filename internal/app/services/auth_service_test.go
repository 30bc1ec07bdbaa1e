package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/pkg/apperrors"
	"github.com/placemate/placemate/internal/pkg/auth"
	"github.com/placemate/placemate/internal/pkg/identity"
)

// fakeIdentityStore is an in-memory identity.Store
type fakeIdentityStore struct {
	accounts map[string]*identity.Account // keyed by email
	verified map[string]bool              // keyed by account id

	failCreate  error
	nextID      int
	deleteCalls []string
}

func newFakeIdentityStore() *fakeIdentityStore {
	return &fakeIdentityStore{
		accounts: map[string]*identity.Account{},
		verified: map[string]bool{},
	}
}

func (f *fakeIdentityStore) CreateAccount(_ context.Context, email, password string) (*identity.Account, error) {
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	if _, ok := f.accounts[email]; ok {
		return nil, identity.ErrEmailTaken
	}
	f.nextID++
	account := &identity.Account{ID: string(rune('a'+f.nextID)) + "-account", Email: email, CreatedAt: time.Now()}
	f.accounts[email] = account
	return account, nil
}

func (f *fakeIdentityStore) Authenticate(_ context.Context, email, password string) (*identity.Account, error) {
	account, ok := f.accounts[email]
	if !ok || password != "correct-password" {
		return nil, identity.ErrInvalidCredentials
	}
	if !f.verified[account.ID] {
		return nil, identity.ErrEmailNotVerified
	}
	return account, nil
}

func (f *fakeIdentityStore) GetAccount(_ context.Context, id string) (*identity.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, identity.ErrAccountNotFound
}

func (f *fakeIdentityStore) DeleteAccount(_ context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	for email, account := range f.accounts {
		if account.ID == id {
			delete(f.accounts, email)
			return nil
		}
	}
	return identity.ErrAccountNotFound
}

func (f *fakeIdentityStore) CreateVerificationToken(_ context.Context, accountID string) (string, error) {
	return "token-" + accountID, nil
}

func (f *fakeIdentityStore) VerifyEmail(_ context.Context, token string) error {
	return identity.ErrTokenInvalid
}

// fakeProfileStore is an in-memory ProfileStore
type fakeProfileStore struct {
	profiles map[string]*models.Profile

	failCreate  error
	deleteCalls []string
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]*models.Profile{}}
}

func (f *fakeProfileStore) Create(_ context.Context, profile *models.Profile) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileStore) GetByID(_ context.Context, id string) (*models.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileStore) Review(_ context.Context, targetID, reviewerID string, status models.ReviewStatus, decidedAt time.Time) (bool, error) {
	profile, ok := f.profiles[targetID]
	if !ok || profile.ReviewStatus != models.ReviewPending {
		return false, nil
	}
	profile.ReviewStatus = status
	profile.ApprovedBy = &reviewerID
	profile.ApprovedAt = &decidedAt
	return true, nil
}

func (f *fakeProfileStore) UpdateNames(_ context.Context, id, firstName, lastName string) error {
	profile, ok := f.profiles[id]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	profile.FirstName = firstName
	profile.LastName = lastName
	return nil
}

func (f *fakeProfileStore) Delete(_ context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if _, ok := f.profiles[id]; !ok {
		return apperrors.ErrProfileNotFound
	}
	delete(f.profiles, id)
	return nil
}

// fakeRoleRecordStore is an in-memory RoleRecordStore
type fakeRoleRecordStore struct {
	records map[string]models.RoleRecord // keyed by profile id

	failCreate error
}

func newFakeRoleRecordStore() *fakeRoleRecordStore {
	return &fakeRoleRecordStore{records: map[string]models.RoleRecord{}}
}

func (f *fakeRoleRecordStore) Create(_ context.Context, rec models.RoleRecord) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.records[rec.Owner()] = rec
	return nil
}

func (f *fakeRoleRecordStore) FetchByProfileID(_ context.Context, role models.Role, profileID string) (models.RoleRecord, error) {
	if role == models.RoleAdmin {
		return nil, nil
	}
	rec, ok := f.records[profileID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return rec, nil
}

func (f *fakeRoleRecordStore) DeleteByProfileID(_ context.Context, role models.Role, profileID string) error {
	delete(f.records, profileID)
	return nil
}

// fakeEmailSender records outbound verification emails
type fakeEmailSender struct {
	sent []string
}

func (f *fakeEmailSender) SendVerificationEmail(toEmail, toName, token string) error {
	f.sent = append(f.sent, toEmail)
	return nil
}

func newTestAuthService() (*AuthService, *fakeIdentityStore, *fakeProfileStore, *fakeRoleRecordStore, *fakeEmailSender) {
	identityStore := newFakeIdentityStore()
	profiles := newFakeProfileStore()
	records := newFakeRoleRecordStore()
	sender := &fakeEmailSender{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: time.Hour,
		TokenIssuer:     "test",
	})
	svc := NewAuthService(identityStore, profiles, records, jwtService, sender, zerolog.Nop())
	return svc, identityStore, profiles, records, sender
}

func studentRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:      "student@campus.edu",
		Password:   "correct-password",
		Role:       models.RoleStudent,
		FirstName:  "Asha",
		LastName:   "Verma",
		RollNumber: "21CS045",
		Branch:     "Computer Science",
		Year:       3,
	}
}

func TestRegisterCreatesAccountProfileAndRoleRecord(t *testing.T) {
	svc, identityStore, profiles, records, sender := newTestAuthService()

	resp, err := svc.Register(context.Background(), studentRegisterRequest())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.Role != models.RoleStudent {
		t.Errorf("expected role student, got %s", resp.Role)
	}

	profile, err := profiles.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if profile.ReviewStatus != models.ReviewPending {
		t.Errorf("new profile should be pending, got %s", profile.ReviewStatus)
	}
	if _, ok := records.records[resp.ID]; !ok {
		t.Error("role record not created")
	}
	if _, ok := identityStore.accounts["student@campus.edu"]; !ok {
		t.Error("identity account not created")
	}
	if len(sender.sent) != 1 {
		t.Errorf("expected one verification email, got %d", len(sender.sent))
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _, _, _, _ := newTestAuthService()

	req := studentRegisterRequest()
	req.Role = models.RoleAdmin

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure for admin self-registration, got %v", err)
	}
}

func TestRegisterRequiresRoleFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
	}{
		{"missing roll number", func(r *dto.RegisterRequest) { r.RollNumber = "" }},
		{"missing branch", func(r *dto.RegisterRequest) { r.Branch = "" }},
		{"missing year", func(r *dto.RegisterRequest) { r.Year = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, identityStore, _, _, _ := newTestAuthService()
			req := studentRegisterRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation failure, got %v", err)
			}
			if len(identityStore.accounts) != 0 {
				t.Error("no account should be created when validation fails")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), studentRegisterRequest()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, err := svc.Register(context.Background(), studentRegisterRequest())
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterIdentityTimeout(t *testing.T) {
	svc, identityStore, _, _, _ := newTestAuthService()
	identityStore.failCreate = fmt.Errorf("error creating account: %w", context.DeadlineExceeded)

	_, err := svc.Register(context.Background(), studentRegisterRequest())
	if !errors.Is(err, apperrors.ErrUpstreamTimeout) {
		t.Fatalf("expected ErrUpstreamTimeout for a deadline expiry, got %v", err)
	}
}

func TestRegisterIdentityFailure(t *testing.T) {
	svc, identityStore, _, _, _ := newTestAuthService()
	identityStore.failCreate = errors.New("connection refused")

	_, err := svc.Register(context.Background(), studentRegisterRequest())
	if !errors.Is(err, apperrors.ErrUpstreamFailure) {
		t.Fatalf("expected ErrUpstreamFailure, got %v", err)
	}
}

func TestRegisterRollsBackAccountWhenProfileFails(t *testing.T) {
	svc, identityStore, profiles, _, _ := newTestAuthService()
	profiles.failCreate = errors.New("insert failed")

	_, err := svc.Register(context.Background(), studentRegisterRequest())
	if !errors.Is(err, apperrors.ErrProfileCreationFailed) {
		t.Fatalf("expected ErrProfileCreationFailed, got %v", err)
	}
	if len(identityStore.deleteCalls) != 1 {
		t.Fatalf("expected one compensating account delete, got %d", len(identityStore.deleteCalls))
	}
	if len(identityStore.accounts) != 0 {
		t.Error("orphaned identity credential left behind")
	}
}

func TestRegisterRollsBackProfileAndAccountWhenRoleRecordFails(t *testing.T) {
	svc, identityStore, profiles, records, _ := newTestAuthService()
	records.failCreate = errors.New("insert failed")

	_, err := svc.Register(context.Background(), studentRegisterRequest())
	if !errors.Is(err, apperrors.ErrRoleRecordCreationFailed) {
		t.Fatalf("expected ErrRoleRecordCreationFailed, got %v", err)
	}
	if len(profiles.deleteCalls) != 1 {
		t.Fatalf("expected one compensating profile delete, got %d", len(profiles.deleteCalls))
	}
	if len(profiles.profiles) != 0 {
		t.Error("profile left behind after rollback")
	}
	if len(identityStore.accounts) != 0 {
		t.Error("orphaned identity credential left behind")
	}

	// A retry with the same email starts clean
	records.failCreate = nil
	if _, err := svc.Register(context.Background(), studentRegisterRequest()); err != nil {
		t.Fatalf("retry after rollback failed: %v", err)
	}
}

func registerVerifiedUser(t *testing.T, svc *AuthService, identityStore *fakeIdentityStore, req *dto.RegisterRequest) string {
	t.Helper()
	resp, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	identityStore.verified[resp.ID] = true
	return resp.ID
}

func TestSignInInvalidCredentials(t *testing.T) {
	svc, identityStore, _, _, _ := newTestAuthService()
	registerVerifiedUser(t, svc, identityStore, studentRegisterRequest())

	_, err := svc.SignIn(context.Background(), &dto.LoginRequest{Email: "student@campus.edu", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignInUnverifiedEmail(t *testing.T) {
	svc, _, _, _, _ := newTestAuthService()
	if _, err := svc.Register(context.Background(), studentRegisterRequest()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, err := svc.SignIn(context.Background(), &dto.LoginRequest{Email: "student@campus.edu", Password: "correct-password"})
	if !errors.Is(err, apperrors.ErrEmailNotVerified) {
		t.Fatalf("expected ErrEmailNotVerified, got %v", err)
	}
}

func TestSignInPendingApproval(t *testing.T) {
	svc, identityStore, _, _, _ := newTestAuthService()
	registerVerifiedUser(t, svc, identityStore, studentRegisterRequest())

	_, err := svc.SignIn(context.Background(), &dto.LoginRequest{Email: "student@campus.edu", Password: "correct-password"})
	if !errors.Is(err, apperrors.ErrPendingApproval) {
		t.Fatalf("expected ErrPendingApproval for unapproved student, got %v", err)
	}
}

func TestSignInApprovedStudent(t *testing.T) {
	svc, identityStore, profiles, _, _ := newTestAuthService()
	id := registerVerifiedUser(t, svc, identityStore, studentRegisterRequest())
	profiles.profiles[id].ReviewStatus = models.ReviewApproved

	resp, err := svc.SignIn(context.Background(), &dto.LoginRequest{Email: "student@campus.edu", Password: "correct-password"})
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if resp.Session.AccessToken == "" {
		t.Error("expected a session token")
	}
	if !resp.User.IsApproved {
		t.Error("approved user should report isApproved")
	}
	if resp.User.RoleData == nil {
		t.Error("expected role data on the login payload")
	}
}

func TestSignInAdminBypassesApprovalGate(t *testing.T) {
	svc, identityStore, profiles, _, _ := newTestAuthService()

	account, err := identityStore.CreateAccount(context.Background(), "admin@campus.edu", "correct-password")
	if err != nil {
		t.Fatalf("account creation failed: %v", err)
	}
	identityStore.verified[account.ID] = true
	profiles.profiles[account.ID] = &models.Profile{
		ID:           account.ID,
		Email:        "admin@campus.edu",
		Role:         models.RoleAdmin,
		ReviewStatus: models.ReviewPending,
	}

	resp, err := svc.SignIn(context.Background(), &dto.LoginRequest{Email: "admin@campus.edu", Password: "correct-password"})
	if err != nil {
		t.Fatalf("admin sign-in should bypass the approval gate, got %v", err)
	}
	if !resp.User.IsApproved {
		t.Error("admin should always report isApproved")
	}
}
