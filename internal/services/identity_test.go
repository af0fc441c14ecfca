package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-exchange/internal/config"
	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/denmor86/ya-exchange/internal/storage"
	"github.com/denmor86/ya-exchange/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestIdentity(storage storage.UsersStorage) *Identity {
	cfg := config.DefaultConfig().Server
	cfg.AdminEmails = []string{"admin@mail.ru"}
	identity := NewIdentity(cfg, storage).(*Identity)
	identity.NewID = func() int64 { return 1700000000000 }
	return identity
}

func TestNewIdentityService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockUsersStorage(ctrl)

	identity := NewIdentity(config.DefaultConfig().Server, mockStorage)
	baseService, ok := identity.(*Identity)
	if !ok {
		t.Fatalf("Expected *Identity, got: '%T'", identity)
	}
	if baseService.JWTAuth == nil || baseService.GetTokenAuth() != baseService.JWTAuth {
		t.Errorf("Expected Identity to be initialized with JWTAuth")
	}
	if baseService.Storage != mockStorage {
		t.Errorf("Expected Identity to be initialized with provided storage")
	}
}

func TestNewUserID(t *testing.T) {
	for i := 0; i < 100; i++ {
		now := time.Now().UnixMilli()
		id := NewUserID()
		if id < now-1000 || id > time.Now().UnixMilli()+1000 {
			t.Fatalf("Expected id within ±1000 of %d, got: %d", now, id)
		}
	}
}

func TestRegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockUsersStorage(ctrl)

	testCases := []struct {
		TestName      string
		SetupMocks    func()
		User          models.UserRequest
		ExpectedError error
	}{
		{
			TestName: "Register User: Success #1",
			SetupMocks: func() {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "mda@mail.ru").Return(nil, storage.ErrUserNotFound)
				mockStorage.EXPECT().AddUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user models.UserData) error {
					if user.Role != models.RoleUser {
						t.Errorf("Expected role '%s', got: '%s'", models.RoleUser, user.Role)
					}
					if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("test_pass")) != nil {
						t.Errorf("Expected bcrypt hash of password")
					}
					return nil
				})
			},
			User: models.UserRequest{Email: "mda@mail.ru", Password: "test_pass"},
		},
		{
			TestName: "Register User: Admin role #2",
			SetupMocks: func() {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, storage.ErrUserNotFound)
				mockStorage.EXPECT().AddUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user models.UserData) error {
					if user.Role != models.RoleAdmin {
						t.Errorf("Expected role '%s', got: '%s'", models.RoleAdmin, user.Role)
					}
					return nil
				})
			},
			User: models.UserRequest{Email: "Admin@mail.ru", Password: "test_pass"},
		},
		{
			TestName: "Register User: ErrUserAlreadyExists #3",
			SetupMocks: func() {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&models.UserData{Email: "mda@mail.ru"}, nil)
			},
			User:          models.UserRequest{Email: "mda@mail.ru", Password: "test_pass"},
			ExpectedError: ErrUserAlreadyExists,
		},
		{
			TestName:      "Register User: Password too short #4",
			SetupMocks:    func() {},
			User:          models.UserRequest{Email: "mda@mail.ru", Password: "short"},
			ExpectedError: ErrPasswordTooShort,
		},
		{
			TestName:      "Register User: Empty email #5",
			SetupMocks:    func() {},
			User:          models.UserRequest{Email: "  ", Password: "test_pass"},
			ExpectedError: ErrEmptyCredentials,
		},
		{
			TestName: "Register User: Id collision retried #6",
			SetupMocks: func() {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, storage.ErrUserNotFound)
				gomock.InOrder(
					mockStorage.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(storage.ErrIDTaken),
					mockStorage.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
			User: models.UserRequest{Email: "mda@mail.ru", Password: "test_pass"},
		},
		{
			TestName: "Register User: Concurrent duplicate #7",
			SetupMocks: func() {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, storage.ErrUserNotFound)
				mockStorage.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
			},
			User:          models.UserRequest{Email: "mda@mail.ru", Password: "test_pass"},
			ExpectedError: ErrUserAlreadyExists,
		},
		{
			TestName: "Register User: Undefined error #8",
			SetupMocks: func() {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, storage.ErrUserNotFound)
				mockStorage.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(errors.New("failed to add user"))
			},
			User:          models.UserRequest{Email: "mda@mail.ru", Password: "test_pass"},
			ExpectedError: errors.New("failed to add user"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			identity := newTestIdentity(mockStorage)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := identity.RegisterUser(ctx, tc.User)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockUsersStorage(ctrl)

	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("test_pass"), bcrypt.MinCost)
	stored := &models.UserData{ID: 1, Email: "mda@mail.ru", PasswordHash: string(passwordHash)}

	testCases := []struct {
		TestName      string
		SetupMocks    func()
		User          models.UserRequest
		ExpectedUser  *models.UserData
		ExpectedError error
	}{
		{
			TestName: "AuthenticateUser Success #1",
			SetupMocks: func() {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "mda@mail.ru").Return(stored, nil)
			},
			User:         models.UserRequest{Email: "mda@mail.ru", Password: "test_pass"},
			ExpectedUser: stored,
		},
		{
			TestName: "AuthenticateUser UserNotFound #2",
			SetupMocks: func() {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, storage.ErrUserNotFound)
			},
			User:          models.UserRequest{Email: "mda@mail.ru", Password: "test_pass"},
			ExpectedError: ErrInvalidCredentials,
		},
		{
			TestName: "AuthenticateUser InvalidPassword #3",
			SetupMocks: func() {
				mockStorage.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			User:          models.UserRequest{Email: "mda@mail.ru", Password: "wrong_pass"},
			ExpectedError: ErrInvalidCredentials,
		},
		{
			TestName:      "AuthenticateUser Empty password #4",
			SetupMocks:    func() {},
			User:          models.UserRequest{Email: "mda@mail.ru"},
			ExpectedError: ErrEmptyCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			identity := newTestIdentity(mockStorage)

			user, err := identity.AuthenticateUser(context.Background(), tc.User)
			if !errors.Is(err, tc.ExpectedError) {
				t.Fatalf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if diff := cmp.Diff(tc.ExpectedUser, user); diff != "" {
				t.Errorf("user mismatch:\n %s", diff)
			}
		})
	}
}

func TestGenerateJWT(t *testing.T) {
	identity := newTestIdentity(nil)

	testCases := []struct {
		TestName     string
		User         *models.UserData
		ExpectedRole interface{}
	}{
		{TestName: "Regular user #1", User: &models.UserData{ID: 1700000000123, Email: "mda@mail.ru", Role: models.RoleUser}, ExpectedRole: nil},
		{TestName: "Admin #2", User: &models.UserData{ID: 42, Email: "admin@mail.ru", Role: models.RoleAdmin}, ExpectedRole: models.RoleAdmin},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tokenString, err := identity.GenerateJWT(tc.User)
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}

			token, err := identity.GetTokenAuth().Decode(tokenString)
			if err != nil {
				t.Fatalf("Expected valid token, got: '%v'", err)
			}
			claims := token.PrivateClaims()
			if claims["userId"] != float64(tc.User.ID) {
				t.Errorf("Expected userId %d, got: %v", tc.User.ID, claims["userId"])
			}
			if claims["email"] != tc.User.Email {
				t.Errorf("Expected email '%s', got: %v", tc.User.Email, claims["email"])
			}
			if claims["role"] != tc.ExpectedRole {
				t.Errorf("Expected role %v, got: %v", tc.ExpectedRole, claims["role"])
			}
			lifetime := time.Until(token.Expiration())
			if lifetime < TokenExpirationTime-time.Minute || lifetime > TokenExpirationTime {
				t.Errorf("Expected token lifetime about 7 days, got: %v", lifetime)
			}
		})
	}
}

func TestUpdateAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockUsersStorage(ctrl)
	identity := newTestIdentity(mockStorage)
	session := models.Session{UserID: 7, Email: "mda@mail.ru"}

	_, err := identity.UpdateAddress(context.Background(), session, "   ")
	if !errors.Is(err, ErrAddressRequired) {
		t.Errorf("Expected '%v', got: '%v'", ErrAddressRequired, err)
	}

	address := "0xABC"
	mockStorage.EXPECT().UpdateUserAddress(gomock.Any(), int64(7), address).Return(&models.UserData{ID: 7, Address: &address}, nil)
	user, err := identity.UpdateAddress(context.Background(), session, " 0xABC ")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if user.Address == nil || *user.Address != address {
		t.Errorf("Expected address '%s', got: %v", address, user.Address)
	}

	mockStorage.EXPECT().UpdateUserAddress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrUserNotFound)
	_, err = identity.UpdateAddress(context.Background(), session, address)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected '%v', got: '%v'", ErrUserNotFound, err)
	}
}
