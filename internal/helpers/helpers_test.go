package helpers

import (
	"context"
	"errors"
	"testing"

	"github.com/denmor86/ya-exchange/internal/models"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/go-cmp/cmp"
)

func contextWithToken(t *testing.T, claims map[string]interface{}) context.Context {
	ja := jwtauth.New("HS256", []byte("secret"), nil)
	token, _, err := ja.Encode(claims)
	if err != nil {
		t.Fatalf("Failed to encode token: %v", err)
	}
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGetSession(t *testing.T) {
	testCases := []struct {
		TestName        string
		Claims          map[string]interface{}
		ExpectedSession models.Session
		ExpectedError   error
	}{
		{
			TestName:        "Regular user #1",
			Claims:          map[string]interface{}{"userId": float64(1700000000123), "email": "mda@mail.ru"},
			ExpectedSession: models.Session{UserID: 1700000000123, Email: "mda@mail.ru", Role: models.RoleUser},
		},
		{
			TestName:        "Admin #2",
			Claims:          map[string]interface{}{"userId": int64(42), "email": "admin@mail.ru", "role": "admin"},
			ExpectedSession: models.Session{UserID: 42, Email: "admin@mail.ru", Role: models.RoleAdmin},
		},
		{
			TestName:      "Missing user id #3",
			Claims:        map[string]interface{}{"email": "mda@mail.ru"},
			ExpectedError: ErrInvalidSession,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			session, err := GetSession(contextWithToken(t, tc.Claims))
			if !errors.Is(err, tc.ExpectedError) {
				t.Fatalf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if diff := cmp.Diff(tc.ExpectedSession, session); diff != "" {
				t.Errorf("session mismatch:\n %s", diff)
			}
		})
	}
}
