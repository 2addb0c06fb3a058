package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"objectviewer/internal/apperrors"
	"objectviewer/internal/authentication"
	"objectviewer/internal/testutil"
	"testing"
)

var testSession = &authentication.Session{
	Code:        "code",
	UserName:    "sven",
	DisplayName: "Sven",
	Roles:       []string{"viewer.roles.USER", "admin"},
}

func TestPOSTSessionLoginHandler_ShouldSignIn(t *testing.T) {
	tc := testutil.NewTestContextWithBody(t, "POST", "/api/session/login", `{"username":"sven","password":"pass"}`)
	defer tc.Finish()

	tc.MockSession.EXPECT().Authenticate(tc.AppContext, "sven", "pass").Return(true, nil)
	tc.ExpectAuthenticationSession(testSession)
	tc.MockSession.EXPECT().Roles(tc.AppContext).Return(testSession.Roles)

	tc.CallHandler(POSTSessionLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertJSONObject(t, "user", map[string]interface{}{"username": "sven", "display_name": "Sven"})
	tc.AssertJSONStrings(t, "roles", testSession.Roles)
	tc.AssertLogsContainMessage(t, slog.LevelInfo, "User logged in")
}

func TestPOSTSessionLoginHandler_Should401OnWrongPassword(t *testing.T) {
	tc := testutil.NewTestContextWithBody(t, "POST", "/api/session/login", `{"username":"sven","password":"nope"}`)
	defer tc.Finish()

	tc.MockSession.EXPECT().Authenticate(tc.AppContext, "sven", "nope").Return(false, nil)

	tc.CallHandler(POSTSessionLoginHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONBool(t, "authenticated", false)
	tc.AssertLogsContainMessage(t, slog.LevelInfo, "Login failed")
}

func TestPOSTSessionLoginHandler_Should400OnBadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `username=sven`},
		{name: "unknown field", body: `{"username":"sven","password":"pass","admin":true}`},
		{name: "missing username", body: `{"password":"pass"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithBody(t, "POST", "/api/session/login", tt.body)
			defer tc.Finish()

			tc.CallHandler(POSTSessionLoginHandler)

			tc.AssertStatus(t, http.StatusBadRequest)
			tc.AssertJSONField(t, "error", "Bad Request")
		})
	}
}

func TestPOSTSessionLoginHandler_Should500OnAuthenticationError(t *testing.T) {
	tc := testutil.NewTestContextWithBody(t, "POST", "/api/session/login", `{"username":"sven","password":"pass"}`)
	defer tc.Finish()

	tc.MockSession.EXPECT().Authenticate(tc.AppContext, "sven", "pass").Return(false, errors.New("registry down"))

	tc.CallHandler(POSTSessionLoginHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", "Internal Server Error")
	tc.AssertLogsContainMessage(t, slog.LevelError, "Failed to authenticate user")
}

func TestPOSTSessionLoginHandler_ShouldHideApplicationErrors(t *testing.T) {
	tc := testutil.NewTestContextWithBody(t, "POST", "/api/session/login", `{"username":"sven","password":"pass"}`)
	defer tc.Finish()

	appErr := apperrors.NewWithMessage("session attribute has the wrong type")
	tc.MockSession.EXPECT().Authenticate(tc.AppContext, "sven", "pass").Return(false, appErr)

	tc.CallHandler(POSTSessionLoginHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", "Internal Server Error")
	tc.AssertLogsContainMessage(t, slog.LevelError, "Application error")
}

func TestPOSTLogoutHandler_ShouldInvalidateSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/session/logout")
	defer tc.Finish()

	tc.ExpectSignedIn(true)
	tc.ExpectAuthenticationSession(testSession)
	tc.MockSession.EXPECT().Invalidate(tc.AppContext).Return(nil)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "OK")
	tc.AssertLogsContainMessage(t, slog.LevelInfo, "User logged out")
}

func TestPOSTLogoutHandler_Should400AnonymousUsers(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/session/logout")
	defer tc.Finish()

	tc.ExpectSignedIn(false)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "error", "Bad Request")
}

func TestPOSTLogoutHandler_Should500OnInvalidateFail(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/session/logout")
	defer tc.Finish()

	tc.ExpectSignedIn(true)
	tc.ExpectAuthenticationSession(testSession)
	tc.MockSession.EXPECT().Invalidate(tc.AppContext).Return(errors.New("fail"))

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", "Internal Server Error")
	tc.AssertLogsContainMessage(t, slog.LevelError, "Failed to logout user")
}

func TestSessionStatusHandler_SignedIn(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/session/status")
	defer tc.Finish()

	tc.ExpectSignedIn(true)
	tc.ExpectAuthenticationSession(testSession)
	tc.MockSession.EXPECT().Roles(tc.AppContext).Return(testSession.Roles)

	tc.CallHandler(SessionStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertJSONObject(t, "user", map[string]interface{}{"username": "sven"})
	tc.AssertJSONStrings(t, "roles", testSession.Roles)
}

func TestSessionStatusHandler_Anonymous(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/session/status")
	defer tc.Finish()

	tc.ExpectSignedIn(false)

	tc.CallHandler(SessionStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONBool(t, "authenticated", false)

	if _, ok := tc.GetJSONResponse(t)["user"]; ok {
		t.Errorf("Expected no user in anonymous status response")
	}
}

func TestHandlerHealth(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/v1/health")
	defer tc.Finish()

	tc.CallHandler(HandlerHealth)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "status", "OK")
}

func TestRedactEmail(t *testing.T) {
	tests := map[string]string{
		"steve@example.com": "s***e@example.com",
		"ab@example.com":    "**@example.com",
		"not-an-email":      "",
	}
	for in, want := range tests {
		if got := RedactEmail(in); got != want {
			t.Errorf("RedactEmail(%q) = %q, want %q", in, got, want)
		}
	}
}
