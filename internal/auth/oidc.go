package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"objectviewer/internal/authentication"
	"objectviewer/internal/config"
	"objectviewer/internal/middlewares"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// NewRealOIDCProvider creates a new instance of the real OIDC provider with initialized config
func NewRealOIDCProvider(ctx context.Context, cfg config.OIDCConfig) (*RealOIDCProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.Scopes,
		RedirectURL:  cfg.RedirectURI,
	}

	return &RealOIDCProvider{
		provider:     provider,
		oauth2Config: oauth2Config,
	}, nil
}

type RealOIDCProvider struct {
	provider     *oidc.Provider
	oauth2Config *oauth2.Config
}

func (r *RealOIDCProvider) GenerateRandString(bytes int) string {
	if bytes <= 0 {
		bytes = 32
	}

	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.URLEncoding.EncodeToString(b)
}

// GenerateCodeVerifier returns a PKCE verifier and its S256 challenge.
func (r *RealOIDCProvider) GenerateCodeVerifier() (string, string) {
	b := make([]byte, 56)
	_, _ = rand.Read(b)

	codeVerifier := base64.RawURLEncoding.EncodeToString(b)
	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge := base64.RawURLEncoding.EncodeToString(hash[:])
	return codeVerifier, codeChallenge
}

func (r *RealOIDCProvider) StartLogin(ctx *middlewares.AppContext) (string, error) {
	state := r.GenerateRandString(32)
	nonce := r.GenerateRandString(32)
	codeVerifier, codeChallenge := r.GenerateCodeVerifier()

	ctx.WebSession.SetOauthNonce(ctx, nonce)
	ctx.WebSession.SetOauthState(ctx, state)
	ctx.WebSession.SetOauthCodeVerifier(ctx, codeVerifier)

	authURL := r.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("prompt", "login"),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	return authURL, nil
}

func errorRedirect(code, description string) string {
	return "/error?error=" + url.QueryEscape(code) + "&error_description=" + url.QueryEscape(description)
}

// HandleCallback validates the provider's redirect and returns the verified
// identity as an external authentication request.
func (r *RealOIDCProvider) HandleCallback(ctx *middlewares.AppContext) (*authentication.ExternalRequest, error) {
	query := ctx.Request.URL.Query()

	if errorParam := query.Get("error"); errorParam != "" {
		errorURL := "/error?error=" + url.QueryEscape(errorParam)
		if errorDescription := query.Get("error_description"); errorDescription != "" {
			errorURL += "&error_description=" + url.QueryEscape(errorDescription)
		}
		if errorURI := query.Get("error_uri"); errorURI != "" {
			errorURL += "&error_uri=" + url.QueryEscape(errorURI)
		}
		if state := query.Get("state"); state != "" {
			errorURL += "&state=" + url.QueryEscape(state)
		}

		return nil, &OIDCError{RedirectURL: errorURL, Message: errorParam}
	}

	storedState := ctx.WebSession.GetOauthState(ctx)
	if storedState == "" {
		return nil, &OIDCError{
			RedirectURL: errorRedirect("invalid_request", "No oauth state found in session"),
			Message:     "no oauth state found in session",
		}
	}

	if query.Get("state") != storedState {
		return nil, &OIDCError{
			RedirectURL: errorRedirect("invalid_request", "Invalid state parameter"),
			Message:     "invalid state parameter",
		}
	}

	ctx.WebSession.ClearOauthState(ctx)

	code := query.Get("code")
	if code == "" {
		return nil, &OIDCError{
			RedirectURL: errorRedirect("invalid_request", "No authorization code received"),
			Message:     "no authorization code received",
		}
	}

	verifierCode := ctx.WebSession.GetOauthCodeVerifier(ctx)
	ctx.WebSession.ClearOauthCodeVerifier(ctx)

	token, err := r.oauth2Config.Exchange(ctx, code, oauth2.VerifierOption(verifierCode))
	if err != nil {
		return nil, &OIDCError{
			RedirectURL: errorRedirect("invalid_grant", "Failed to exchange code for token"),
			Message:     fmt.Sprintf("failed to exchange code for token: %v", err),
		}
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, &OIDCError{
			RedirectURL: errorRedirect("invalid_token", "No id_token found in oauth2 token"),
			Message:     "no id_token found in oauth2 token",
		}
	}

	verifier := r.provider.Verifier(&oidc.Config{ClientID: r.oauth2Config.ClientID})

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, &OIDCError{
			RedirectURL: errorRedirect("invalid_token", "Failed to verify ID Token"),
			Message:     fmt.Sprintf("failed to verify ID Token: %v", err),
		}
	}

	req, nonce, err := extractRequestFromToken(idToken)
	if err != nil {
		return nil, &OIDCError{
			RedirectURL: errorRedirect("server_error", "Failed to extract user from ID Token"),
			Message:     fmt.Sprintf("failed to extract user from ID Token: %v", err),
		}
	}

	if nonce != ctx.WebSession.GetOauthNonce(ctx) {
		return nil, &OIDCError{
			RedirectURL: errorRedirect("server_error", "Invalid Nonce"),
			Message:     "nonce in ID Token is invalid",
		}
	}

	ctx.WebSession.ClearOauthNonce(ctx)

	if err := r.enrichFromUserInfo(ctx, token, req); err != nil {
		ctx.Logger.Warn("Failed to fetch user info, using ID token data only", "error", err)
	}

	return req, nil
}

// enrichFromUserInfo fills in what the UserInfo endpoint knows beyond the ID
// token. Values from the endpoint win.
func (r *RealOIDCProvider) enrichFromUserInfo(ctx context.Context, token *oauth2.Token, req *authentication.ExternalRequest) error {
	userInfo, err := r.provider.UserInfo(ctx, oauth2.StaticTokenSource(token))
	if err != nil {
		return fmt.Errorf("failed to get user info: %w", err)
	}

	var claims struct {
		Username    string   `json:"preferred_username"`
		Name        string   `json:"name"`
		DisplayName string   `json:"display_name"`
		Email       string   `json:"email"`
		Groups      []string `json:"groups"`
	}

	if err := userInfo.Claims(&claims); err != nil {
		return fmt.Errorf("failed to parse user info claims: %w", err)
	}

	req.Username = getPreferredValue(claims.Username, req.Username)
	req.DisplayName = getPreferredValue(claims.DisplayName, claims.Name, req.DisplayName)
	req.Email = getPreferredValue(claims.Email, req.Email)
	if len(claims.Groups) > 0 {
		req.Groups = claims.Groups
	}

	return nil
}
