package kindred

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ski-stay/ski-stay-search/internal/domain"
)

// OTPChallenge describes the login challenge the platform emailed.
type OTPChallenge struct {
	// Mode is the challenge kind the platform chose (OTP or magic link).
	Mode string `json:"mode"`

	// Length is the passcode length for OTP mode.
	Length int `json:"length"`
}

// Credentials is the token pair returned by a successful OTP exchange.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthClient drives the platform's OTP email login flow.
// The core search path never calls it; it only supplies and validates the
// bearer credential the caller threads through each search.
type AuthClient struct {
	exec domain.GraphQLExecutor
}

// NewAuthClient creates an auth client over the given transport.
func NewAuthClient(exec domain.GraphQLExecutor) *AuthClient {
	return &AuthClient{exec: exec}
}

// SendOTP asks the platform to email a one-time passcode to the address.
// The request is unauthenticated.
func (a *AuthClient) SendOTP(ctx context.Context, email string) (*OTPChallenge, error) {
	variables := map[string]interface{}{
		"email": email,
		"path":  "/explore",
	}

	raw, err := a.exec.Do(ctx, opSendOTP, mutationSendOTP, variables, "")
	if err != nil {
		return nil, err
	}

	var data struct {
		StartEmailLoginUser OTPChallenge `json:"startEmailLoginUser"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, domain.NewUpstreamError(opSendOTP, fmt.Errorf("decode response: %w", err))
	}
	return &data.StartEmailLoginUser, nil
}

// VerifyOTP exchanges the emailed passcode for a token pair.
// The request is unauthenticated.
func (a *AuthClient) VerifyOTP(ctx context.Context, email, otp string) (*Credentials, error) {
	variables := map[string]interface{}{
		"deviceId":   nil,
		"email":      email,
		"emailToken": otp,
	}

	raw, err := a.exec.Do(ctx, opVerifyOTP, mutationVerifyOTP, variables, "")
	if err != nil {
		return nil, err
	}

	var data struct {
		FinishEmailLoginUser Credentials `json:"finishEmailLoginUser"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, domain.NewUpstreamError(opVerifyOTP, fmt.Errorf("decode response: %w", err))
	}
	if data.FinishEmailLoginUser.AccessToken == "" {
		return nil, domain.NewUpstreamError(opVerifyOTP, fmt.Errorf("no access token in response"))
	}
	return &data.FinishEmailLoginUser, nil
}

// Validate checks a bearer token with a minimal authenticated query.
// It returns false with the upstream error when the platform rejects the
// token, and false with nil when the response simply carries no user.
func (a *AuthClient) Validate(ctx context.Context, token string) (bool, error) {
	raw, err := a.exec.Do(ctx, opCurrentUser, queryCurrentUser, nil, token)
	if err != nil {
		return false, err
	}

	var data struct {
		Me *struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"me"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return false, domain.NewUpstreamError(opCurrentUser, fmt.Errorf("decode response: %w", err))
	}
	return data.Me != nil, nil
}
