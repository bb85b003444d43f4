package kindred

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ski-stay/ski-stay-search/internal/domain"
)

func TestAuthClientSendOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := domain.NewMockGraphQLExecutor(ctrl)

	exec.EXPECT().
		Do(gomock.Any(), opSendOTP, mutationSendOTP,
			map[string]interface{}{"email": "user@example.com", "path": "/explore"}, "").
		Return(json.RawMessage(`{"startEmailLoginUser":{"mode":"OTP","length":6}}`), nil)

	challenge, err := NewAuthClient(exec).SendOTP(context.Background(), "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, "OTP", challenge.Mode)
	assert.Equal(t, 6, challenge.Length)
}

func TestAuthClientSendOTPUpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := domain.NewMockGraphQLExecutor(ctrl)

	exec.EXPECT().
		Do(gomock.Any(), opSendOTP, gomock.Any(), gomock.Any(), "").
		Return(nil, domain.NewUpstreamError(opSendOTP, errors.New("invalid email")))

	challenge, err := NewAuthClient(exec).SendOTP(context.Background(), "not-an-email")

	assert.Nil(t, challenge)
	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}

func TestAuthClientVerifyOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := domain.NewMockGraphQLExecutor(ctrl)

	exec.EXPECT().
		Do(gomock.Any(), opVerifyOTP, mutationVerifyOTP,
			map[string]interface{}{"deviceId": nil, "email": "user@example.com", "emailToken": "123456"}, "").
		Return(json.RawMessage(`{"finishEmailLoginUser":{"accessToken":"at-1","refreshToken":"rt-1"}}`), nil)

	creds, err := NewAuthClient(exec).VerifyOTP(context.Background(), "user@example.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, "at-1", creds.AccessToken)
	assert.Equal(t, "rt-1", creds.RefreshToken)
}

func TestAuthClientVerifyOTPEmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := domain.NewMockGraphQLExecutor(ctrl)

	exec.EXPECT().
		Do(gomock.Any(), opVerifyOTP, gomock.Any(), gomock.Any(), "").
		Return(json.RawMessage(`{"finishEmailLoginUser":{"accessToken":"","refreshToken":""}}`), nil)

	creds, err := NewAuthClient(exec).VerifyOTP(context.Background(), "user@example.com", "000000")

	assert.Nil(t, creds)
	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
	assert.Contains(t, err.Error(), "no access token")
}

func TestAuthClientValidate(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		execErr   error
		wantValid bool
		wantErr   bool
	}{
		{
			name:      "valid token returns the current user",
			data:      `{"me":{"id":"u1","email":"user@example.com"}}`,
			wantValid: true,
		},
		{
			name:      "null user means invalid",
			data:      `{"me":null}`,
			wantValid: false,
		},
		{
			name:    "upstream rejection propagates",
			execErr: domain.NewUpstreamError(opCurrentUser, errors.New("unauthorized")),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			exec := domain.NewMockGraphQLExecutor(ctrl)

			var raw json.RawMessage
			if tt.data != "" {
				raw = json.RawMessage(tt.data)
			}
			exec.EXPECT().
				Do(gomock.Any(), opCurrentUser, queryCurrentUser, gomock.Nil(), "token-abc").
				Return(raw, tt.execErr)

			valid, err := NewAuthClient(exec).Validate(context.Background(), "token-abc")

			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, valid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, valid)
		})
	}
}
