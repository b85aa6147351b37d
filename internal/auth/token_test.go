package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travelai/internal/model"
)

func TestFormatLegacyToken(t *testing.T) {
	assert.Equal(t, "token_42_admin", FormatLegacyToken(42, model.RoleAdmin))
	assert.Equal(t, "token_1_user", FormatLegacyToken(1, model.RoleUser))
}

func TestParseLegacyToken(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		expectedID   uint
		expectedRole model.Role
		expectError  bool
	}{
		{
			name:         "valid admin token",
			token:        "token_42_admin",
			expectedID:   42,
			expectedRole: model.RoleAdmin,
		},
		{
			name:         "valid user token",
			token:        "token_7_user",
			expectedID:   7,
			expectedRole: model.RoleUser,
		},
		{
			name:        "missing prefix",
			token:       "sometoken",
			expectError: true,
		},
		{
			name:        "non-numeric id",
			token:       "token_abc_admin",
			expectError: true,
		},
		{
			name:        "negative id",
			token:       "token_-1_admin",
			expectError: true,
		},
		{
			name:        "missing role part",
			token:       "token_42",
			expectError: true,
		},
		{
			name:        "empty token",
			token:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, role, err := ParseLegacyToken(tt.token)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrMalformedToken)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
			assert.Equal(t, tt.expectedRole, role)
		})
	}
}

func TestIsLegacyToken(t *testing.T) {
	assert.True(t, IsLegacyToken("token_1_user"))
	assert.False(t, IsLegacyToken("9f4cdd1c-8f1e-4a0b-a6b7-2f95a1a1a1a1"))
}
