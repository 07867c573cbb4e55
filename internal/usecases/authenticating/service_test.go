package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

func TestService_GenerateAndValidate(t *testing.T) {
	service := NewService("segredo-de-teste")

	token, err := service.GenerateToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Name)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestService_ValidateToken(t *testing.T) {
	issuedAt := time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)

	signer := &Service{secretKey: []byte("segredo-de-teste"), now: func() time.Time { return issuedAt }}
	token, err := signer.GenerateToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		service *Service
		token   string
		wantErr error
	}{
		{
			name:    "Token dentro da validade",
			service: &Service{secretKey: []byte("segredo-de-teste"), now: func() time.Time { return issuedAt.Add(30 * time.Minute) }},
			token:   token,
		},
		{
			name:    "Token expirado",
			service: &Service{secretKey: []byte("segredo-de-teste"), now: func() time.Time { return issuedAt.Add(2 * time.Hour) }},
			token:   token,
			wantErr: ErrExpiredToken,
		},
		{
			name:    "Segredo diferente",
			service: &Service{secretKey: []byte("outro"), now: func() time.Time { return issuedAt }},
			token:   token,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Token malformado",
			service: &Service{secretKey: []byte("segredo-de-teste"), now: func() time.Time { return issuedAt }},
			token:   "nao-e-um-jwt",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.service.ValidateToken(tt.token)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ops", claims.Name)
		})
	}
}

func TestService_GenerateToken_Errors(t *testing.T) {
	_, err := NewService("").GenerateToken("ops", domain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecretKey)

	_, err = NewService("segredo").GenerateToken("  ", domain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSubject)
}
