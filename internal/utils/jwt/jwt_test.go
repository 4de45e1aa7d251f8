package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		service   string
		wantErr   bool
	}{
		{
			name:      "Valid token generation",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			service:   "marketplace",
			wantErr:   false,
		},
		{
			name:      "Generate for another service",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			service:   "payment-webhook",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.service)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	service := "marketplace"

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(service)
		require.NoError(t, err)

		parsedService, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, service, parsedService)
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(service)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, err = m2.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("invalid.token.string")
		assert.Error(t, err)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Nanosecond)
		token, err := m.Generate(service)
		require.NoError(t, err)

		// Ждем, чтобы токен истек
		time.Sleep(time.Millisecond * 10)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Multiple services", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)

		token1, err := m.Generate("marketplace")
		require.NoError(t, err)

		token2, err := m.Generate("payment-webhook")
		require.NoError(t, err)

		parsed1, err := m.Validate(token1)
		require.NoError(t, err)
		assert.Equal(t, "marketplace", parsed1)

		parsed2, err := m.Validate(token2)
		require.NoError(t, err)
		assert.Equal(t, "payment-webhook", parsed2)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	// Токен с alg=none отклоняется проверкой метода подписи
	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzZXJ2aWNlIjoibWFya2V0cGxhY2UifQ.")
	assert.Error(t, err)
}
