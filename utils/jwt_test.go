package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func TestGenerateAndExtract(t *testing.T) {
	userID := uuid.New()

	access, refresh, err := GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	got, err := ExtractUserID("Bearer " + access)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestExtractUserIDBadHeader(t *testing.T) {
	tests := []string{
		"",
		"Basic abc123",
		"Bearer ",
		"Bearer not.a.token",
	}
	for _, header := range tests {
		_, err := ExtractUserID(header)
		assert.Error(t, err, "header %q", header)
	}
}

func TestRefreshTokens(t *testing.T) {
	userID := uuid.New()

	_, refresh, err := GenerateTokens(userID)
	require.NoError(t, err)

	newAccess, newRefresh, err := RefreshTokens(refresh)
	require.NoError(t, err)

	got, err := ExtractUserID("Bearer " + newAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	got, err = ExtractUserID("Bearer " + newRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestRefreshTokensRejectsGarbage(t *testing.T) {
	_, _, err := RefreshTokens("bukan-token")
	assert.Error(t, err)
}
