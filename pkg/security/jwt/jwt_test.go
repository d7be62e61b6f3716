package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruitment/pkg/auth"
)

func TestGenerateVerify(t *testing.T) {
	gen := NewGenerator(testSecret, testIssuer, time.Minute)
	user := auth.User{ID: uuid.New(), Role: auth.RoleRecruiter}

	tok, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	claims, err := Verify(tok, []byte(testSecret), testIssuer)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	actor, err := claims.Actor()
	require.NoError(t, err)
	assert.Equal(t, auth.Actor{ID: user.ID, Role: auth.RoleRecruiter}, actor)

	// empty issuer skips the issuer check
	_, err = Verify(tok, []byte(testSecret), "")
	assert.NoError(t, err)
}

func TestClaimsActor_Rejects(t *testing.T) {
	_, err := Claims{Role: "RECRUITER"}.Actor()
	assert.ErrorIs(t, err, ErrInvalidToken)

	c := Claims{Role: "JANITOR"}
	c.Subject = uuid.NewString()
	_, err = c.Actor()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
