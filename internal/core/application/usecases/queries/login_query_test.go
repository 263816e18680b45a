package queries_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"staffing/internal/core/application/usecases/queries"
	"staffing/internal/pkg/errs"
)

func TestNewLoginQuery(t *testing.T) {
	query, err := queries.NewLoginQuery("jane@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.Equal(t, "jane@example.com", query.Email())
}

func TestNewLoginQuery_RequiresCredentials(t *testing.T) {
	_, err := queries.NewLoginQuery("", "secret")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewLoginQuery("jane@example.com", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestLoginQuery_DefaultConstructedIsInvalid(t *testing.T) {
	query := queries.LoginQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrLoginQueryIsNotConstructed)
}
