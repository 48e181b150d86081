package repository

import (
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

// newMockDB создает pgxmock-пул и проверяет ожидания по завершении теста
func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

// sqlFragments собирает регулярное выражение из фрагментов SQL в заданном порядке
func sqlFragments(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = regexp.QuoteMeta(p)
	}
	expr := quoted[0]
	for _, q := range quoted[1:] {
		expr += ".*" + q
	}
	return expr
}
