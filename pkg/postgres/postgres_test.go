package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://u:p@localhost:5432/sos?sslmode=disable", want: "pgx5://u:p@localhost:5432/sos?sslmode=disable"},
		{in: "postgresql://u:p@db/sos", want: "pgx5://u:p@db/sos"},
		{in: "pgx5://u:p@db/sos", want: "pgx5://u:p@db/sos"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MigrationURL(tt.in))
	}
}
