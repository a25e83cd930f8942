package dsn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		name   string
		raw    string
		scheme string
		host   string
		path   string
		err    error
	}{
		{
			name:   "SchemeHostPath",
			raw:    "postgres://localhost:5432/app",
			scheme: "postgres",
			host:   "localhost:5432",
			path:   "/app",
		},
		{
			name:   "QueryParamsKept",
			raw:    "mysql://db.example.com/app?charset=utf8",
			scheme: "mysql",
			host:   "db.example.com",
			path:   "/app",
		},
		{
			name: "MissingScheme",
			raw:  "//localhost:5432/app",
			err:  ErrSchemeRequired,
		},
		{
			name: "Empty",
			raw:  "",
			err:  ErrSchemeRequired,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := Parse(tt.raw)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.scheme, uri.Scheme)
			require.Equal(t, tt.host, uri.Host)
			require.Equal(t, tt.path, uri.Path)
		})
	}
}
