package dsn

import (
	"fmt"
	"net/url"

	"github.com/lachlan/crystal-db/internal/xerrors"
)

// ErrSchemeRequired is returned for connection strings without a scheme:
// the scheme is what names the driver.
var ErrSchemeRequired = fmt.Errorf("connection string scheme required")

// Parse parses a connection string into its URI form.
func Parse(raw string) (*url.URL, error) {
	uri, err := url.Parse(raw)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if uri.Scheme == "" {
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: %q", ErrSchemeRequired, raw))
	}

	return uri, nil
}
