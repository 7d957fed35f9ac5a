package packages_get

import "errors"

var errInvalidQuery = errors.New("invalid query parameter")
