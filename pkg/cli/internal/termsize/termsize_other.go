//go:build !unix && !windows

package termsize

import "errors"

func columns(uintptr) (int, error) {
	return 0, errors.ErrUnsupported
}
