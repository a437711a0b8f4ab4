// Package mid provides app level middleware support.
package mid

import (
	"github.com/jrazmi/todoview/infrastructure/web"
)

// isError returns the error carried by e, if any.
func isError(e web.Encoder) error {
	if err, ok := e.(error); ok {
		return err
	}
	return nil
}
