// Package window shows rendered charts in a desktop window, standing in for the interactive
// display of plotting tools.
//
// The window uses GTK, and it is only compiled with the "gtk" build tag, since it requires the
// GTK development libraries:
//
//	go build -tags gtk ./cmd/...
//
// Without it, Available returns false and Show returns ErrUnavailable.
package window

import "github.com/pkg/errors"

// ErrUnavailable is returned by Show when the program was built without GTK support.
var ErrUnavailable = errors.New("window display not available, build with -tags gtk")
