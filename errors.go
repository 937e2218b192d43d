// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import "github.com/pkg/errors"

// ErrIndexTooNarrow is returned by SAIS when the text's length does not fit
// the chosen index width I. Build recovers by retrying with the next wider
// width; SAIS itself never panics or silently truncates.
var ErrIndexTooNarrow = errors.New("suffixarray: text length does not fit index width")

// ErrAllocationFailure names the failure to allocate an auxiliary buffer
// required by SA-IS. In a Go process running out of memory is a fatal
// runtime error rather than a recoverable one, and no function in this
// package returns ErrAllocationFailure; Build's retry ladder in build.go
// checks for it and treats it as a reason to try the next wider width.
var ErrAllocationFailure = errors.New("suffixarray: auxiliary allocation failed")
