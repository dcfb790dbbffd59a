//go:build !unix

package platform

import (
	"fmt"
	"runtime"
)

var errUnsupported = fmt.Errorf("platform: virtual memory reservation unsupported on GOOS=%s", runtime.GOOS)

func reserve(uintptr) ([]byte, error) { return nil, errUnsupported }
func commit([]byte) error             { return errUnsupported }
func release([]byte) error            { return errUnsupported }
