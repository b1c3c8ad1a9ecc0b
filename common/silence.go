package common

import (
	"os"
	"sync"
)

// SilenceStdout redirects os.Stdout to the null device and returns a
// restore function. The underlying HTTP client machinery must not be able
// to leak anything onto stdout while queue queries run, since the probe's
// contract is exactly one status line per invocation.
//
// The restore function is idempotent and safe to defer, so the original
// stream comes back on every exit path, panics included.
func SilenceStdout() (func(), error) {
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}

	orig := os.Stdout
	os.Stdout = devnull

	var once sync.Once
	restore := func() {
		once.Do(func() {
			os.Stdout = orig
			devnull.Close()
		})
	}
	return restore, nil
}
