package testx

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
)

// RunningUnderTest reports whether the process was started by `go test`,
// either because testing registered its -test.* flags or because the
// binary carries the .test suffix.
func RunningUnderTest() bool {
	if flag.Lookup("test.v") != nil || flag.Lookup("test.run") != nil || flag.Lookup("test.short") != nil {
		return true
	}
	name := filepath.Base(os.Args[0])
	return strings.HasSuffix(name, ".test") || strings.Contains(name, ".test")
}
