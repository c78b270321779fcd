package testutils

import (
	"os"
	"testing"
)

// Chdir changes the working directory to dir for the duration of the test
// and restores it on cleanup. Equivalent to testing.T.Chdir (Go 1.24+).
func Chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	// t.Setenv refuses parallel tests, matching testing.T.Chdir.
	t.Setenv("PWD", dir)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testutils.Chdir: restoring working directory: " + err.Error())
		}
	})
}
