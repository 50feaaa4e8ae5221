package testutil

import (
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// ListDir returns the sorted entry names of dir.
func ListDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// AssertDirEmpty fails the test if dir has any entries left.
func AssertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	require.Empty(t, ListDir(t, dir), "expected %s to be empty", dir)
}

// AudioPayload returns n bytes of fake audio data.
func AudioPayload(n int) []byte {
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = byte('a' + i%26)
	}
	return payload
}
