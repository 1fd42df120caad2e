package gormlog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortCaller(t *testing.T) {
	tests := map[string]string{
		"":                                   "",
		"/home/ci/repo/internal/app/x.go:38": "internal/app/x.go:38",
		"/opt/build/pkg/config/config.go:12": "pkg/config/config.go:12",
		"/a/b/c/d.go:1":                      "b/c/d.go:1",
		"/x.go:9":                            "x.go:9",
	}
	for in, want := range tests {
		require.Equal(t, want, shortCaller(in), in)
	}
}
