package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{"no arguments", nil, options{}, false},
		{"help", []string{"-h"}, options{help: true}, false},
		{"quiet", []string{"-q"}, options{quiet: true}, false},
		{"unknown flag", []string{"-x"}, options{}, true},
		{"bare word", []string{"foo"}, options{}, true},
		{"two flags", []string{"-q", "-h"}, options{}, true},
		{"repeated flag", []string{"-q", "-q"}, options{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := parseArgs(tc.args)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, opts)
		})
	}
}

func TestUsage(t *testing.T) {
	var sb strings.Builder
	usage(&sb, "canaryscan")
	out := sb.String()
	assert.Contains(t, out, "Usage: canaryscan")
	assert.Contains(t, out, "-q")
	assert.Contains(t, out, "-h")
}
