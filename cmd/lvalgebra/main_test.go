package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgebra/finite"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/rational"
)

func runString(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, strings.NewReader(input), &out)

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRunOperations(t *testing.T) {
	cases := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"rank", "1 2\n2 4\n", []string{"-op", "rank"}, "1\n"},
		{"det", "2 -3 1\n2 0 -1\n1 4 5\n", []string{"-op", "det"}, "49\n"},
		{"det fractions", "1/2 0\n0 2/3\n", []string{"-op", "det"}, "1/3\n"},
		{"trace decimal", "0.5 7\n1 -1.25\n", []string{"-op", "trace"}, "-3/4\n"},
		{"inverse", "2 0\n0 2\n", []string{"-op", "inverse"}, "1/2 0\n0 1/2\n"},
		{"inverse precision", "3 0\n0 -3\n", []string{"-op", "inverse", "-precision", "3"}, "0.333 0.000\n0.000 -0.333\n"},
		{"comments and blanks", "# key\n\n1 1\n0 1\n", []string{"-op", "pow", "-power", "3"}, "1 3\n0 1\n"},
		{"finite inverse", "1 2\n3 4\n", []string{"-op", "inverse", "-field", "finite", "-modulus", "7"}, "5 1\n5 3\n"},
		{"finite fractions", "1/2\n", []string{"-op", "trace", "-field", "finite", "-modulus", "7"}, "4\n"},
		{"fibonacci", "1 1\n1 0\n", []string{"-op", "pow", "-power", "10", "-field", "finite"}, "89 55\n55 34\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runString(t, tc.input, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRunMulFromFiles(t *testing.T) {
	lhs := writeFile(t, "a.txt", "1 2 3\n4 5 6\n")
	rhs := writeFile(t, "b.txt", "7 8\n9 10\n11 12\n")
	for _, leaf := range []string{"1", "2", "64"} {
		got, err := runString(t, "", "-op", "mul", "-in", lhs, "-rhs", rhs, "-leaf", leaf)
		require.NoError(t, err)
		require.Equal(t, "58 64\n139 154\n", got)
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		args  []string
		want  error
	}{
		{"degenerate", "1 2\n2 4\n", []string{"-op", "inverse"}, matrix.ErrDegenerate},
		{"non-square", "1 2 3\n", []string{"-op", "det"}, matrix.ErrNonSquare},
		{"ragged", "1 2\n3\n", []string{"-op", "rank"}, matrix.ErrRaggedRows},
		{"malformed entry", "1 x\n", []string{"-op", "rank"}, rational.ErrMalformed},
		{"malformed finite", "1 x\n", []string{"-op", "rank", "-field", "finite"}, finite.ErrMalformed},
		{"empty", "\n# nothing\n", []string{"-op", "rank"}, errEmptyInput},
		{"unknown op", "1\n", []string{"-op", "solve"}, errUnknownOp},
		{"unknown field", "1\n", []string{"-field", "real"}, errUnknownField},
		{"composite modulus", "1\n", []string{"-field", "finite", "-modulus", "4"}, errModulus},
		{"mul without rhs", "1\n", []string{"-op", "mul"}, errUsage},
		{"bad leaf", "1\n", []string{"-leaf", "0"}, errUsage},
		{"bad flag", "1\n", []string{"-nope"}, errUsage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runString(t, tc.input, tc.args...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := runString(t, "", "-op", "rank", "-in", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunBadLogLevelFallsBack(t *testing.T) {
	got, err := runString(t, "4\n", "-op", "det", "-log-level", "loud")
	require.NoError(t, err)
	require.Equal(t, "4\n", got)
}

func TestSupportedModuliSorted(t *testing.T) {
	s := supportedModuli()
	require.True(t, strings.HasPrefix(s, "2, 3, 5, 7"), s)
	require.True(t, strings.HasSuffix(s, "2305843009213693951"), s)
}
