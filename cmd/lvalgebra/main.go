// SPDX-License-Identifier: MIT

// Command lvalgebra reads a matrix and runs one exact operation on it.
//
// Input is one row per line, entries separated by whitespace. Entries are
// integers, fractions "p/q" or decimals "-1.25". Blank lines and lines
// starting with '#' are skipped.
//
// Usage:
//
//	lvalgebra -op det -in a.txt
//	lvalgebra -op inverse -field finite -modulus 29 < key.txt
//	lvalgebra -op mul -in a.txt -rhs b.txt -precision 4
//	lvalgebra -op pow -power 90 -field finite -modulus 1000000007 < fib.txt
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/finite"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/rational"
)

var log = logging.Logger("lvalgebra")

var (
	errUsage        = errors.New("lvalgebra: usage")
	errUnknownOp    = errors.New("lvalgebra: unknown operation")
	errUnknownField = errors.New("lvalgebra: unknown field")
	errModulus      = errors.New("lvalgebra: unsupported modulus")
	errEmptyInput   = errors.New("lvalgebra: empty matrix input")
)

// config is the parsed command line.
type config struct {
	op        string
	field     string
	modulus   uint64
	precision int
	in        string
	rhs       string
	power     uint64
	leaf      int
	logLevel  string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	level, err := logging.LevelFromString(cfg.logLevel)
	if err != nil {
		log.Warnf("invalid log level %q, using info", cfg.logLevel)
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	switch cfg.field {
	case "rational", "q":
		format := func(r rational.Rational) string { return r.String() }
		if cfg.precision >= 0 {
			format = func(r rational.Rational) string { return r.Decimal(uint(cfg.precision)) }
		}
		return execute(cfg, rational.Parse, format, stdin, stdout)
	case "finite", "gf":
		runner, ok := finiteRunners[cfg.modulus]
		if !ok {
			return fmt.Errorf("%w: %d (supported: %s)", errModulus, cfg.modulus, supportedModuli())
		}
		return runner(cfg, stdin, stdout)
	default:
		return fmt.Errorf("%w: %q", errUnknownField, cfg.field)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lvalgebra", flag.ContinueOnError)
	fs.StringVar(&cfg.op, "op", "det", "operation: rank, det, trace, inverse, mul, pow")
	fs.StringVar(&cfg.field, "field", "rational", "element field: rational or finite")
	fs.Uint64Var(&cfg.modulus, "modulus", 1_000_000_007, "prime modulus for -field finite")
	fs.IntVar(&cfg.precision, "precision", -1, "print rationals as decimals truncated to this many digits (-1 prints p/q)")
	fs.StringVar(&cfg.in, "in", "", "matrix file (default stdin)")
	fs.StringVar(&cfg.rhs, "rhs", "", "right-hand matrix file for -op mul")
	fs.Uint64Var(&cfg.power, "power", 2, "exponent for -op pow")
	fs.IntVar(&cfg.leaf, "leaf", matrix.DefaultLeafSize, "block multiplication leaf size")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}
	if cfg.leaf < 1 {
		return cfg, fmt.Errorf("%w: -leaf must be >= 1, got %d", errUsage, cfg.leaf)
	}
	if cfg.op == "mul" && cfg.rhs == "" {
		return cfg, fmt.Errorf("%w: -op mul needs -rhs", errUsage)
	}

	return cfg, nil
}

// finiteRunners maps each predefined prime modulus to its instantiation.
var finiteRunners = map[uint64]func(config, io.Reader, io.Writer) error{
	2:             runFinite[finite.Mod2],
	3:             runFinite[finite.Mod3],
	5:             runFinite[finite.Mod5],
	7:             runFinite[finite.Mod7],
	11:            runFinite[finite.Mod11],
	13:            runFinite[finite.Mod13],
	29:            runFinite[finite.Mod29],
	97:            runFinite[finite.Mod97],
	101:           runFinite[finite.Mod101],
	998_244_353:   runFinite[finite.Mod998244353],
	1_000_000_007: runFinite[finite.Mod1e9p7],
	1_000_000_009: runFinite[finite.Mod1e9p9],
	1<<61 - 1:     runFinite[finite.Mod2p61m1],
}

func runFinite[M finite.Modulus](cfg config, stdin io.Reader, stdout io.Writer) error {
	format := func(e finite.Element[M]) string { return e.String() }

	return execute(cfg, finite.Parse[M], format, stdin, stdout)
}

func supportedModuli() string {
	mods := make([]uint64, 0, len(finiteRunners))
	for m := range finiteRunners {
		mods = append(mods, m)
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i] < mods[j] })
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = fmt.Sprint(m)
	}

	return strings.Join(parts, ", ")
}

// execute reads the operand(s), runs cfg.op and prints the result.
func execute[T field.Field[T]](
	cfg config,
	parse func(string) (T, error),
	format func(T) string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	a, err := loadMatrix(cfg.in, stdin, parse)
	if err != nil {
		return err
	}
	log.Debugf("%s on %dx%d over %s", cfg.op, a.Rows(), a.Cols(), cfg.field)

	switch cfg.op {
	case "rank":
		r, err := a.Rank()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, r)
		return err
	case "det":
		d, err := a.Determinant()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, format(d))
		return err
	case "trace":
		tr, err := a.Trace()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, format(tr))
		return err
	case "inverse":
		inv, err := a.Inverse()
		if err != nil {
			return err
		}
		return writeMatrix(stdout, inv, format)
	case "mul":
		b, err := loadMatrix(cfg.rhs, nil, parse)
		if err != nil {
			return err
		}
		c, err := matrix.Mul(a, b, matrix.WithLeafSize(cfg.leaf))
		if err != nil {
			return err
		}
		return writeMatrix(stdout, c, format)
	case "pow":
		p, err := a.Pow(cfg.power, matrix.WithLeafSize(cfg.leaf))
		if err != nil {
			return err
		}
		return writeMatrix(stdout, p, format)
	default:
		return fmt.Errorf("%w: %q", errUnknownOp, cfg.op)
	}
}

// loadMatrix reads from path, or from stdin when path is empty.
func loadMatrix[T field.Field[T]](path string, stdin io.Reader, parse func(string) (T, error)) (*matrix.Dense[T], error) {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return readMatrix(r, parse)
}

func readMatrix[T field.Field[T]](r io.Reader, parse func(string) (T, error)) (*matrix.Dense[T], error) {
	var rows [][]T
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]T, len(fields))
		for j, tok := range fields {
			v, err := parse(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d, entry %d: %w", line, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errEmptyInput
	}

	return matrix.FromRows(rows)
}

// writeMatrix prints m in the input format, so output can be fed back in.
func writeMatrix[T field.Field[T]](w io.Writer, m *matrix.Dense[T], format func(T) string) error {
	bw := bufio.NewWriter(w)
	parts := make([]string, m.Cols())
	for _, row := range m.ToRows() {
		for j, v := range row {
			parts[j] = format(v)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}
