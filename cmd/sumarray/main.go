// Command sumarray sums a few fixed sample arrays, using both the per-type and the generic reducers, and prints the
// totals on a single line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/couchbase/tools-sum/errors/definitions"
	"github.com/couchbase/tools-sum/functional/slices"
	"github.com/couchbase/tools-sum/internal/config"
	"github.com/couchbase/tools-sum/internal/report"
	"github.com/couchbase/tools-sum/log"
	"github.com/couchbase/tools-sum/slice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.SetLogger(log.NewWriterLogger(os.Stderr, cfg.LogLevel))

	if err := run(os.Stdout, cfg.Format); err != nil {
		log.Errorf("(sumarray) %v", err)
		os.Exit(1)
	}
}

// run sums the sample arrays and writes the result to w.
func run(w io.Writer, format report.Format) error {
	var (
		ints    = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		doubles = [3]float64{1.0, 2.0, 3.1}
		tokens  = [3]string{"a", "b", "c"}
	)

	result, err := sum(ints[:], doubles[:], tokens[:])
	if err != nil {
		return err
	}

	log.Debugf("(sumarray) Summed %d ints, %d doubles and %d strings", len(ints), len(doubles), len(tokens))

	if err := report.Write(w, format, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

// sum reduces each of the given samples, the ints and doubles are reduced by both the generic and the per-type
// functions which must agree.
func sum(ints []int, doubles []float64, tokens []string) (report.Result, error) {
	var (
		result report.Result
		errs   = definitions.MultiError{Prefix: "failed to sum samples: "}
		err    error
	)

	if result.Ints, err = slices.SumN(ints, len(ints)); err != nil {
		errs.Add(fmt.Errorf("ints: %w", err))
	} else if plain := slice.SumInt(ints); plain != result.Ints {
		errs.Add(fmt.Errorf("ints: generic sum %d does not match %d", result.Ints, plain))
	}

	if result.Doubles, err = slices.SumN(doubles, len(doubles)); err != nil {
		errs.Add(fmt.Errorf("doubles: %w", err))
	} else if plain := slice.SumFloat64(doubles); plain != result.Doubles {
		errs.Add(fmt.Errorf("doubles: generic sum %g does not match %g", result.Doubles, plain))
	}

	if result.Strings, err = slices.SumN(tokens, len(tokens)); err != nil {
		errs.Add(fmt.Errorf("strings: %w", err))
	}

	log.Tracef("(sumarray) ints=%d doubles=%v strings=%q", result.Ints, result.Doubles, result.Strings)

	return result, errs.ErrOrNil()
}
