package parking

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/judgeflow/judge"
	"github.com/katalvlaran/judgeflow/threshold"
)

// Problem reads parking maps until end of input and prints one answer per
// map: the least time, 0 without cars, -1 when impossible.
type Problem struct {
	log *zap.Logger
}

// NewProblem returns the judge.Problem for parking.
func NewProblem(log *zap.Logger) *Problem {
	if log == nil {
		log = zap.NewNop()
	}
	return &Problem{log: log.Named("parking")}
}

// Name implements judge.Problem.
func (*Problem) Name() string { return "parking" }

// Solve implements judge.Problem.
func (pr *Problem) Solve(in io.Reader, out io.Writer) error {
	sc := judge.NewScanner(in)
	for instance := 1; sc.More(); instance++ {
		lot, err := Read(sc)
		if err != nil {
			return fmt.Errorf("instance %d: %w", instance, err)
		}

		answer, ok := lot.Time(WithLogger(pr.log))
		if !ok {
			answer = threshold.NoThreshold
		}
		pr.log.Info("solved",
			zap.Int("instance", instance),
			zap.Int("cars", lot.Cars()),
			zap.Int("slots", lot.Slots()),
			zap.Int("time", answer),
		)
		if _, err := fmt.Fprintln(out, answer); err != nil {
			return err
		}
	}

	return nil
}

// Read parses "R C" followed by R map rows of C symbols.
func Read(sc *judge.Scanner) (*Lot, error) {
	r, err := sc.Int()
	if err != nil {
		return nil, fmt.Errorf("parking: rows: %w", err)
	}
	c, err := sc.Int()
	if err != nil {
		return nil, fmt.Errorf("parking: columns: %w", err)
	}
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("parking: %w: %d×%d map", judge.ErrMalformedInput, r, c)
	}
	rows := make([]string, r)
	for i := range rows {
		if rows[i], err = sc.Word(); err != nil {
			return nil, fmt.Errorf("parking: row %d: %w", i, err)
		}
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%w: row %d has %d symbols, want %d", ErrBadMap, i, len(rows[i]), c)
		}
	}

	return New(rows)
}
