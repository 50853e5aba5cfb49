package party

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/judgeflow/judge"
)

// Problem reads one party instance and prints the maximum number of rounds.
type Problem struct {
	log *zap.Logger
}

// NewProblem returns the judge.Problem for the dancing party.
func NewProblem(log *zap.Logger) *Problem {
	if log == nil {
		log = zap.NewNop()
	}
	return &Problem{log: log.Named("party")}
}

// Name implements judge.Problem.
func (*Problem) Name() string { return "party" }

// Solve implements judge.Problem.
func (pr *Problem) Solve(in io.Reader, out io.Writer) error {
	sc := judge.NewScanner(in)
	p, err := Read(sc)
	if err != nil {
		return err
	}

	rounds := p.Rounds(WithLogger(pr.log))
	pr.log.Info("solved", zap.Int("couples", p.Couples()), zap.Int("rounds", rounds))
	_, err = fmt.Fprintln(out, rounds)
	return err
}

// Read parses "n k" followed by n preference words.
func Read(sc *judge.Scanner) (*Party, error) {
	n, err := sc.Int()
	if err != nil {
		return nil, fmt.Errorf("party: couples: %w", err)
	}
	k, err := sc.Int()
	if err != nil {
		return nil, fmt.Errorf("party: tolerance: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("party: couples: %w: %d", judge.ErrMalformedInput, n)
	}
	rows := make([]string, n)
	for i := range rows {
		if rows[i], err = sc.Word(); err != nil {
			return nil, fmt.Errorf("party: row %d: %w", i, err)
		}
	}

	return New(rows, k)
}
