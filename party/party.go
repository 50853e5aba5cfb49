package party

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/judgeflow/flow"
	"github.com/katalvlaran/judgeflow/threshold"
)

// Preference symbols.
const (
	Like    = 'Y'
	Dislike = 'N'
)

// Node layers of the network, each n nodes wide, followed by source and sink.
const (
	boysLayer = iota
	boysDislikeLayer
	girlsDislikeLayer
	girlsLayer
	layers
)

var (
	// ErrBadPreferences is returned for a matrix that is not n×n over {Y, N}.
	ErrBadPreferences = errors.New("party: preferences must be an n×n matrix of Y/N")
	// ErrNegativeTolerance is returned when k < 0.
	ErrNegativeTolerance = errors.New("party: tolerance must be non-negative")
)

// Party is a parsed instance. It is read-only once built, so one Party can
// serve any number of Network calls.
type Party struct {
	likes     [][]bool
	tolerance int64
}

// New validates preferences (row = boy, column = girl) and tolerance k.
func New(preferences []string, tolerance int) (*Party, error) {
	if tolerance < 0 {
		return nil, ErrNegativeTolerance
	}
	n := len(preferences)
	likes := make([][]bool, n)
	for boy, row := range preferences {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d symbols, want %d", ErrBadPreferences, boy, len(row), n)
		}
		likes[boy] = make([]bool, n)
		for girl := 0; girl < n; girl++ {
			switch row[girl] {
			case Like:
				likes[boy][girl] = true
			case Dislike:
			default:
				return nil, fmt.Errorf("%w: symbol %q at (%d,%d)", ErrBadPreferences, row[girl], boy, girl)
			}
		}
	}

	return &Party{likes: likes, tolerance: int64(tolerance)}, nil
}

// Couples returns n, the number of boys (and girls).
func (p *Party) Couples() int {
	return len(p.likes)
}

func (p *Party) node(layer, i int) int { return layer*len(p.likes) + i }
func (p *Party) source() int           { return layers * len(p.likes) }
func (p *Party) sink() int             { return layers*len(p.likes) + 1 }

// Network builds the flow network for a trial of rounds rounds.
// It panics on an empty party, which Rounds never asks for.
func (p *Party) Network(rounds int) flow.Network {
	n := len(p.likes)
	net, err := flow.NewMatrixNetwork(layers*n+2, p.source(), p.sink())
	if err != nil {
		panic(err)
	}

	for boy := 0; boy < n; boy++ {
		for girl := 0; girl < n; girl++ {
			if p.likes[boy][girl] {
				net.SetCapacity(p.node(boysLayer, boy), p.node(girlsLayer, girl), 1)
			} else {
				net.SetCapacity(p.node(boysDislikeLayer, boy), p.node(girlsDislikeLayer, girl), 1)
			}
		}
	}
	for i := 0; i < n; i++ {
		net.SetCapacity(p.node(boysLayer, i), p.node(boysDislikeLayer, i), p.tolerance)
		net.SetCapacity(p.node(girlsDislikeLayer, i), p.node(girlsLayer, i), p.tolerance)
		net.SetCapacity(p.source(), p.node(boysLayer, i), int64(rounds))
		net.SetCapacity(p.node(girlsLayer, i), p.sink(), int64(rounds))
	}

	return net
}

// Rounds returns the maximum number of rounds the party can last.
// Every instance admits zero rounds, so the search always succeeds.
func (p *Party) Rounds(opts ...Option) int {
	o := newOptions(opts)
	n := p.Couples()
	if n == 0 {
		return 0
	}

	saturated := threshold.Saturates(p, func(rounds int) int64 {
		return int64(n) * int64(rounds)
	}, o.flowOpts...)
	rounds, ok := threshold.FindThreshold(0, n, func(r int) bool {
		return !saturated(r)
	}, o.searchOpts...)
	if !ok {
		// r = 0 is always saturated; unreachable for a valid Party
		return 0
	}

	return rounds
}
