package parking

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/judgeflow/flow"
	"github.com/katalvlaran/judgeflow/gridgraph"
	"github.com/katalvlaran/judgeflow/threshold"
)

// Map symbols.
const (
	Road = '.'
	Car  = 'C'
	Slot = 'P'
	Wall = 'X'
)

// ErrBadMap is returned for a map with unknown symbols or a wrong shape.
var ErrBadMap = errors.New("parking: malformed map")

// Lot is a parsed parking map reduced to car→slot step distances.
// It is read-only once built.
type Lot struct {
	cars, slots int
	// distance[car][slot] in steps, gridgraph.Unreachable when walled off
	distance    [][]int
	maxDistance int
	// some region holds more cars than slots
	overfull bool
}

// New parses the map rows and runs one BFS per car.
func New(rows []string) (*Lot, error) {
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case Road, Car, Slot, Wall:
			default:
				return nil, fmt.Errorf("%w: symbol %q at row %d column %d", ErrBadMap, row[x], y, x)
			}
		}
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Wall = Wall
	gg, err := gridgraph.NewGridGraph(rows, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMap, err)
	}

	cars, slots := gg.Find(Car), gg.Find(Slot)
	lot := &Lot{
		cars:     len(cars),
		slots:    len(slots),
		distance: make([][]int, len(cars)),
		overfull: overfull(gg),
	}
	for i, cell := range cars {
		dist, err := gg.Distances(cell)
		if err != nil {
			return nil, err
		}
		lot.distance[i] = make([]int, len(slots))
		for j, slot := range slots {
			d := dist[slot]
			lot.distance[i][j] = d
			if d > lot.maxDistance {
				lot.maxDistance = d
			}
		}
	}

	return lot, nil
}

// overfull reports whether some connected region has more cars than slots.
func overfull(gg *gridgraph.GridGraph) bool {
	balance := make(map[int]int)
	for idx, region := range gg.ComponentOf() {
		switch gg.Cell(idx) {
		case Car:
			balance[region]++
		case Slot:
			balance[region]--
		}
	}
	for _, b := range balance {
		if b > 0 {
			return true
		}
	}
	return false
}

// Cars returns the number of cars.
func (l *Lot) Cars() int { return l.cars }

// Slots returns the number of parking slots.
func (l *Lot) Slots() int { return l.slots }

// MaxDistance is the largest finite car→slot distance, 0 if none.
func (l *Lot) MaxDistance() int { return l.maxDistance }

// Distance returns the steps from car to slot, gridgraph.Unreachable if none.
func (l *Lot) Distance(car, slot int) int { return l.distance[car][slot] }

// Network builds the matching network for a trial time limit: a car is
// joined to every slot it reaches within maxDistance steps.
func (l *Lot) Network(maxDistance int) flow.Network {
	source, sink := l.cars+l.slots, l.cars+l.slots+1
	net, err := flow.NewMatrixNetwork(l.cars+l.slots+2, source, sink)
	if err != nil {
		panic(err)
	}

	for car := 0; car < l.cars; car++ {
		net.SetCapacity(source, car, 1)
		for slot, d := range l.distance[car] {
			if d > 0 && d <= maxDistance {
				net.SetCapacity(car, l.cars+slot, 1)
			}
		}
	}
	for slot := 0; slot < l.slots; slot++ {
		net.SetCapacity(l.cars+slot, sink, 1)
	}

	return net
}

// Time returns the least time after which every car is parked.
// ok is false when no assignment exists at any time.
func (l *Lot) Time(opts ...Option) (int, bool) {
	if l.cars == 0 {
		return 0, true
	}
	if l.cars > l.slots || l.overfull {
		return 0, false
	}

	o := newOptions(opts)
	fits := threshold.Saturates(l, func(int) int64 { return int64(l.cars) }, o.flowOpts...)

	return threshold.LeastFeasible(0, l.maxDistance, fits, o.searchOpts...)
}
