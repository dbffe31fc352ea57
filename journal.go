package taxlot

import (
	"iter"
	"time"
)

// event is a single, immutable change of the inventory.
type event interface {
	when() time.Time
}

// acquireLot opens a lot.
type acquireLot struct {
	at  time.Time
	lot Lot // as acquired, Remaining == Quantity
}

func (e acquireLot) when() time.Time { return e.at }

// consumeLot takes a quantity out of a lot.
type consumeLot struct {
	at       time.Time
	seq      int // lot identifier
	asset    string
	txID     string // the disposal
	quantity Quantity
	cost     Money // cost basis of quantity
}

func (e consumeLot) when() time.Time { return e.at }

// Journal is the append-only, chronological record of every lot creation and
// consumption of a processing run. It is the source of point-in-time snapshots.
type Journal struct {
	events []event // sorted by time
}

// append records e. Events must be appended in chronological order.
func (j *Journal) append(e event) {
	j.events = append(j.events, e)
}

// Len returns the number of recorded events.
func (j *Journal) Len() int { return len(j.events) }

// until returns an iterator over journal events up to and including at.
func (j *Journal) until(at time.Time) iter.Seq[event] {
	return func(yield func(event) bool) {
		for _, e := range j.events {
			if e.when().After(at) {
				break
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Snapshot replays the journal up to and including at.
func (j *Journal) Snapshot(at time.Time) *Snapshot {
	lots := make(map[int]*Lot)
	for e := range j.until(at) {
		switch v := e.(type) {
		case acquireLot:
			l := v.lot
			lots[l.seq] = &l
		case consumeLot:
			if l, ok := lots[v.seq]; ok {
				l.Remaining = l.Remaining.Sub(v.quantity)
				l.cost = l.cost.Sub(v.cost)
			}
		}
	}
	return newSnapshot(at, lots)
}
