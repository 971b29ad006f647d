package loop

import (
	"testing"

	"github.com/milk9111/combobreaker/combat"
	"github.com/milk9111/combobreaker/flow"
)

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) {
	*r.log = append(*r.log, r.name)
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"a", &log}, nil, recordSystem{"b", &log})
	s.Add(recordSystem{"c", &log})
	s.Add(nil)

	s.Update(NewWorld(nil))
	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Fatalf("order = %v", log)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue[combat.CueID]
	if q.Drain() != nil {
		t.Fatalf("empty queue should drain nil")
	}
	q.Push(combat.CueClash)
	q.Push(combat.CueAdvantage)
	got := q.Drain()
	if len(got) != 2 || got[0] != combat.CueClash || q.Len() != 0 {
		t.Fatalf("drain = %v, len = %d", got, q.Len())
	}

	var nilQueue *EventQueue[int]
	nilQueue.Push(1)
	if nilQueue.Drain() != nil || nilQueue.Len() != 0 {
		t.Fatalf("nil queue should be inert")
	}
}

func TestWorldReset(t *testing.T) {
	w := NewWorld(flow.NewMachine(flow.DefaultConfig()))
	w.Selections.Push(flow.Selection{Player: combat.One})
	w.Cues.Push(combat.CueClash)
	w.SetNotices([]flow.Notice{{Kind: flow.NoticeMatchOver}})

	w.Reset()
	if w.Selections.Len() != 0 || w.Cues.Len() != 0 || len(w.Notices()) != 0 {
		t.Fatalf("reset should clear queues and notices")
	}
}
