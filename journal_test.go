package redox

import (
	"errors"
	"testing"
)

func TestJournal_NilSafe(t *testing.T) {
	var j *journal

	// All operations should be safe on nil
	j.push(DispatchRecord{Action: Action{Type: "X"}})

	if j.all() != nil {
		t.Error("expected nil from nil journal")
	}
}

func TestJournal_ZeroSize(t *testing.T) {
	if j := newJournal(0); j != nil {
		t.Error("expected nil journal for size 0")
	}
}

func TestJournal_NegativeSize(t *testing.T) {
	if j := newJournal(-1); j != nil {
		t.Error("expected nil journal for negative size")
	}
}

func TestJournal_SingleRecord(t *testing.T) {
	j := newJournal(3)

	j.push(DispatchRecord{Action: Action{Type: "A"}})

	recs := j.all()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Action.Type != "A" {
		t.Errorf("expected A, got %s", recs[0].Action.Type)
	}
}

func TestJournal_FillsWithoutWrapping(t *testing.T) {
	j := newJournal(3)

	j.push(DispatchRecord{Action: Action{Type: "A"}})
	j.push(DispatchRecord{Action: Action{Type: "B"}})
	j.push(DispatchRecord{Action: Action{Type: "C"}})

	recs := j.all()
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}

	// Oldest first
	if recs[0].Action.Type != "A" || recs[1].Action.Type != "B" || recs[2].Action.Type != "C" {
		t.Errorf("expected [A B C], got [%s %s %s]",
			recs[0].Action.Type, recs[1].Action.Type, recs[2].Action.Type)
	}
}

func TestJournal_WrapsAndEvictsOldest(t *testing.T) {
	j := newJournal(3)

	j.push(DispatchRecord{Action: Action{Type: "A"}})
	j.push(DispatchRecord{Action: Action{Type: "B"}})
	j.push(DispatchRecord{Action: Action{Type: "C"}})
	j.push(DispatchRecord{Action: Action{Type: "D"}}) // Should evict A

	recs := j.all()
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Action.Type != "B" || recs[1].Action.Type != "C" || recs[2].Action.Type != "D" {
		t.Errorf("expected [B C D], got [%s %s %s]",
			recs[0].Action.Type, recs[1].Action.Type, recs[2].Action.Type)
	}
}

func TestJournal_MultipleWraps(t *testing.T) {
	j := newJournal(2)

	for i := 0; i < 10; i++ {
		j.push(DispatchRecord{Action: Action{Type: "X"}})
	}

	recs := j.all()
	if len(recs) != 2 {
		t.Errorf("expected 2 records after multiple wraps, got %d", len(recs))
	}
}

func TestJournal_EmptyAll(t *testing.T) {
	j := newJournal(3)

	if recs := j.all(); recs != nil {
		t.Errorf("expected nil for empty journal, got %v", recs)
	}
}

func TestJournal_RetainsError(t *testing.T) {
	j := newJournal(2)

	j.push(DispatchRecord{Action: Action{Type: "A"}, Err: errors.New("rejected")})

	recs := j.all()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Err == nil || recs[0].Err.Error() != "rejected" {
		t.Errorf("expected 'rejected', got %v", recs[0].Err)
	}
}
