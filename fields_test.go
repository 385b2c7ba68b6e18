package redox

import (
	"testing"
	"time"
)

func TestKeyChain(t *testing.T) {
	field := KeyChain.Field("before")
	if field.Key().Name() != "chain" {
		t.Errorf("expected key 'chain', got %q", field.Key().Name())
	}
}

func TestKeyIndex(t *testing.T) {
	field := KeyIndex.Field(2)
	if field.Key().Name() != "index" {
		t.Errorf("expected key 'index', got %q", field.Key().Name())
	}
}

func TestKeyActionType(t *testing.T) {
	field := KeyActionType.Field("INCREMENT")
	if field.Key().Name() != "action_type" {
		t.Errorf("expected key 'action_type', got %q", field.Key().Name())
	}
}

func TestKeyError(t *testing.T) {
	field := KeyError.Field("something went wrong")
	if field.Key().Name() != "error" {
		t.Errorf("expected key 'error', got %q", field.Key().Name())
	}
}

func TestKeyDuration(t *testing.T) {
	field := KeyDuration.Field(100 * time.Millisecond)
	if field.Key().Name() != "duration" {
		t.Errorf("expected key 'duration', got %q", field.Key().Name())
	}
}

func TestKeyBeforeCount(t *testing.T) {
	field := KeyBeforeCount.Field(1)
	if field.Key().Name() != "before_count" {
		t.Errorf("expected key 'before_count', got %q", field.Key().Name())
	}
}

func TestKeyAfterCount(t *testing.T) {
	field := KeyAfterCount.Field(1)
	if field.Key().Name() != "after_count" {
		t.Errorf("expected key 'after_count', got %q", field.Key().Name())
	}
}

func TestKeyHandlerCount(t *testing.T) {
	field := KeyHandlerCount.Field(3)
	if field.Key().Name() != "handler_count" {
		t.Errorf("expected key 'handler_count', got %q", field.Key().Name())
	}
}
