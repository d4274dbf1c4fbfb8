package core

import (
	"testing"
	"time"
)

func TestWorkerKillJoin(t *testing.T) {
	ws := NewWorkers()
	started := make(chan struct{})
	w := ws.Start("loop", func(tok *Token) {
		close(started)
		for !tok.Killed() {
			time.Sleep(time.Millisecond)
		}
	})
	<-started
	if !w.Running() {
		t.Fatalf("worker should be running")
	}
	w.Kill()
	w.Join()
	if w.Running() {
		t.Fatalf("worker should have exited after join")
	}
	if !w.KillRequested() {
		t.Fatalf("kill flag should be set")
	}
}

func TestWorkersGet(t *testing.T) {
	ws := NewWorkers()
	if _, ok := ws.Get("absent"); ok {
		t.Fatalf("lookup of an unregistered name must miss")
	}
	w := ws.Start("present", func(tok *Token) {})
	got, ok := ws.Get("present")
	if !ok || got != w {
		t.Fatalf("lookup should return the registered worker")
	}
	w.Join()
	// finished workers remain visible until replaced
	if _, ok := ws.Get("present"); !ok {
		t.Fatalf("finished worker should stay registered")
	}
}

func TestJoinOnFinishedWorkerReturnsImmediately(t *testing.T) {
	ws := NewWorkers()
	w := ws.Start("quick", func(tok *Token) {})
	w.Join()
	done := make(chan struct{})
	go func() {
		w.Join()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("second join must not block")
	}
}
