package multiplexer

import (
	"errors"
	"testing"
	"time"
)

func TestManyToOneDeliversFromMultipleSenders(t *testing.T) {
	ch := make(chan int, 4)
	plexer := NewManyToOne(ch)

	for i := 1; i <= 3; i++ {
		go func(v int) {
			if err := plexer.Send(v); err != nil {
				t.Errorf("send %d: %v", v, err)
			}
		}(i)
	}

	sum := 0
	for i := 0; i < 3; i++ {
		select {
		case v := <-ch:
			sum += v
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for messages")
		}
	}
	if sum != 6 {
		t.Errorf("sum = %d, expected 6", sum)
	}
}

func TestManyToOneSendAfterClose(t *testing.T) {
	plexer := NewManyToOne(make(chan string, 1))
	plexer.Close()
	if err := plexer.Send("late"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	// A second Close must not panic
	plexer.Close()
}

func TestOneToManyFansOut(t *testing.T) {
	plexer := NewOneToMany[string]()
	go plexer.StartPlexer()
	defer plexer.CloseSender()

	first, err := plexer.MakeReceiver("first")
	if err != nil {
		t.Fatalf("making first receiver: %v", err)
	}
	second, err := plexer.MakeReceiver("second")
	if err != nil {
		t.Fatalf("making second receiver: %v", err)
	}

	done := make(chan string, 2)
	for _, rec := range []chan string{first, second} {
		go func(rec chan string) {
			done <- <-rec
		}(rec)
	}

	plexer.GetSender() <- "broadcast"

	for i := 0; i < 2; i++ {
		select {
		case got := <-done:
			if got != "broadcast" {
				t.Errorf("receiver got %q", got)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for fan-out")
		}
	}
}

func TestOneToManyDuplicateReceiverName(t *testing.T) {
	plexer := NewOneToMany[int]()
	if _, err := plexer.MakeReceiver("dup"); err != nil {
		t.Fatalf("first receiver: %v", err)
	}
	if _, err := plexer.MakeReceiver("dup"); !errors.Is(err, ErrReceiverExists) {
		t.Errorf("expected ErrReceiverExists, got %v", err)
	}
}

func TestOneToManyCloseSenderClosesReceivers(t *testing.T) {
	plexer := NewOneToMany[int]()
	go plexer.StartPlexer()

	rec, err := plexer.MakeReceiver("only")
	if err != nil {
		t.Fatalf("making receiver: %v", err)
	}

	plexer.CloseSender()

	select {
	case _, open := <-rec:
		if open {
			t.Error("expected receiver channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for receiver close")
	}

	if _, err := plexer.MakeReceiver("late"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed after shutdown, got %v", err)
	}
}
