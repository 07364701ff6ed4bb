package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

type signalingRunner struct {
	runs chan struct{}
	err  error
}

func (r *signalingRunner) Execute() error {
	r.runs <- struct{}{}
	return r.err
}

func TestDigestWorkerTicks(t *testing.T) {
	runner := &signalingRunner{runs: make(chan struct{}, 8)}
	w := NewDigestWorker(runner, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-runner.runs:
		case <-time.After(2 * time.Second):
			t.Fatal("digest worker never ticked")
		}
	}
}

func TestDigestWorkerKeepsTickingAfterFailure(t *testing.T) {
	runner := &signalingRunner{runs: make(chan struct{}, 8), err: errors.New("smtp down")}
	w := NewDigestWorker(runner, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-runner.runs:
		case <-time.After(2 * time.Second):
			t.Fatal("digest worker stopped after a failed run")
		}
	}
}

func TestDigestWorkerStopsOnCancel(t *testing.T) {
	runner := &signalingRunner{runs: make(chan struct{}, 8)}
	w := NewDigestWorker(runner, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("digest worker did not stop on cancel")
	}
}
