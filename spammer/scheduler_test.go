package spammer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// fakeSubmitter records every call and cancels the loop after maxCalls.
type fakeSubmitter struct {
	names  []string
	times  []time.Time
	err    error
	cancel context.CancelFunc
	max    int
}

func (f *fakeSubmitter) Submit(ctx context.Context, name string) (*types.Receipt, error) {
	f.names = append(f.names, name)
	f.times = append(f.times, time.Now())
	if len(f.names) >= f.max {
		f.cancel()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &types.Receipt{TxHash: common.HexToHash("0x1"), Status: types.ReceiptStatusSuccessful}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_OneSubmissionPerTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const interval = 20 * time.Millisecond
	sub := &fakeSubmitter{cancel: cancel, max: 3}

	err := NewScheduler(sub, interval, quietLogger()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}

	if len(sub.names) != 3 {
		t.Fatalf("got %d submissions, want 3", len(sub.names))
	}
	for i, name := range sub.names {
		if !namePattern.MatchString(name) {
			t.Errorf("submission %d has malformed name %q", i, name)
		}
	}
	for i := 1; i < len(sub.times); i++ {
		gap := sub.times[i].Sub(sub.times[i-1])
		if gap < interval/2 || gap > 5*interval {
			t.Errorf("tick %d fired %v after tick %d, want about %v", i, gap, i-1, interval)
		}
	}
}

func TestScheduler_ContinuesAfterFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := &fakeSubmitter{cancel: cancel, max: 2, err: ErrSubmission}

	err := NewScheduler(sub, 5*time.Millisecond, quietLogger()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
	if len(sub.names) != 2 {
		t.Fatalf("got %d submissions, want 2; a failed tick must not stop the loop", len(sub.names))
	}
	if sub.names[0] == sub.names[1] && sub.times[1].Equal(sub.times[0]) {
		t.Error("second tick did not run independently of the first")
	}
}

func TestScheduler_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sub := &fakeSubmitter{cancel: func() {}, max: 1 << 30}
	err := NewScheduler(sub, time.Hour, quietLogger()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
	if len(sub.names) != 0 {
		t.Errorf("got %d submissions before the first tick, want 0", len(sub.names))
	}
}
