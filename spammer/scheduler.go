package spammer

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
)

// TaskSubmitter submits one task and waits for its receipt.
type TaskSubmitter interface {
	Submit(ctx context.Context, name string) (*types.Receipt, error)
}

// Scheduler fires one submission per interval, wall-clock-paced. A slow
// submission never overlaps the next one; the ticker simply drops the
// ticks that elapsed meanwhile.
type Scheduler struct {
	submitter TaskSubmitter
	interval  time.Duration
	log       *slog.Logger
}

func NewScheduler(submitter TaskSubmitter, interval time.Duration, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{submitter: submitter, interval: interval, log: log}
}

// Run loops until ctx is done. A failed submission is logged and the loop
// moves on; nothing short of cancellation stops it.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			name := GenerateRandomName()
			s.log.Info("creating new task", "name", name)

			receipt, err := s.submitter.Submit(ctx, name)
			if err != nil {
				s.log.Error("task submission failed", "name", name, "err", err)
				continue
			}
			s.log.Info("transaction successful", "name", name, "tx", receipt.TxHash.Hex())
		}
	}
}
