// Package spammer drives the hello-world AVS by periodically submitting
// randomly named tasks to the service manager contract.
package spammer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"avs-spammer-go/bindings"
	"avs-spammer-go/config"
)

// A confirmation that takes longer than this counts as failed; the
// broadcast may still land afterwards.
const confirmationTimeout = time.Minute

// Spammer builds, signs and broadcasts createNewTask transactions. It is
// constructed once and reused for every tick; ticks are strictly
// sequential, so no locking is needed around the shared client or key.
type Spammer struct {
	cfg     config.Config
	client  *ethclient.Client
	privKey *ecdsa.PrivateKey

	// resolved on first use, then reused
	opts *bind.TransactOpts
}

func New(cfg config.Config) (*Spammer, error) {
	privKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredential, err)
	}

	client, err := ethclient.Dial(cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("%w: dialing %s: %v", ErrSubmission, cfg.Provider, err)
	}

	return &Spammer{cfg: cfg, client: client, privKey: privKey}, nil
}

// transactor resolves the chain ID and keyed transactor lazily so that
// construction needs no live node.
func (s *Spammer) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	if s.opts == nil {
		chainID, err := s.client.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: fetching chain ID: %v", ErrSubmission, err)
		}
		opts, err := bind.NewKeyedTransactorWithChainID(s.privKey, chainID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCredential, err)
		}
		s.opts = opts
	}
	opts := *s.opts
	opts.Context = ctx
	return &opts, nil
}

// Submit sends one createNewTask(name) transaction and waits for its
// receipt. The deployment file is re-read on every attempt so a redeploy
// is picked up without a restart. One broadcast maximum, no retries.
func (s *Spammer) Submit(ctx context.Context, name string) (*types.Receipt, error) {
	address, err := LoadDeployment(s.cfg.DeploymentFile)
	if err != nil {
		return nil, err
	}

	opts, err := s.transactor(ctx)
	if err != nil {
		return nil, err
	}

	contract, err := bindings.NewHelloWorld(address, s.client)
	if err != nil {
		return nil, fmt.Errorf("%w: binding contract: %v", ErrSubmission, err)
	}

	tx, err := contract.CreateNewTask(opts, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, confirmationTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, s.client, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: waiting for %s: %v", ErrConfirmation, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: tx %s reverted", ErrConfirmation, tx.Hash().Hex())
	}
	return receipt, nil
}
