package main

import (
	"context"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
)

// relayFuncs is the slice of the relay service the mutating commands use
type relayFuncs interface {
	InitializeRecovery(ctx context.Context, wallet, newOwner common.Address) (*persistence.RelayRecord, error)
	CancelRecovery(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error)
	FinalizeRecovery(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error)
	Lock(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error)
	Unlock(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error)
}

// relay asks for confirmation unless --yes was given, runs op and prints the journaled record.
// A failed relay prints its Failed record before the error is returned.
func (rt *runtime) relay(c *cli.Context, question string, op func(svc relayFuncs) (*persistence.RelayRecord, error)) error {
	if !rt.assumeYes {
		ok, err := rt.printer.Confirm(question)
		if err != nil {
			return err
		}
		if !ok {
			rt.printer.Warn("Nothing was relayed")
			return nil
		}
	}

	svc, err := rt.relayService(c.Context)
	if err != nil {
		return err
	}
	return rt.report(op(svc))
}

func (rt *runtime) report(rec *persistence.RelayRecord, err error) error {
	if rec != nil {
		rt.printer.Relay(rec)
	}
	if err != nil {
		rt.printer.Error(err)
		return err
	}
	rt.printer.Success("Relay submitted, follow it with: wallet-relayer recovery status " + rec.ID.String())
	return nil
}
