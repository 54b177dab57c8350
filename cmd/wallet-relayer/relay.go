package main

import (
	"fmt"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func recoveryCommand() *cli.Command {
	return &cli.Command{
		Name:  "recovery",
		Usage: "Recovery related commands",
		Subcommands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Relay executeRecovery to move a wallet to a new owner",
				ArgsUsage: walletArgUsage + " <new owner address or ENS name>",
				Action: withRuntime(func(c *cli.Context, rt *runtime) error {
					wallet, err := rt.resolveArg(c, 0, "wallet")
					if err != nil {
						return err
					}
					newOwner, err := rt.resolveArg(c, 1, "new owner")
					if err != nil {
						return err
					}
					if newOwner == (common.Address{}) {
						return fmt.Errorf("new owner cannot be the zero address")
					}
					question := fmt.Sprintf("Start recovery of %s to %s?", wallet.Hex(), newOwner.Hex())
					return rt.relay(c, question, func(svc relayFuncs) (*persistence.RelayRecord, error) {
						return svc.InitializeRecovery(c.Context, wallet, newOwner)
					})
				}),
			},
			{
				Name:      "cancel",
				Usage:     "Relay cancelRecovery for a wallet",
				ArgsUsage: walletArgUsage,
				Action: withRuntime(func(c *cli.Context, rt *runtime) error {
					wallet, err := rt.resolveArg(c, 0, "wallet")
					if err != nil {
						return err
					}
					return rt.relay(c, fmt.Sprintf("Cancel the pending recovery of %s?", wallet.Hex()), func(svc relayFuncs) (*persistence.RelayRecord, error) {
						return svc.CancelRecovery(c.Context, wallet)
					})
				}),
			},
			{
				Name:      "finalize",
				Usage:     "Send finalizeRecovery for a wallet whose security period has elapsed",
				ArgsUsage: walletArgUsage,
				Action: withRuntime(func(c *cli.Context, rt *runtime) error {
					wallet, err := rt.resolveArg(c, 0, "wallet")
					if err != nil {
						return err
					}
					return rt.relay(c, fmt.Sprintf("Finalize the recovery of %s?", wallet.Hex()), func(svc relayFuncs) (*persistence.RelayRecord, error) {
						return svc.FinalizeRecovery(c.Context, wallet)
					})
				}),
			},
			{
				Name:      "status",
				Usage:     "Print the status of a journaled relay",
				ArgsUsage: "<relay id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "wait",
						Usage: "Poll until the relay is confirmed, reverted or failed",
					},
				},
				Action: withRuntime(func(c *cli.Context, rt *runtime) error {
					id, err := uuid.Parse(c.Args().First())
					if err != nil {
						return fmt.Errorf("invalid relay id %q: %w", c.Args().First(), err)
					}
					svc, err := rt.relayService(c.Context)
					if err != nil {
						return err
					}

					var rec *persistence.RelayRecord
					if c.Bool("wait") {
						rec, err = svc.WaitForFinality(c.Context, id)
					} else {
						rec, err = svc.Status(c.Context, id)
					}
					if err != nil {
						return err
					}
					rt.printer.Relay(rec)
					return nil
				}),
			},
		},
	}
}

func lockCommand() *cli.Command {
	return &cli.Command{
		Name:      "lock",
		Usage:     "Relay lock for a wallet",
		ArgsUsage: walletArgUsage,
		Action: withRuntime(func(c *cli.Context, rt *runtime) error {
			wallet, err := rt.resolveArg(c, 0, "wallet")
			if err != nil {
				return err
			}
			return rt.relay(c, fmt.Sprintf("Are you sure you want to lock %s?", wallet.Hex()), func(svc relayFuncs) (*persistence.RelayRecord, error) {
				return svc.Lock(c.Context, wallet)
			})
		}),
	}
}

func unlockCommand() *cli.Command {
	return &cli.Command{
		Name:      "unlock",
		Usage:     "Relay unlock for a wallet",
		ArgsUsage: walletArgUsage,
		Action: withRuntime(func(c *cli.Context, rt *runtime) error {
			wallet, err := rt.resolveArg(c, 0, "wallet")
			if err != nil {
				return err
			}
			return rt.relay(c, fmt.Sprintf("Are you sure you want to unlock %s?", wallet.Hex()), func(svc relayFuncs) (*persistence.RelayRecord, error) {
				return svc.Unlock(c.Context, wallet)
			})
		}),
	}
}

func relaysCommand() *cli.Command {
	return &cli.Command{
		Name:  "relays",
		Usage: "Relay journal commands",
		Subcommands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List journaled relays, optionally for one wallet",
				ArgsUsage: "[wallet address or ENS name]",
				Action: withRuntime(func(c *cli.Context, rt *runtime) error {
					j, err := rt.relayJournal()
					if err != nil {
						return err
					}

					var records []*persistence.RelayRecord
					if c.Args().Len() > 0 {
						wallet, err := rt.resolveArg(c, 0, "wallet")
						if err != nil {
							return err
						}
						records, err = j.ListRelaysForWallet(wallet)
						if err != nil {
							return err
						}
					} else {
						records, err = j.ListRelays()
						if err != nil {
							return err
						}
					}
					rt.printer.RelayTable(records)
					return nil
				}),
			},
		},
	}
}
