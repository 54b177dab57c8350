package main

import (
	"fmt"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
)

func ensCommand() *cli.Command {
	return &cli.Command{
		Name:      "ens",
		Usage:     "Print the address and ENS name of a wallet",
		ArgsUsage: walletArgUsage,
		Action: withRuntime(func(c *cli.Context, rt *runtime) error {
			wallet, err := rt.resolveArg(c, 0, "wallet")
			if err != nil {
				return err
			}
			cc, err := rt.contractCaller()
			if err != nil {
				return err
			}
			name, err := cc.LookupAddress(c.Context, wallet)
			if err != nil {
				return err
			}
			if name == "" {
				name = "(no reverse record)"
			}
			rt.printer.Title("ENS")
			rt.printer.KeyValue("address", wallet.Hex())
			rt.printer.KeyValue("ens", name)
			return nil
		}),
	}
}

func ownerCommand() *cli.Command {
	return &cli.Command{
		Name:      "owner",
		Usage:     "Print the owner of a wallet",
		ArgsUsage: walletArgUsage,
		Action: withRuntime(func(c *cli.Context, rt *runtime) error {
			wallet, err := rt.resolveArg(c, 0, "wallet")
			if err != nil {
				return err
			}
			cc, err := rt.contractCaller()
			if err != nil {
				return err
			}
			owner, err := cc.GetOwner(c.Context, wallet)
			if err != nil {
				return err
			}
			rt.printer.Title("Owner")
			rt.printer.KeyValue("owner", owner.Hex())
			return nil
		}),
	}
}

func guardiansCommand() *cli.Command {
	return &cli.Command{
		Name:  "guardians",
		Usage: "Guardian related commands",
		Subcommands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "Print the guardians of a wallet",
				ArgsUsage: walletArgUsage,
				Action: withRuntime(func(c *cli.Context, rt *runtime) error {
					wallet, err := rt.resolveArg(c, 0, "wallet")
					if err != nil {
						return err
					}
					cc, err := rt.contractCaller()
					if err != nil {
						return err
					}
					guardians, err := cc.GetGuardians(c.Context, wallet)
					if err != nil {
						return err
					}
					items := make([]string, 0, len(guardians))
					for _, g := range guardians {
						items = append(items, g.Hex())
					}
					rt.printer.List("Guardians", items)
					return nil
				}),
			},
		},
	}
}

func modulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "modules",
		Usage: "Module related commands",
		Subcommands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "Print the modules authorised on a wallet",
				ArgsUsage: walletArgUsage,
				Action: withRuntime(func(c *cli.Context, rt *runtime) error {
					wallet, err := rt.resolveArg(c, 0, "wallet")
					if err != nil {
						return err
					}
					cc, err := rt.contractCaller()
					if err != nil {
						return err
					}
					mods, err := cc.GetModules(c.Context, wallet)
					if err != nil {
						return err
					}
					rt.printer.Modules(mods)
					return nil
				}),
			},
		},
	}
}

func balanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "balance",
		Usage:     "Print the balance of a wallet",
		ArgsUsage: walletArgUsage + " [token symbol or address, default ETH]",
		Action: withRuntime(func(c *cli.Context, rt *runtime) error {
			wallet, err := rt.resolveArg(c, 0, "wallet")
			if err != nil {
				return err
			}
			tok, err := parseToken(c.Args().Get(1))
			if err != nil {
				return err
			}
			cc, err := rt.contractCaller()
			if err != nil {
				return err
			}
			balance, err := cc.GetBalance(c.Context, wallet, tok)
			if err != nil {
				return err
			}
			rt.printer.Title("Balance")
			rt.printer.KeyValue("balance", tok.FormatAmount(balance))
			return nil
		}),
	}
}

// parseToken accepts a known symbol or the address of a known token. Empty means ETH.
func parseToken(input string) (*token.Token, error) {
	if input == "" {
		input = "ETH"
	}
	if common.IsHexAddress(input) {
		tok, ok := token.FromAddress(common.HexToAddress(input))
		if !ok {
			return nil, fmt.Errorf("unknown token %s", input)
		}
		return tok, nil
	}
	return token.FromSymbol(input)
}
