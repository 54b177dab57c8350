package caller

import (
	"context"
	"fmt"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/ENSRegistry"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/PublicResolver"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/ens"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// resolverFor returns the resolver registered for node
func (cc *ContractCaller) resolverFor(ctx context.Context, node common.Hash) (*PublicResolver.PublicResolverCaller, error) {
	registry, err := ENSRegistry.NewENSRegistryCaller(common.HexToAddress(cc.contracts.ENSRegistry), cc.ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create ENS registry instance: %w", err)
	}
	resolverAddress, err := registry.Resolver(&bind.CallOpts{Context: ctx}, node)
	if err != nil {
		return nil, fmt.Errorf("failed to get resolver: %w", err)
	}
	if resolverAddress == (common.Address{}) {
		return nil, fmt.Errorf("no resolver set")
	}
	return PublicResolver.NewPublicResolverCaller(resolverAddress, cc.ethclient)
}

func (cc *ContractCaller) ResolveName(ctx context.Context, name string) (common.Address, error) {
	node := ens.NameHash(name)
	resolver, err := cc.resolverFor(ctx, node)
	if err != nil {
		return common.Address{}, fmt.Errorf("unable to resolve ENS address %s: %w", name, err)
	}
	addr, err := resolver.Addr(&bind.CallOpts{Context: ctx}, node)
	if err != nil {
		return common.Address{}, fmt.Errorf("unable to resolve ENS address %s: %w", name, err)
	}
	return addr, nil
}

func (cc *ContractCaller) LookupAddress(ctx context.Context, address common.Address) (string, error) {
	node := ens.NameHash(ens.ReverseName(address))
	resolver, err := cc.resolverFor(ctx, node)
	if err != nil {
		return "", fmt.Errorf("unable to ENS reverse address %s: %w", address.Hex(), err)
	}
	name, err := resolver.Name(&bind.CallOpts{Context: ctx}, node)
	if err != nil {
		return "", fmt.Errorf("unable to ENS reverse address %s: %w", address.Hex(), err)
	}
	return name, nil
}

// ResolveAddress accepts either an ENS name or a hex address
func (cc *ContractCaller) ResolveAddress(ctx context.Context, input string) (common.Address, error) {
	if ens.IsENSName(input) {
		return cc.ResolveName(ctx, input)
	}
	if !common.IsHexAddress(input) {
		return common.Address{}, fmt.Errorf("invalid address %s", input)
	}
	return common.HexToAddress(input), nil
}
