// Package chaincfg defines the Kaspa network parameters the validator needs: the network name and
// the bech32 prefix used to render and parse addresses.
package chaincfg

import (
	"github.com/dymensionxyz/kaspa-validator/errors"
)

// Params defines a Kaspa network by its parameters.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// AddressPrefix is the human-readable part of bech32 addresses on this network.
	AddressPrefix string

	// DefaultRPCPort is the default kaspad gRPC port, kept for operator tooling.
	DefaultRPCPort string
}

var (
	// MainNetParams defines the network parameters for the main Kaspa network.
	MainNetParams = Params{
		Name:           "kaspa-mainnet",
		AddressPrefix:  "kaspa",
		DefaultRPCPort: "16110",
	}

	// TestNetParams defines the network parameters for the test Kaspa network.
	TestNetParams = Params{
		Name:           "kaspa-testnet",
		AddressPrefix:  "kaspatest",
		DefaultRPCPort: "16210",
	}

	// SimNetParams defines the network parameters for the simulation test network.
	SimNetParams = Params{
		Name:           "kaspa-simnet",
		AddressPrefix:  "kaspasim",
		DefaultRPCPort: "16510",
	}

	// DevNetParams defines the network parameters for the development network.
	DevNetParams = Params{
		Name:           "kaspa-devnet",
		AddressPrefix:  "kaspadev",
		DefaultRPCPort: "16610",
	}
)

var registeredPrefixes = make(map[string]*Params)

// Register registers the network parameters. This may error if the address prefix is already
// registered.
func Register(params *Params) error {
	if _, ok := registeredPrefixes[params.AddressPrefix]; ok {
		return errors.NewConfigurationError("duplicate network prefix %s", params.AddressPrefix)
	}

	registeredPrefixes[params.AddressPrefix] = params

	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsKnownPrefix reports whether prefix belongs to a registered network.
func IsKnownPrefix(prefix string) bool {
	_, ok := registeredPrefixes[prefix]
	return ok
}

func GetChainParams(network string) (*Params, error) {
	switch network {
	case "mainnet":
		return &MainNetParams, nil
	case "testnet":
		return &TestNetParams, nil
	case "simnet":
		return &SimNetParams, nil
	case "devnet":
		return &DevNetParams, nil
	default:
		return nil, errors.NewConfigurationError("unknown network %s", network)
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&SimNetParams)
	mustRegister(&DevNetParams)
}
