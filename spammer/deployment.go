package spammer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
)

// deployment mirrors the metadata file the contract deploy scripts write,
// e.g. contracts/deployments/hello-world/31337.json.
type deployment struct {
	Addresses struct {
		HelloWorldServiceManager string `json:"helloWorldServiceManager"`
	} `json:"addresses"`
}

// LoadDeployment reads the deployment metadata at path and returns the
// service manager address. Local file I/O only.
func LoadDeployment(path string) (common.Address, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}

	var dep deployment
	if err := json.Unmarshal(data, &dep); err != nil {
		return common.Address{}, fmt.Errorf("%w: parsing %s: %v", ErrConfig, path, err)
	}

	raw := dep.Addresses.HelloWorldServiceManager
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: %q is not a contract address", ErrConfig, raw)
	}
	return common.HexToAddress(raw), nil
}
