// Package bindings holds the contract wrappers the spammer talks through.
package bindings

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Only the entry point this program calls; the full service-manager ABI
// lives with the contracts.
const helloWorldABI = `[{"type":"function","name":"createNewTask","inputs":[{"name":"name","type":"string"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"name","type":"string"},{"name":"taskCreatedBlock","type":"uint32"}]}],"stateMutability":"nonpayable"}]`

// HelloWorld wraps the hello-world service manager contract.
type HelloWorld struct {
	contract *bind.BoundContract
}

func NewHelloWorld(address common.Address, backend bind.ContractBackend) (*HelloWorld, error) {
	parsed, err := abi.JSON(strings.NewReader(helloWorldABI))
	if err != nil {
		return nil, err
	}
	return &HelloWorld{
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// CreateNewTask signs and broadcasts a createNewTask(name) transaction.
func (h *HelloWorld) CreateNewTask(opts *bind.TransactOpts, name string) (*types.Transaction, error) {
	return h.contract.Transact(opts, "createNewTask", name)
}
