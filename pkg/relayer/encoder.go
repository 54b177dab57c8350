package relayer

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// MessageEncoder turns a module function call into ABI call data using the module's interface.
type MessageEncoder struct {
	abi *abi.ABI
}

// NewMessageEncoder parses the interface description carried by a generated binding.
func NewMessageEncoder(metadata *bind.MetaData) (*MessageEncoder, error) {
	parsed, err := metadata.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse module ABI: %w", err)
	}
	return &MessageEncoder{abi: parsed}, nil
}

// Encode packs the selector of method followed by its arguments.
func (e *MessageEncoder) Encode(method string, args ...interface{}) ([]byte, error) {
	if _, ok := e.abi.Methods[method]; !ok {
		return nil, EncodingError("encode", fmt.Errorf("unknown function %q", method))
	}
	data, err := e.abi.Pack(method, args...)
	if err != nil {
		return nil, EncodingError("encode "+method, err)
	}
	return data, nil
}

// Decode recovers the function name and arguments from call data produced by Encode.
func (e *MessageEncoder) Decode(data []byte) (string, []interface{}, error) {
	if len(data) < 4 {
		return "", nil, EncodingError("decode", fmt.Errorf("call data too short: %d bytes", len(data)))
	}
	method, err := e.abi.MethodById(data[:4])
	if err != nil {
		return "", nil, EncodingError("decode", err)
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return "", nil, EncodingError("decode "+method.Name, err)
	}
	return method.Name, args, nil
}

// HasMethod reports whether the interface declares method.
func (e *MessageEncoder) HasMethod(method string) bool {
	_, ok := e.abi.Methods[method]
	return ok
}
