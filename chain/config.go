package chain

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl"
)

// fileConfig is the on-disk layout of the params, shared by json and hcl
type fileConfig struct {
	Name     string         `json:"name" hcl:"name"`
	Forks    map[string]int `json:"forks" hcl:"forks"`
	Schedule *fileSchedule  `json:"schedule,omitempty" hcl:"schedule"`
}

type fileSchedule struct {
	TxGas            int `json:"tx_gas" hcl:"tx_gas"`
	TxCreateGas      int `json:"tx_create_gas" hcl:"tx_create_gas"`
	TxDataZeroGas    int `json:"tx_data_zero_gas" hcl:"tx_data_zero_gas"`
	TxDataNonZeroGas int `json:"tx_data_non_zero_gas" hcl:"tx_data_non_zero_gas"`
}

// ImportFromFile reads the params from a json or hcl file
func ImportFromFile(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var unmarshalFunc func([]byte, interface{}) error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		unmarshalFunc = hcl.Unmarshal
	case ".json":
		unmarshalFunc = json.Unmarshal
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}

	return importParams(data, unmarshalFunc)
}

// ImportFromJSON parses params from json content
func ImportFromJSON(data []byte) (*Params, error) {
	return importParams(data, json.Unmarshal)
}

func importParams(data []byte, unmarshalFunc func([]byte, interface{}) error) (*Params, error) {
	raw := &fileConfig{}
	if err := unmarshalFunc(data, raw); err != nil {
		return nil, fmt.Errorf("could not decode params: %w", err)
	}

	params, err := raw.toParams()
	if err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

func (c *fileConfig) toParams() (*Params, error) {
	var result *multierror.Error

	params := &Params{
		Name:  c.Name,
		Forks: &Forks{},
	}

	for name, block := range c.Forks {
		if block < 0 {
			result = multierror.Append(result, fmt.Errorf("%w: %s=%d", errNegativeFork, name, block))

			continue
		}

		if err := params.Forks.set(strings.ToLower(name), uint64(block)); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if s := c.Schedule; s != nil {
		if s.TxGas < 0 || s.TxCreateGas < 0 || s.TxDataZeroGas < 0 || s.TxDataNonZeroGas < 0 {
			result = multierror.Append(result, errNegativeSchedule)
		} else {
			params.Schedule = &Schedule{
				TxGas:            uint64(s.TxGas),
				TxCreateGas:      uint64(s.TxCreateGas),
				TxDataZeroGas:    uint64(s.TxDataZeroGas),
				TxDataNonZeroGas: uint64(s.TxDataNonZeroGas),
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return params, nil
}
