package command

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

type testResult struct {
	Value int `json:"value"`
}

func (r *testResult) GetOutput() string {
	return "value is set"
}

func newTestCommand(args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	RegisterJSONOutputFlag(cmd)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	_ = cmd.Execute()

	return cmd, &stdout, &stderr
}

func TestOutputter_CLI(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()

	outputter := InitializeOutputter(cmd)
	outputter.SetCommandResult(&testResult{Value: 1})
	outputter.WriteOutput()

	assert.Equal(t, "value is set\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestOutputter_JSON(t *testing.T) {
	cmd, stdout, _ := newTestCommand("--json")

	outputter := InitializeOutputter(cmd)
	outputter.SetCommandResult(&testResult{Value: 1})
	outputter.WriteOutput()

	assert.JSONEq(t, `{"value":1}`, stdout.String())
}

func TestOutputter_Error(t *testing.T) {
	cmd, stdout, stderr := newTestCommand("--json")

	outputter := InitializeOutputter(cmd)
	outputter.SetError(errors.New("boom"))
	outputter.WriteOutput()

	assert.Empty(t, stdout.String())
	assert.JSONEq(t, `{"error":"boom"}`, stderr.String())
}

func TestGetChainParams_Default(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	RegisterChainFlag(cmd)

	params, err := GetChainParams(cmd)
	assert.NoError(t, err)
	assert.Equal(t, "mainnet", params.Name)
}
