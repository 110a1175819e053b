package command

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonOutput struct {
	commonOutputFormatter
}

func (jo *jsonOutput) WriteOutput() {
	if jo.errorOutput != nil {
		_, _ = fmt.Fprintln(jo.stderr, jo.getErrorOutput())

		return
	}

	_, _ = fmt.Fprintln(jo.stdout, jo.getCommandOutput())
}

func newJSONOutput(stdout, stderr io.Writer) *jsonOutput {
	return &jsonOutput{
		commonOutputFormatter: commonOutputFormatter{stdout: stdout, stderr: stderr},
	}
}

func (jo *jsonOutput) getErrorOutput() string {
	if jo.errorOutput == nil {
		return ""
	}

	return marshalJSONToString(
		struct {
			Err string `json:"error"`
		}{
			Err: jo.errorOutput.Error(),
		},
	)
}

func (jo *jsonOutput) getCommandOutput() string {
	if jo.commandOutput == nil {
		return ""
	}

	return marshalJSONToString(jo.commandOutput)
}

func marshalJSONToString(input interface{}) string {
	bytes, err := json.Marshal(input)
	if err != nil {
		return err.Error()
	}

	return string(bytes)
}
