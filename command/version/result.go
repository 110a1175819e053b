package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dogechain-lab/blockenv/command/helper"
)

type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

func (r *VersionResult) GetOutput() string {
	var s strings.Builder

	s.WriteString("Blockenv\n")
	s.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Version|%s", r.Version),
		fmt.Sprintf("Commit|%s", r.Commit),
		fmt.Sprintf("Build Time|%s", r.BuildTime),
		fmt.Sprintf("Go Version|%s", r.GoVersion),
	}))

	return s.String()
}

func goVersion() string {
	return runtime.Version()
}
