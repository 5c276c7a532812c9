// SPDX-License-Identifier: MIT

// Package version reports build information for the ftcenters binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// VERSION is the release version, set with -ldflags "-X".
var VERSION string

var (
	buildTime  string
	gitVersion string
)

func init() {
	if len(gitVersion) > 0 {
		VERSION = VERSION + "/" + gitVersion
	}
	if len(VERSION) == 0 {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			VERSION = bi.Main.Version
		} else {
			VERSION = "dev-snapshot"
		}
	}
}

// Version returns VERSION followed by the build time and Go runtime version.
func Version() string {
	extra := []string{}
	if len(buildTime) > 0 {
		extra = append(extra, buildTime)
	}
	extra = append(extra, runtime.Version())

	return fmt.Sprintf("%s (%s)", VERSION, strings.Join(extra, ", "))
}

// VersionCmd is the "version" sub-command.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ftcenters %s\n", Version())
		},
	}
}
