// SPDX-License-Identifier: MIT

package version_test

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftcenters/version"
)

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := version.VersionCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	require.True(t, strings.HasPrefix(out.String(), "ftcenters "))
	require.Contains(t, out.String(), runtime.Version())
	require.NotEmpty(t, version.VERSION)
}
