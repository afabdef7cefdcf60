package sysinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeyValues(t *testing.T) {
	osRelease := `# comment
NAME="Ubuntu"
VERSION="24.04 LTS (Noble Numbat)"
ID=ubuntu
`
	info := ParseKeyValues(strings.NewReader(osRelease))
	require.Equal(t, "Ubuntu", info["NAME"])
	require.Equal(t, "24.04 LTS (Noble Numbat)", info["VERSION"])
	require.Equal(t, "ubuntu", info["ID"])

	swVers := "ProductName:\t\tmacOS\nProductVersion:\t\t14.5\nBuildVersion:\t\t23F79\n"
	info = ParseKeyValues(strings.NewReader(swVers))
	require.Equal(t, "macOS", info["ProductName"])
	require.Equal(t, "14.5", info["ProductVersion"])
}

func TestStat(t *testing.T) {
	info := Stat()
	require.Equal(t, runtime.GOOS, info.Name)
	require.NotEmpty(t, info.Release)
	require.NotEmpty(t, info.Version)
}
