//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

const forbiddenChars = `<>":/\|?*` + string(os.PathSeparator) + string(os.PathListSeparator)

const enableVirtualTerminalProcessing uint32 = 0x4

// windowsMajorVersion returns 0 when version could not be determined.
func windowsMajorVersion() uint64 {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return 0
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber")
	if err != nil {
		return 0
	}
	return v
}

// EnableColorOutput checks if colorized output is possible and switches
// console to VT100 sequence processing. Only Windows 10 and later consoles
// support it.
func EnableColorOutput(stream *os.File) bool {
	if windowsMajorVersion() < 10 || !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	var mode uint32
	h := windows.Handle(stream.Fd())
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|enableVirtualTerminalProcessing) == nil
}
