//go:build darwin || freebsd

package mem

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// TotalMemory returns the physical memory of the machine in bytes, or 0 if it
// cannot be determined.
func TotalMemory() uint64 {
	name := "hw.physmem"
	if runtime.GOOS == "darwin" {
		name = "hw.memsize"
	}
	total, err := unix.SysctlUint64(name)
	if err != nil {
		return 0
	}
	return total
}
