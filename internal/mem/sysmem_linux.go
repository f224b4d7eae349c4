//go:build linux

package mem

import "golang.org/x/sys/unix"

// TotalMemory returns the physical memory of the machine in bytes, or 0 if it
// cannot be determined.
func TotalMemory() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	return uint64(info.Totalram) * unit //nolint:unconvert // uint32 on 32-bit targets
}
