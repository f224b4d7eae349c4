//go:build !linux && !darwin && !freebsd

package mem

// TotalMemory returns 0: physical memory is not queried on this platform.
func TotalMemory() uint64 {
	return 0
}
