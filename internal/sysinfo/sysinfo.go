// Package sysinfo reports best-effort host and runtime details for the
// demo banner. Failures here are cosmetic and never fatal.
package sysinfo

import (
	"fmt"
	"os"
	"runtime"
)

// Info describes the runtime environment the harness is executing in.
type Info struct {
	GoVersion string
	OS        string
	Arch      string
	NumCPU    int
	Hostname  string
}

// Probe collects runtime information. The runtime fields always succeed;
// a hostname lookup failure is returned as the error alongside the
// partially filled Info so callers can still log what they have.
func Probe() (Info, error) {
	info := Info{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}

	hostname, err := os.Hostname()
	if err != nil {
		return info, fmt.Errorf("hostname lookup failed: %w", err)
	}
	info.Hostname = hostname

	return info, nil
}
