// Package platform gates the tool to Windows hosts and describes the host for
// diagnostics.
package platform

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// ErrNotWindows is returned by Check on any host other than Windows.
var ErrNotWindows = errors.New("this helper is intended to run on Windows where MSYS2 is available")

// Check reports whether goos names a supported host.
func Check(goos string) error {
	if goos != "windows" {
		return fmt.Errorf("%w (running on %s)", ErrNotWindows, goos)
	}
	return nil
}

// Info describes the host the tool is running on.
type Info struct {
	OS         string
	Arch       string
	Platform   string
	Version    string
	KernelArch string
}

// Detector gathers host information.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// RealDetector implements Detector with runtime values and gopsutil.
type RealDetector struct{}

// NewDetector creates a new host detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect returns runtime.GOOS and runtime.GOARCH, enriched with the product
// name and version reported by gopsutil. A gopsutil failure is not an error;
// the OS/arch fields are still returned.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	h, err := host.InfoWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("host detection cancelled: %w", ctx.Err())
		}
		return info, nil
	}
	info.Platform = h.Platform
	info.Version = h.PlatformVersion
	info.KernelArch = h.KernelArch
	return info, nil
}
