package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		goos    string
		wantErr bool
	}{
		{"windows", false},
		{"linux", true},
		{"darwin", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			err := Check(tt.goos)
			if tt.wantErr {
				if !errors.Is(err, ErrNotWindows) {
					t.Errorf("Check(%q) = %v, want ErrNotWindows", tt.goos, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Check(%q) unexpected error: %v", tt.goos, err)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	info, err := NewDetector().Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
}

func TestDetectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// gopsutil may or may not consult the context on every platform; when it
	// does, the cancellation must surface.
	info, err := NewDetector().Detect(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Detect error = %v, want context.Canceled", err)
		}
		return
	}
	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
}
