package profiling

import (
	"strings"
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	current[name] += d
	mu.Unlock()
}

func TestResetFramePublishesTotals(t *testing.T) {
	ResetFrame()
	record("renderer.Render", 4200*time.Microsecond)
	record("carve.Displace", 800*time.Microsecond)
	record("renderer.Hud", time.Millisecond)

	if len(Snapshot()) != 0 {
		t.Fatal("snapshot should only show finished frames")
	}
	ResetFrame()

	if got := SumWithPrefix("renderer."); got != 5200*time.Microsecond {
		t.Errorf("renderer sum = %v", got)
	}
	top := TopN(2)
	if top != "renderer.Render:4.2ms, renderer.Hud:1ms" {
		t.Errorf("TopN = %q", top)
	}
	if !strings.Contains(TopN(10), "carve.Displace:0.8ms") {
		t.Errorf("TopN(10) missing carve bucket: %q", TopN(10))
	}
}

func TestTrackCounts(t *testing.T) {
	ResetFrame()
	for i := 0; i < 3; i++ {
		Track("mesh.ComputeNormals")()
	}
	if got := Calls("mesh.ComputeNormals"); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestFormatMs(t *testing.T) {
	if got := FormatMs(0); got != "0ms" {
		t.Errorf("FormatMs(0) = %q", got)
	}
	if got := FormatMs(12345 * time.Microsecond); got != "12.3ms" {
		t.Errorf("FormatMs = %q", got)
	}
}
