package cli

import (
	"strings"
	"testing"

	"github.com/photosheet/photosheet/pkg/collage"
	"github.com/photosheet/photosheet/pkg/photo"
	"github.com/photosheet/photosheet/pkg/pipeline"
)

func TestSummaryTable(t *testing.T) {
	results := []pipeline.SlotResult{
		{Slot: 0, Status: pipeline.SlotWritten, Kind: collage.KindPortrait, Path: "/tmp/out/collage_01.png", Images: 6},
		{Slot: 1, Status: pipeline.SlotSkipped, Kind: collage.KindSkip, Reason: "2 images remain, the smallest grid needs 4"},
	}

	out := summaryTable(results)
	for _, want := range []string{"SLOT", "collage_01.png", "portrait", "smallest grid"} {
		if !strings.Contains(out, want) {
			t.Errorf("summaryTable() missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "/tmp/out") {
		t.Error("summaryTable() should show base names, not full paths")
	}
}

func TestPoolTable(t *testing.T) {
	pools := photo.Partition([]photo.SourceImage{
		{Path: "a.jpg", Width: 30, Height: 45, Orientation: photo.Portrait},
		{Path: "b.jpg", Width: 45, Height: 30, Orientation: photo.Landscape},
		{Path: "c.jpg", Width: 45, Height: 30, Orientation: photo.Landscape},
	})

	out := poolTable(pools, 1)
	for _, want := range []string{"POOL", "portrait", "landscape", "unreadable", "usable"} {
		if !strings.Contains(out, want) {
			t.Errorf("poolTable() missing %q in output:\n%s", want, out)
		}
	}
}
