package collage

import "testing"

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		portrait  int
		landscape int
		wantKind  Kind
		wantGrid  Grid
	}{
		{"FullPortrait", 6, 0, KindPortrait, PortraitGrid},
		{"PortraitBeatsLandscape", 10, 8, KindPortrait, PortraitGrid},
		{"FullLandscape", 0, 4, KindLandscape, LandscapeGrid},
		{"LandscapeWhenPortraitShort", 5, 4, KindLandscape, LandscapeGrid},
		{"MixedLargeGrid", 5, 1, KindMixed, PortraitGrid},
		{"MixedLargeGridSurplus", 5, 3, KindMixed, PortraitGrid},
		{"MixedSmallGrid", 3, 2, KindMixed, LandscapeGrid},
		{"MixedAllPortraits", 4, 0, KindMixed, LandscapeGrid},
		{"MixedAllLandscapes", 1, 3, KindMixed, LandscapeGrid},
		{"SkipThree", 3, 0, KindSkip, Grid{}},
		{"SkipSplit", 1, 2, KindSkip, Grid{}},
		{"SkipEmpty", 0, 0, KindSkip, Grid{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.portrait, tt.landscape)
			if got.Kind != tt.wantKind {
				t.Errorf("Decide(%d, %d).Kind = %v, want %v", tt.portrait, tt.landscape, got.Kind, tt.wantKind)
			}
			if got.Grid != tt.wantGrid {
				t.Errorf("Decide(%d, %d).Grid = %+v, want %+v", tt.portrait, tt.landscape, got.Grid, tt.wantGrid)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPortrait, "portrait"},
		{KindLandscape, "landscape"},
		{KindMixed, "mixed"},
		{KindSkip, "skip"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
