package collage

// Kind identifies the selection strategy chosen for one sheet.
type Kind int

const (
	// KindPortrait fills PortraitGrid from the portrait pool alone.
	KindPortrait Kind = iota
	// KindLandscape fills LandscapeGrid from the landscape pool alone.
	KindLandscape
	// KindMixed fills a grid from both pools combined, ignoring orientation.
	KindMixed
	// KindSkip means no grid can be filled with the remaining images.
	KindSkip
)

// String returns the lowercase strategy name.
func (k Kind) String() string {
	switch k {
	case KindPortrait:
		return "portrait"
	case KindLandscape:
		return "landscape"
	case KindMixed:
		return "mixed"
	default:
		return "skip"
	}
}

// Decision is the outcome of grid selection for one sheet.
type Decision struct {
	Kind Kind
	Grid Grid // zero value when Kind is KindSkip
}

// Decide picks the grid for the next sheet from the number of portrait and
// landscape images remaining. A full portrait grid is preferred, then a full
// landscape grid. When neither pool alone suffices, a mixed sheet uses
// whichever grid shape wastes the fewest of the remaining images, which
// means the larger shape whenever the combined count covers it. Fewer than
// four images in total means the sheet is skipped.
func Decide(portrait, landscape int) Decision {
	switch {
	case portrait >= PortraitGrid.Cells():
		return Decision{Kind: KindPortrait, Grid: PortraitGrid}
	case landscape >= LandscapeGrid.Cells():
		return Decision{Kind: KindLandscape, Grid: LandscapeGrid}
	case portrait+landscape >= PortraitGrid.Cells():
		return Decision{Kind: KindMixed, Grid: PortraitGrid}
	case portrait+landscape >= LandscapeGrid.Cells():
		return Decision{Kind: KindMixed, Grid: LandscapeGrid}
	default:
		return Decision{Kind: KindSkip}
	}
}
