package refresh

const (
	// DefaultHeaderHeight is used when a header has no delegate.
	DefaultHeaderHeight = 50.0
	// DefaultFooterHeight is used when a footer has no delegate.
	DefaultFooterHeight = 44.0
)

// Delegate is the callback surface shared by headers and footers.
type Delegate interface {
	// HeightForControl returns the fixed height of the control.
	HeightForControl() float64
	// DidBeginRefreshing is called once per refresh, after the triggering
	// notification has returned and right before the action runs.
	DidBeginRefreshing()
	// DidEndRefreshing is called when the host ends the refresh.
	DidEndRefreshing()
}

// HeaderDelegate renders a pull to refresh header.
type HeaderDelegate interface {
	Delegate
	// HeightForFireRefreshing is the overscroll needed to arm a refresh.
	HeightForFireRefreshing() float64
	// HeightForRefreshingState is the height the header keeps visible while refreshing.
	HeightForRefreshingState() float64
	// PercentUpdate reports pull progress in [0, 1] while idle.
	PercentUpdate(percent float64)
	// DidBeginHideAnimation is called when the header starts retracting.
	DidBeginHideAnimation(result HideResult)
	// DidCompleteHideAnimation is called once the host reports the retraction finished.
	DidCompleteHideAnimation(result HideResult)
}

// FooterDelegate renders a load more footer.
type FooterDelegate interface {
	Delegate
	// DidUpdateToNoMoreData is called when the footer is disabled.
	DidUpdateToNoMoreData()
	// DidResetToDefault is called when the footer returns to idle.
	DidResetToDefault()
	// ShouldBeginRefreshingWhenScroll gates the scroll-driven trigger. Taps
	// are not affected.
	ShouldBeginRefreshingWhenScroll() bool
}
