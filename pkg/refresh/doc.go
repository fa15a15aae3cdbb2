// Package refresh implements the trigger engines behind pull to refresh and
// load more controls.
//
// A [Header] sits above the content of a scroll surface and starts a refresh
// when the user pulls past its fire height and releases. A [Footer] sits
// below the content and starts loading when a pan gesture ends at the bottom
// edge, or when the control is tapped. Neither engine renders anything: the
// visual side is a [HeaderDelegate] or [FooterDelegate] that receives
// lifecycle callbacks.
//
// # Surfaces
//
// Engines consume an abstract [Surface] rather than a platform widget. The
// host attaches an engine when the control joins a live scroll surface and
// detaches it when the control leaves:
//
//	header := refresh.NewHeader(delegate, func() {
//	    go fetch(func() { platform.Dispatch(func() { header.EndRefreshing(refresh.ResultSuccess) }) })
//	})
//	header.Attach(view)
//	defer header.Detach()
//
// While attached, the engine subscribes to offset, content size and pan
// phase changes, places its control with [Surface.SetControlOrigin] and
// reserves room with [Surface.AdjustContentInset]. Inset contributions are
// added exactly once and removed exactly once.
//
// # Threading
//
// Engines hold no locks. All notifications and calls must arrive on one
// scheduling context (the UI thread). Refresh actions are fire and forget:
// the only way back to idle is an explicit EndRefreshing call once the work
// completes.
//
// DidBeginRefreshing and the action run after the notification that caused
// the transition has returned. Set the engine's Dispatch field to post them
// to a specific loop; otherwise [platform.Dispatch] is used when a host has
// registered one. Otherwise a surface implementing [Deferrer] holds them
// until its notification has reached every observer, and the engine falls
// back to running them when its outermost entry point returns. A header
// reserves its refreshing inset in the same deferred step, so a transition
// never changes the surface while other observers are being notified.
package refresh
