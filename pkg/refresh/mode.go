package refresh

import (
	"fmt"
	"strings"
)

// FooterMode selects which gestures a stock footer delegate honors.
type FooterMode int

const (
	// ModeScrollAndTap loads on both scroll release and tap.
	ModeScrollAndTap FooterMode = iota
	// ModeScroll loads only on scroll release.
	ModeScroll
	// ModeTap loads only on tap.
	ModeTap
)

func (m FooterMode) String() string {
	switch m {
	case ModeScroll:
		return "scroll"
	case ModeTap:
		return "tap"
	default:
		return "scroll_and_tap"
	}
}

// AllowsScroll reports whether releasing a pan at the bottom should load.
func (m FooterMode) AllowsScroll() bool {
	return m != ModeTap
}

// AllowsTap reports whether tapping the footer should load.
func (m FooterMode) AllowsTap() bool {
	return m != ModeScroll
}

// ParseFooterMode parses the names produced by FooterMode.String.
// An empty string selects ModeScrollAndTap.
func ParseFooterMode(s string) (FooterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scroll_and_tap":
		return ModeScrollAndTap, nil
	case "scroll":
		return ModeScroll, nil
	case "tap":
		return ModeTap, nil
	default:
		return ModeScrollAndTap, fmt.Errorf("unknown footer mode %q", s)
	}
}
