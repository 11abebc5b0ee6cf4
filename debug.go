package tdc

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, every gesture
// transition is printed to stderr as it is committed.
func (in *Input) SetDebugMode(enabled bool) {
	in.debug = enabled
}

// debugLogKeyState prints the events a key raised this frame.
func (in *Input) debugLogKeyState(key GestureKey, ks *KeyState) {
	for e := KeyEvent(0); e < numKeyEvents; e++ {
		if e == Repeat || ks.Events[e] == 0 {
			continue
		}
		_, _ = fmt.Fprintf(os.Stderr, "[tdc] %s %s at (%.1f,%.1f) down %.3fs\n",
			key, e, ks.Position.X, ks.Position.Y, ks.DownTime)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, swipe starts,
// ends, and no-scroll rejections are printed to stderr.
func (c *Camera) SetDebugMode(enabled bool) {
	c.debug = enabled
}

func (c *Camera) debugLogf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tdc] camera: "+format+"\n", args...)
}
