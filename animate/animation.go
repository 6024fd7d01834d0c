package animate

import "gogui/gui"

type Animation interface {
	// Animate advances one frame. ok is false once the final value has
	// been returned.
	Animate() (value float64, ok bool)
}

// NumericAnimation interpolates linearly between two values.
type NumericAnimation struct {
	oldValue       float64
	newValue       float64
	numFrames      int
	frameCount     int
	changePerFrame float64
}

func NewNumericAnimation(oldValue, newValue float64, numFrames int) *NumericAnimation {
	numFrames = max(numFrames, 1)
	return &NumericAnimation{
		oldValue:       oldValue,
		newValue:       newValue,
		numFrames:      numFrames,
		changePerFrame: (newValue - oldValue) / float64(numFrames),
	}
}

func (n *NumericAnimation) Animate() (float64, bool) {
	if n.frameCount >= n.numFrames {
		return n.newValue, false
	}
	n.frameCount++
	if n.frameCount == n.numFrames {
		return n.newValue, true
	}
	return n.oldValue + n.changePerFrame*float64(n.frameCount), true
}

// LengthAnimation drives a length property of an element with the values
// of an Animation, keeping the length's unit.
type LengthAnimation struct {
	anim  Animation
	unit  gui.Unit
	apply func(gui.Length)
}

// NewLengthAnimation animates from to to over frames, passing each frame's
// length to apply. Typical apply functions wrap Context.SetWidth.
func NewLengthAnimation(from, to gui.Length, frames int, apply func(gui.Length)) *LengthAnimation {
	return &LengthAnimation{
		anim:  NewNumericAnimation(from.Value, to.Value, frames),
		unit:  to.Unit,
		apply: apply,
	}
}

// Step applies the next frame and reports whether one was applied.
func (l *LengthAnimation) Step() bool {
	v, ok := l.anim.Animate()
	if !ok {
		return false
	}
	l.apply(gui.Length{Value: v, Unit: l.unit})
	return true
}
