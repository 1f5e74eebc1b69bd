package animator

import "math"

// EasingMode selects how viewpoint damping relates to frame time.
type EasingMode int

const (
	// EasingFrame applies the damping factor once per frame regardless of
	// frame duration.
	EasingFrame EasingMode = iota
	// EasingTime rescales the damping factor by elapsed frame time so that
	// the response matches EasingFrame at RefFPS.
	EasingTime
)

func (m EasingMode) String() string {
	if m == EasingTime {
		return "time"
	}
	return "frame"
}

// ParseEasingMode maps "frame" and "time" to an EasingMode.
func ParseEasingMode(s string) (EasingMode, bool) {
	switch s {
	case "", "frame":
		return EasingFrame, true
	case "time":
		return EasingTime, true
	}
	return EasingFrame, false
}

const (
	DefaultPulseSpeed     = 3.0
	DefaultPulseAmplitude = 0.05
	DefaultRotationSpeed  = 0.005
	DefaultDamping        = 0.05
	DefaultPointerGainX   = 2.0
	DefaultPointerGainY   = 2.0
	DefaultCameraZ        = 12.0
	DefaultRefFPS         = 60.0
)

// Params holds the animator settings. Pulse speed is the only field changed
// after startup and is reached through accessors.
type Params struct {
	pulseSpeed     float64
	PulseAmplitude float64
	RotationSpeed  float64
	Damping        float64
	GainX, GainY   float64
	CameraZ        float64
	Easing         EasingMode
	RefFPS         float64
}

func DefaultParams() *Params {
	return &Params{
		pulseSpeed:     DefaultPulseSpeed,
		PulseAmplitude: DefaultPulseAmplitude,
		RotationSpeed:  DefaultRotationSpeed,
		Damping:        DefaultDamping,
		GainX:          DefaultPointerGainX,
		GainY:          DefaultPointerGainY,
		CameraZ:        DefaultCameraZ,
		Easing:         EasingFrame,
		RefFPS:         DefaultRefFPS,
	}
}

func (p *Params) PulseSpeed() float64 { return p.pulseSpeed }

// SetPulseSpeed ignores non-finite values.
func (p *Params) SetPulseSpeed(s float64) {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return
	}
	p.pulseSpeed = s
}

// BoostPulse multiplies the pulse speed by factor. A result that would not
// be faster than the current speed is ignored.
func (p *Params) BoostPulse(factor float64) {
	s := p.pulseSpeed * factor
	if !(s > p.pulseSpeed) {
		return
	}
	p.SetPulseSpeed(s)
}
