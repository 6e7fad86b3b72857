package sfx

import "math"

// MaxVolumeLevel is the highest step of the volume setting scale.
const MaxVolumeLevel = 9

// VolumeFromSetting maps a volume setting in [0, MaxVolumeLevel] to a linear
// gain. Level 0 is silent; the other levels follow 0.05^(1-level/9), a 26 dB
// range ending at unity. Levels outside the scale are clamped.
func VolumeFromSetting(level int) float64 {
	if level <= 0 {
		return 0
	}
	level = min(level, MaxVolumeLevel)
	return math.Pow(0.05, 1-float64(level)/MaxVolumeLevel)
}
