// Package audio provides the tone generator that sounds while the CHIP-8
// sound timer is running: a fixed square wave, played through SDL.
package audio

const (
	// SampleRate is the number of samples per second.
	SampleRate = 44100
	// Frequency is the pitch of the tone in Hz.
	Frequency = 440
	// Volume is the amplitude of the square wave.
	Volume = 3000
	// BufferSamples is the number of samples in a device buffer.
	BufferSamples = 512
)

// SquareWave generates signed 16-bit mono samples of a square wave. The
// position in the wave is kept across calls to Fill, so consecutive
// buffers join without a phase jump.
type SquareWave struct {
	period int // samples per half period
	volume int16
	index  uint32
}

// NewSquareWave returns a square wave of the given frequency and volume
// at SampleRate.
func NewSquareWave(frequency int, volume int16) *SquareWave {
	period := SampleRate / frequency / 2
	if period < 1 {
		period = 1
	}
	return &SquareWave{period: period, volume: volume}
}

// Fill writes the next len(buf) samples into buf.
func (w *SquareWave) Fill(buf []int16) {
	for i := range buf {
		if (w.index/uint32(w.period))%2 == 1 {
			buf[i] = w.volume
		} else {
			buf[i] = -w.volume
		}
		w.index++
	}
}

// Reset rewinds the wave to its start.
func (w *SquareWave) Reset() {
	w.index = 0
}
