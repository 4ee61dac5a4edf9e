//go:build !test

package audio

import (
	"encoding/binary"
	"github.com/veandco/go-sdl2/sdl"
)

// ticks worth of samples kept queued while the tone is on
const queuedTicks = 3

// Tone plays a square wave on an SDL audio device while it is switched
// on. It implements timer.ToneListener.
type Tone struct {
	device sdl.AudioDeviceID
	wave   *SquareWave

	samples []int16
	buf     []byte
	on      bool
}

// OpenTone opens the default audio device for signed 16-bit mono
// playback at SampleRate. The device starts paused.
func OpenTone() (*Tone, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, err
	}

	device, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  BufferSamples,
	}, nil, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, err
	}

	perTick := SampleRate / 60
	return &Tone{
		device:  device,
		wave:    NewSquareWave(Frequency, Volume),
		samples: make([]int16, perTick),
		buf:     make([]byte, perTick*2),
	}, nil
}

// SetTone switches the tone on or off. While on, every call tops the
// device queue up so playback does not underrun between ticks.
func (t *Tone) SetTone(on bool) {
	if !on {
		if t.on {
			sdl.PauseAudioDevice(t.device, true)
			sdl.ClearQueuedAudio(t.device)
			t.on = false
		}
		return
	}

	for sdl.GetQueuedAudioSize(t.device) < uint32(len(t.buf)*queuedTicks) {
		t.wave.Fill(t.samples)
		for i, s := range t.samples {
			binary.LittleEndian.PutUint16(t.buf[i*2:], uint16(s))
		}
		if err := sdl.QueueAudio(t.device, t.buf); err != nil {
			return
		}
	}

	if !t.on {
		sdl.PauseAudioDevice(t.device, false)
		t.on = true
	}
}

// Close closes the audio device.
func (t *Tone) Close() {
	sdl.CloseAudioDevice(t.device)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
