package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	cfg "github.com/automoto/nightlight/config"
)

// ToneLoader synthesizes the game's sound effects and caches them as 16-bit
// little endian stereo PCM, the format ebiten's audio players read.
type ToneLoader struct {
	sfxCache   map[string][]byte
	sampleRate int
	rng        *rand.Rand
}

// NewToneLoader creates a loader producing samples at sampleRate.
func NewToneLoader(sampleRate int) *ToneLoader {
	return &ToneLoader{
		sfxCache:   make(map[string][]byte),
		sampleRate: sampleRate,
		rng:        rand.New(rand.NewSource(1)),
	}
}

// Preload synthesizes every configured clip.
func (l *ToneLoader) Preload() error {
	for clip := range cfg.Sound.Tones {
		if _, err := l.PCM(clip); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate drops cached clips so retuned tones are synthesized again.
func (l *ToneLoader) Invalidate() {
	l.sfxCache = make(map[string][]byte)
}

// PCM returns the samples for a clip, synthesizing it on first use.
func (l *ToneLoader) PCM(clip string) ([]byte, error) {
	if cached, ok := l.sfxCache[clip]; ok {
		return cached, nil
	}
	tone, ok := cfg.Sound.Tones[clip]
	if !ok {
		return nil, fmt.Errorf("no tone configured for clip %q", clip)
	}
	if tone.Duration <= 0 {
		return nil, fmt.Errorf("tone %q has no duration", clip)
	}
	pcm := l.synthesize(tone)
	l.sfxCache[clip] = pcm
	return pcm, nil
}

func (l *ToneLoader) synthesize(t cfg.Tone) []byte {
	n := int(t.Duration * float64(l.sampleRate))
	out := make([]byte, n*4)
	attack := int(0.01 * float64(l.sampleRate))
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartFreq + (t.EndFreq-t.StartFreq)*progress
		phase += 2 * math.Pi * freq / float64(l.sampleRate)

		v := math.Sin(phase)
		if t.Noise > 0 {
			v = v*(1-t.Noise) + (l.rng.Float64()*2-1)*t.Noise
		}
		if t.Tremolo > 0 {
			v *= 0.5 + 0.5*math.Sin(2*math.Pi*t.Tremolo*float64(i)/float64(l.sampleRate))
		}

		// short attack, linear release
		env := 1 - progress
		if i < attack {
			env *= float64(i) / float64(attack)
		}
		s := int16(v * env * t.Volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
