package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// DefaultSampleRate is the rate the speaker is opened at; every asset is
// resampled to it when decoded.
const DefaultSampleRate beep.SampleRate = 44100

// Output is the sound device the player mixes into.
type Output interface {
	Init(rate beep.SampleRate) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Clear()
}

// Options configure a Player.
type Options struct {
	Output     Output
	SampleRate beep.SampleRate
	// Volume is a base-2 gain; 0 plays assets unchanged, -1 halves them.
	Volume float64
}

// Player plays the looping ambience sound and the one-shot interval sound.
// Decoded assets are cached per reference; each alert replays the cached
// buffer from its start rather than decoding the file again.
type Player struct {
	mu       sync.Mutex
	output   Output
	rate     beep.SampleRate
	volume   float64
	ready    bool
	buffers  map[string]*beep.Buffer
	ambience *beep.Ctrl
	ambRef   string
	paused   bool
	loads    int
}

// NewPlayer creates a Player. The output device is opened lazily on first use.
func NewPlayer(opts Options) *Player {
	if opts.Output == nil {
		opts.Output = SpeakerOutput()
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	return &Player{
		output:  opts.Output,
		rate:    opts.SampleRate,
		volume:  opts.Volume,
		buffers: make(map[string]*beep.Buffer),
	}
}

// StartAmbience loops the asset at ref until StopAmbience. Starting the
// asset that is already playing does nothing; starting a paused one resumes
// it where it left off.
func (p *Player) StartAmbience(ref string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ambience != nil && p.ambRef == ref {
		p.setPausedLocked(false)
		return nil
	}
	p.stopAmbienceLocked()

	buffer, err := p.bufferLocked(ref)
	if err != nil {
		return err
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buffer.Streamer(0, buffer.Len()))}
	p.ambience = ctrl
	p.ambRef = ref
	p.paused = false
	p.output.Play(p.withVolume(ctrl))
	return nil
}

// StopAmbience silences the ambience loop if one is playing.
func (p *Player) StopAmbience() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopAmbienceLocked()
}

// PauseAmbience holds the ambience loop at its current position.
func (p *Player) PauseAmbience() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPausedLocked(true)
}

// AmbiencePlaying reports whether the ambience loop is audible.
func (p *Player) AmbiencePlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ambience != nil && !p.paused
}

// PlayInterval plays the asset at ref once from the beginning.
func (p *Player) PlayInterval(ref string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	buffer, err := p.bufferLocked(ref)
	if err != nil {
		return err
	}
	p.output.Play(p.withVolume(buffer.Streamer(0, buffer.Len())))
	return nil
}

// Close stops all playback and drops cached assets.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopAmbienceLocked()
	if p.ready {
		p.output.Clear()
	}
	p.buffers = make(map[string]*beep.Buffer)
}

func (p *Player) stopAmbienceLocked() {
	if p.ambience == nil {
		return
	}
	p.output.Lock()
	p.ambience.Streamer = nil
	p.output.Unlock()
	p.ambience = nil
	p.ambRef = ""
	p.paused = false
}

func (p *Player) setPausedLocked(paused bool) {
	if p.ambience == nil || p.paused == paused {
		return
	}
	p.output.Lock()
	p.ambience.Paused = paused
	p.output.Unlock()
	p.paused = paused
}

func (p *Player) bufferLocked(ref string) (*beep.Buffer, error) {
	if buffer, ok := p.buffers[ref]; ok {
		return buffer, nil
	}
	if !p.ready {
		if err := p.output.Init(p.rate); err != nil {
			return nil, fmt.Errorf("init audio output: %w", err)
		}
		p.ready = true
	}
	buffer, err := decodeBuffer(ref, p.rate)
	if err != nil {
		return nil, err
	}
	p.loads++
	p.buffers[ref] = buffer
	return buffer, nil
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	if p.volume == 0 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
		Silent:   false,
	}
}

type speakerOutput struct {
	once sync.Once
	err  error
}

var defaultSpeaker = &speakerOutput{}

// SpeakerOutput returns the process-wide speaker device.
func SpeakerOutput() Output {
	return defaultSpeaker
}

func (s *speakerOutput) Init(rate beep.SampleRate) error {
	s.once.Do(func() {
		s.err = speaker.Init(rate, rate.N(time.Second/10))
	})
	return s.err
}

func (s *speakerOutput) Play(st beep.Streamer) { speaker.Play(st) }

func (s *speakerOutput) Lock() { speaker.Lock() }

func (s *speakerOutput) Unlock() { speaker.Unlock() }

func (s *speakerOutput) Clear() { speaker.Clear() }
