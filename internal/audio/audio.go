package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/stalagsim/internal/droplet"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	DefaultVolume = 0.5
	triggerQueue  = 8
)

// Engine plays a plink each time a drop detaches. It is an anim.Observer;
// the animation loop only queues triggers, the portaudio callback turns
// them into sound.
type Engine struct {
	Stream *portaudio.Stream
	Volume float64

	rate     beep.SampleRate
	triggers chan struct{}

	mu    sync.Mutex
	mixer *beep.Mixer
	buf   [][2]float64

	Active bool
}

func NewEngine() *Engine {
	return &Engine{
		Volume:   DefaultVolume,
		rate:     beep.SampleRate(SampleRate),
		triggers: make(chan struct{}, triggerQueue),
		mixer:    &beep.Mixer{},
		buf:      make([][2]float64, BufferSize),
	}
}

func (e *Engine) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("init audio: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, e.Process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("start audio stream: %w", err)
	}
	e.Stream = stream
	e.Active = true
	return nil
}

func (e *Engine) Stop() {
	if e.Stream != nil {
		e.Stream.Stop()
		e.Stream.Close()
		e.Stream = nil
	}
	if e.Active {
		portaudio.Terminate()
	}
	e.Active = false
}

// Trigger queues a plink. When the queue is full the trigger is dropped.
func (e *Engine) Trigger() {
	select {
	case e.triggers <- struct{}{}:
	default:
	}
}

func (e *Engine) OnFrame(_ int, _ droplet.State, ev droplet.Event) {
	if ev == droplet.DetachStarted {
		e.Trigger()
	}
}

// Playing reports how many sounds are currently mixed.
func (e *Engine) Playing() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mixer.Len()
}

// Process fills a stereo output buffer. It is the portaudio callback.
func (e *Engine) Process(out [][]float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for pending := true; pending; {
		select {
		case <-e.triggers:
			e.mixer.Add(Plink(e.rate, e.Volume))
		default:
			pending = false
		}
	}

	n := len(out[0])
	if cap(e.buf) < n {
		e.buf = make([][2]float64, n)
	}
	buf := e.buf[:n]
	for i := range buf {
		buf[i] = [2]float64{}
	}
	e.mixer.Stream(buf)

	for i := range buf {
		out[0][i] = float32(clamp(buf[i][0]))
		out[1][i] = float32(clamp(buf[i][1]))
	}
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
