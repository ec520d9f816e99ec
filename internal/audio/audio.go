// Package audio sonifies a running simulation: kinetic energy opens the
// filter on an ambient pad and every resolved contact rings a short ping.
package audio

import (
	"log/slog"
	"math"
	"math/cmplx"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	maxVoices  = 8
	maxPending = 16
	pingDecay  = 0.25 // seconds to fall by 1/e
)

type ping struct {
	freq, amp float64
}

type voice struct {
	freq, amp, phase float64
}

type Processor struct {
	Stream *portaudio.Stream

	// Synthesis state, owned by the audio callback.
	Time        float64
	FilterState [2]float64
	DelayLine   [2][]float64
	DelayHead   int
	voices      []voice

	// Output analysis
	ComplexBuffer   []complex128
	Bass, Mid, High float64

	// Physics inputs, guarded by mu.
	mu           sync.Mutex
	kinetic      float64
	pending      []ping
	EnergySmooth float64

	Active bool
	log    *slog.Logger
}

func NewProcessor(log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	// 0.6 second delay for larger space
	delayLen := int(float64(SampleRate) * 0.6)

	return &Processor{
		ComplexBuffer: make([]complex128, BufferSize),
		DelayLine:     [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
		voices:        make([]voice, 0, maxVoices),
		log:           log,
	}
}

// Start opens the default output device. On failure the processor stays
// inactive and the error is returned for the caller to log.
func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	a.log.Info("audio started", "sample_rate", SampleRate, "buffer", BufferSize)
	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if !a.Active {
		return
	}
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
		a.Stream = nil
	}
	portaudio.Terminate()
	a.Active = false
	a.log.Info("audio stopped")
}

// OnStep publishes the tick's kinetic energy and queues a ping per contact.
func (a *Processor) OnStep(w *dynamo.World, contacts []dynamo.Contact, t float64) {
	ke := physics.KineticEnergy(w)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.kinetic = ke
	for _, c := range contacts {
		if len(a.pending) >= maxPending {
			break
		}
		r := w.Bodies[c.I].Radius() + w.Bodies[c.J].Radius()
		a.pending = append(a.pending, ping{freq: pingFreq(r), amp: pingAmp(c.Impulse)})
	}
}

// pingFreq tunes smaller pairs higher.
func pingFreq(radiusSum float64) float64 {
	return math.Max(110, math.Min(1760, 8800/radiusSum))
}

func pingAmp(impulse float64) float64 {
	return math.Max(0.05, math.Min(1, math.Log10(1+impulse)/6))
}

// cutoff maps kinetic energy onto a 300..1200 Hz filter on a log scale.
func cutoff(energy float64) float64 {
	if energy <= 0 {
		return 300
	}
	return 300 + 900*math.Min(math.Log10(1+energy)/8, 1)
}

// Triangle Wave: Smooth, flute-like, no harsh buzz
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// Low Pass Filter (One Pole)
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// ProcessAudio fills a stereo output buffer. It is the portaudio callback
// and may be driven directly.
func (a *Processor) ProcessAudio(out [][]float32) {
	// Gm7 Add9: G2, Bb2, D3, F3, A3
	freqs := []float64{98.00, 116.54, 146.83, 174.61, 220.00}

	a.mu.Lock()
	target := a.kinetic
	for _, p := range a.pending {
		if len(a.voices) == maxVoices {
			a.voices = a.voices[1:]
		}
		a.voices = append(a.voices, voice{freq: p.freq, amp: p.amp})
	}
	a.pending = a.pending[:0]
	a.mu.Unlock()

	// Slow morphing of energy to prevent jumps
	a.EnergySmooth = a.EnergySmooth*0.995 + target*0.005

	fc := cutoff(a.EnergySmooth)
	dt := 1.0 / float64(SampleRate)
	decay := math.Exp(-dt / pingDecay)
	vol := 0.252

	for i := 0; i < len(out[0]); i++ {
		sampleL := 0.0
		sampleR := 0.0

		for j, f := range freqs {
			oscL := triangle(a.Time * (f * 0.999))
			oscR := triangle(a.Time * (f * 1.001))
			g := 1.0 / float64(len(freqs))
			lfo := math.Sin(a.Time*0.2 + float64(j))

			sampleL += oscL * g * (0.7 + 0.3*lfo)
			sampleR += oscR * g * (0.7 + 0.3*lfo)
		}

		a.FilterState[0] = lpf(sampleL, fc, dt, a.FilterState[0])
		a.FilterState[1] = lpf(sampleR, fc, dt, a.FilterState[1])
		outL, outR := a.FilterState[0], a.FilterState[1]

		for k := range a.voices {
			v := &a.voices[k]
			s := v.amp * math.Sin(2*math.Pi*v.phase)
			outL += s
			outR += s
			v.phase += v.freq * dt
			v.amp *= decay
		}

		// Ping-pong delay
		delayL := a.DelayLine[0][a.DelayHead]
		delayR := a.DelayLine[1][a.DelayHead]
		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1
		a.DelayLine[0][a.DelayHead] = mixL * 0.7
		a.DelayLine[1][a.DelayHead] = mixR * 0.7
		a.DelayHead = (a.DelayHead + 1) % len(a.DelayLine[0])

		out[0][i] = float32(math.Tanh(mixL * vol))
		out[1][i] = float32(math.Tanh(mixR * vol))

		a.Time += dt
	}

	live := a.voices[:0]
	for _, v := range a.voices {
		if v.amp > 1e-4 {
			live = append(live, v)
		}
	}
	a.voices = live

	a.analyze(out[0])
}

// analyze buckets the left channel's spectrum into smoothed bass, mid and
// high levels for display.
func (a *Processor) analyze(buf []float32) {
	n := len(buf)
	if n > len(a.ComplexBuffer) {
		n = len(a.ComplexBuffer)
	}
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		window := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		a.ComplexBuffer[i] = complex(float64(buf[i])*window, 0)
	}
	spectrum := fft.FFT(a.ComplexBuffer[:n])

	// Bin width is SampleRate/n; the bands split near 200 Hz and 2 kHz.
	binHz := float64(SampleRate) / float64(n)
	bassSum, midSum, highSum := 0.0, 0.0, 0.0
	for i := 1; i < n/2; i++ {
		mag := cmplx.Abs(spectrum[i]) / float64(n)
		switch f := float64(i) * binHz; {
		case f < 200:
			bassSum += mag
		case f < 2000:
			midSum += mag
		default:
			highSum += mag
		}
	}

	a.mu.Lock()
	a.Bass = a.Bass*0.9 + math.Min(bassSum*4, 1)*0.1
	a.Mid = a.Mid*0.9 + math.Min(midSum*4, 1)*0.1
	a.High = a.High*0.9 + math.Min(highSum*4, 1)*0.1
	a.mu.Unlock()
}

// Levels returns the smoothed band levels of the most recent output.
func (a *Processor) Levels() (bass, mid, high float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Bass, a.Mid, a.High
}
