package game

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/decker502/skyshooter/pkg/components"
)

// SampleRate 合成与播放共用的采样率
const SampleRate = 48000

const synthRate = beep.SampleRate(SampleRate)

// waveform 振荡器波形
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// tone 固定频率的振荡器，输出 duration 长度后结束
type tone struct {
	freq   float64
	wave   waveform
	phase  float64
	pos    int
	length int
	noise  *rand.Rand
}

func newTone(freq float64, duration time.Duration, wave waveform) *tone {
	return &tone{
		freq:   freq,
		wave:   wave,
		length: synthRate.N(duration),
		// 固定种子，保证每次合成的噪声一致
		noise: rand.New(rand.NewPCG(0x5eed, uint64(freq))),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case waveSaw:
			v = 2 * (t.phase - 0.5)
		case waveNoise:
			v = t.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(synthRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade 线性起音/释音包络
type fade struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newFade(src beep.Streamer, duration, attack, release time.Duration) *fade {
	return &fade{
		src:     src,
		total:   synthRate.N(duration),
		attack:  synthRate.N(attack),
		release: synthRate.N(release),
	}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.src.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.pos < f.attack {
			gain = float64(f.pos) / float64(f.attack)
		}
		if remaining := f.total - f.pos; f.release > 0 && remaining < f.release {
			gain = math.Max(0, float64(remaining)/float64(f.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.src.Err() }

// note 一个带包络的音
func note(freq float64, duration time.Duration, wave waveform) beep.Streamer {
	return newFade(newTone(freq, duration, wave), duration, 4*time.Millisecond, duration/2)
}

// gain 线性音量，0 为静音
func gain(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// SynthesizeCue 合成指定音效的波形
// 游戏没有音频文件，所有音效都在启动时程序化生成
//
// 返回：
//   - beep.Streamer: 有限长度的立体声流；未知 ID 返回 nil
func SynthesizeCue(id components.SoundID) beep.Streamer {
	switch id {
	case components.SoundShoot:
		// 短促的方波“哔”声，频率向下滑
		return gain(beep.Seq(
			note(1046.5, 25*time.Millisecond, waveSquare),
			note(784.0, 35*time.Millisecond, waveSquare),
		), 0.35)
	case components.SoundExplosion:
		const d = 600 * time.Millisecond
		return beep.Mix(
			gain(newFade(newTone(0, d, waveNoise), d, 5*time.Millisecond, 500*time.Millisecond), 0.6),
			gain(newFade(newTone(55, d, waveSaw), d, 5*time.Millisecond, 450*time.Millisecond), 0.4),
		)
	case components.SoundAchievement:
		// C6 E6 G6 上行琶音
		return gain(beep.Seq(
			note(1046.5, 80*time.Millisecond, waveSine),
			note(1318.5, 80*time.Millisecond, waveSine),
			note(1568.0, 160*time.Millisecond, waveSine),
		), 0.6)
	case components.SoundSoundtrack:
		return soundtrack()
	default:
		return nil
	}
}

// soundtrack 两小节的低音琶音，循环播放
func soundtrack() beep.Streamer {
	bass := []float64{110.0, 130.8, 164.8, 130.8, 98.0, 123.5, 146.8, 123.5}
	lead := []float64{440.0, 523.3, 659.3, 523.3, 392.0, 493.9, 587.3, 493.9}
	const step = 220 * time.Millisecond

	parts := make([]beep.Streamer, 0, len(bass))
	for i := range bass {
		parts = append(parts, beep.Mix(
			gain(note(bass[i], step, waveSaw), 0.5),
			gain(note(lead[i], step, waveSine), 0.3),
		))
	}
	return beep.Seq(parts...)
}

// maxCueLength 单个音效的最大长度
const maxCueLength = 10 * time.Second

// RenderPCM 把有限长度的流渲染为 16 位小端立体声 PCM
// 格式与 ebiten audio.Context.NewPlayerFromBytes 的要求一致，超过 maxCueLength 的部分被截断
func RenderPCM(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	s = beep.Take(synthRate.N(maxCueLength), s)

	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
