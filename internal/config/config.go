// Package config is the single shared definition of the acoustic protocol.
// Sender and receiver have no negotiation channel, so both sides must load
// identical parameters out of band, either these defaults or the same YAML
// file. A mismatch is not detectable on the wire: the transfer just fails.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Samal2005/sound-chat/pkg/modem"
)

type Config struct {
	SampleRate  float64 `yaml:"sample_rate"`  // Hz
	BitDuration float64 `yaml:"bit_duration"` // seconds per symbol

	// Tone frequencies in Hz. All four must stay pairwise separable
	// within one bit window; Validate enforces that.
	StartFreq float64 `yaml:"start_freq"`
	Bit0Freq  float64 `yaml:"bit0_freq"`
	Bit1Freq  float64 `yaml:"bit1_freq"`
	EndFreq   float64 `yaml:"end_freq"`

	Amplitude      float64 `yaml:"amplitude"`       // 0..1 of full scale
	NoiseThreshold float64 `yaml:"noise_threshold"` // classifier score floor, 0..1
	SyncStep       int     `yaml:"sync_step"`       // search advance in samples, 0 = window/8
	Strict         bool    `yaml:"strict"`          // abort on corrupted symbols instead of guessing

	TimeoutSeconds float64 `yaml:"timeout"` // receive timeout in seconds
}

// Default mirrors the parameters the protocol was tuned with: a stock sound
// card and tones well inside the audible band.
func Default() Config {
	return Config{
		SampleRate:     44100,
		BitDuration:    0.1,
		StartFreq:      500,
		Bit0Freq:       1000,
		Bit1Freq:       2000,
		EndFreq:        3000,
		Amplitude:      modem.DefaultAmplitude,
		NoiseThreshold: modem.DefaultNoiseThreshold,
		TimeoutSeconds: 30,
	}
}

// Load reads a YAML protocol file over the defaults, so a file only needs to
// name the values it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read protocol config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse protocol config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Alphabet().Validate(c.Modem()); err != nil {
		return err
	}
	if c.Amplitude < 0 || c.Amplitude > 1 {
		return fmt.Errorf("amplitude %g outside 0..1", c.Amplitude)
	}
	if c.NoiseThreshold < 0 || c.NoiseThreshold >= 1 {
		return fmt.Errorf("noise threshold %g outside 0..1", c.NoiseThreshold)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout %g s must be positive", c.TimeoutSeconds)
	}
	return nil
}

func (c Config) Modem() modem.Config {
	return modem.Config{SampleRate: c.SampleRate, BitDuration: c.BitDuration}
}

func (c Config) Alphabet() modem.Alphabet {
	return modem.Alphabet{Start: c.StartFreq, Bit0: c.Bit0Freq, Bit1: c.Bit1Freq, End: c.EndFreq}
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}

func (c Config) NewModulator() *modem.Modulator {
	return &modem.Modulator{
		Alphabet:  c.Alphabet(),
		Config:    c.Modem(),
		Amplitude: c.Amplitude,
	}
}

func (c Config) NewDemodulator() *modem.Demodulator {
	return &modem.Demodulator{
		Classifier: &modem.Classifier{
			Alphabet:       c.Alphabet(),
			Config:         c.Modem(),
			NoiseThreshold: c.NoiseThreshold,
		},
		SyncStep: c.SyncStep,
		Strict:   c.Strict,
	}
}
