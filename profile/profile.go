package profile

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPUProfile  string
	HeapProfile string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds profiling output paths for CLI applications. An empty path
// disables that profile.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags Flags

	CPUProfile  string
	HeapProfile string
}

// NewConfig creates a new [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:  "cpu-profile",
		HeapProfile: "heap-profile",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "",
		"write a CPU profile to this path")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "",
		"write a heap profile to this path on exit")
}

// NewProfiler creates a [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{Config: *c}
}

// Profiler controls the lifecycle of a profiling session.
//
// Call [Profiler.Start] before the measured work and [Profiler.Stop] after
// it. Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	Config
}

// Start begins CPU profiling if a CPU profile path is configured.
func (p *Profiler) Start() error {
	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("starting CPU profile: %w", err)
	}

	p.cpuFile = f

	return nil
}

// Stop stops CPU profiling and writes the heap snapshot if configured.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		p.cpuFile = nil

		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}
	}

	if p.HeapProfile == "" {
		return nil
	}

	f, err := os.Create(p.HeapProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating heap profile: %w", err)
	}

	defer func() { _ = f.Close() }()

	err = pprof.Lookup("heap").WriteTo(f, 0)
	if err != nil {
		return fmt.Errorf("writing heap profile: %w", err)
	}

	return nil
}
