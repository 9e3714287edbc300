// Package profile wires runtime/pprof profiling into CLI applications.
//
// A [Config] registers pprof output flags on a command; when any of them is
// set, [Config.NewProfiler] returns a [Profiler] whose Start/Stop pair
// brackets the work being measured:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	prof := cfg.NewProfiler()
//	if err := prof.Start(); err != nil {
//	    return err
//	}
//	defer prof.Stop()
//
// A zero-value Config has all profiles disabled and Start/Stop become
// no-ops, so the calls can stay unconditional.
package profile
