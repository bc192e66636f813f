package keysetup

import "os"

// Env abstracts process environment access for testability. Setenv
// mutates only the current process's environment table; nothing is
// persisted across invocations.
type Env interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// RealEnv uses the real os package.
type RealEnv struct{}

func (r *RealEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (r *RealEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}
