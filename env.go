package gosquirrelstash

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FromEnv builds options from STASH_* environment variables, loading a .env
// file first when one is present in the working directory:
//
//	STASH_REDIS_URL      backend endpoint (WithEndpoint)
//	STASH_KEY_PREFIX     key namespace (WithKeyPrefix)
//	STASH_PROBE_TIMEOUT  probe bound, Go duration form such as "2s" (WithProbeTimeout)
//	STASH_OP_TIMEOUT     per-operation bound (WithOperationTimeout)
//	STASH_DEFAULT_TTL    TTL substituted for zero (WithDefaultTTL)
//
// Unset variables contribute no option, so FromEnv composes with explicit
// options and the built-in defaults:
//
//	cache := stash.New(append(stash.FromEnv(), stash.WithLogger(log))...)
func FromEnv() []Option {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("STASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var opts []Option
	if url := v.GetString("redis_url"); url != "" {
		opts = append(opts, WithEndpoint(url))
	}
	if prefix := v.GetString("key_prefix"); prefix != "" {
		opts = append(opts, WithKeyPrefix(prefix))
	}
	if d := v.GetDuration("probe_timeout"); d > 0 {
		opts = append(opts, WithProbeTimeout(d))
	}
	if d := v.GetDuration("op_timeout"); d > 0 {
		opts = append(opts, WithOperationTimeout(d))
	}
	if d := v.GetDuration("default_ttl"); d > 0 {
		opts = append(opts, WithDefaultTTL(d))
	}
	return opts
}
