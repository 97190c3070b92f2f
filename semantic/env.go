package semantic

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FromEnv builds options from STASH_AI_* environment variables, loading a
// .env file first when one is present in the working directory:
//
//	STASH_AI_API_KEY    enables caching (WithAPIKey)
//	STASH_AI_CACHE_TTL  result lifetime, Go duration form (WithDefaultTTL)
//
// Unset variables contribute no option.
func FromEnv() []Option {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("STASH_AI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var opts []Option
	if key := v.GetString("api_key"); key != "" {
		opts = append(opts, WithAPIKey(key))
	}
	if d := v.GetDuration("cache_ttl"); d > 0 {
		opts = append(opts, WithDefaultTTL(d))
	}
	return opts
}
