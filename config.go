package gosquirrelstash

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Keksclan/goSquirrelStash/tracing"
)

// config holds the internal configuration assembled via functional options.
type config struct {
	endpoint     string
	keyPrefix    string
	probeTimeout time.Duration
	opTimeout    time.Duration
	defaultTTL   time.Duration
	warnInterval time.Duration
	logger       logrus.FieldLogger
	tracing      *tracing.TracingConfig
}
