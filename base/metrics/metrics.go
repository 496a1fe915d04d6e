/*
Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
  - internal process time: *.time
  - external latency: *.latency
  - error: *.err
*/
package metrics

import (
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/nftcom/goledger/base/log"
)

// Ender closes a timing started by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

var client *statsd.Client

// Init dials the statsd agent once per process. Missing agent config
// degrades to a no-op client rather than failing startup.
func Init() {
	host := viper.GetString("datadog_host")
	if host == "" {
		return
	}
	c, err := statsd.New(host, statsd.WithTags([]string{
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}))
	if err != nil {
		log.Log().WithField("err", err).Warn("fail to dial statsd agent")
		return
	}
	client = c
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &metrics{pkgName: pkgName}
}

type metrics struct {
	pkgName string
}

func (m *metrics) BumpAvg(key string, val float64, tags ...string) {
	if client == nil {
		return
	}
	client.Gauge(m.pkgName+"."+key, val, tags, 1)
}

func (m *metrics) BumpSum(key string, val float64, tags ...string) {
	if client == nil {
		return
	}
	client.Count(m.pkgName+"."+key, int64(val), tags, 1)
}

func (m *metrics) BumpHistogram(key string, val float64, tags ...string) {
	if client == nil {
		return
	}
	client.Histogram(m.pkgName+"."+key, val, tags, 1)
}

// BumpTime starts a timer for the given key. Calling End() on the returned
// value records the elapsed time:
//
//	defer s.BumpTime("my.function").End()
func (m *metrics) BumpTime(key string, tags ...string) Ender {
	start := time.Now()
	return &timeTracker{
		end: func() {
			if client == nil {
				return
			}
			client.Timing(m.pkgName+"."+key, time.Since(start), tags, 1)
		},
	}
}

type timeTracker struct {
	end func()
}

func (t *timeTracker) End() {
	t.end()
}
