package devcycle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"time"
)

const METRIC_PREFIX = "devcycle.sdk"

type OutputLoggerOptions struct {
	LogCallback func(message string, err error)
	EnableDebug bool
}

type OutputLogger struct {
	options             OutputLoggerOptions
	observabilityClient IObservabilityClient
}

var keyPattern = regexp.MustCompile(`(dvc_client|dvc_mobile|dvc_server)_[a-zA-Z0-9_-]+`)

func (o *OutputLogger) Log(msg string, err error) {
	if o.isInitialized() && o.options.LogCallback != nil {
		o.options.LogCallback(sanitize(msg), err)
	} else {
		timestamp := time.Now().Format(time.RFC3339)

		formatted := fmt.Sprintf("[%s][DevCycle] %s", timestamp, msg)

		if err != nil {
			formatted += err.Error()
			fmt.Fprintln(os.Stderr, sanitize(formatted))
		} else if msg != "" {
			fmt.Println(sanitize(formatted))
		}
	}
}

func (o *OutputLogger) Debug(any interface{}) {
	if !o.isInitialized() || !o.options.EnableDebug {
		return
	}
	bytes, _ := json.MarshalIndent(any, "", "	")
	o.Log(fmt.Sprintf("%+v\n", string(bytes)), nil)
}

// LogDebug writes msg only when debug output is enabled.
func (o *OutputLogger) LogDebug(msg string, err error) {
	if !o.isInitialized() || !o.options.EnableDebug {
		return
	}
	o.Log(msg, err)
}

func (o *OutputLogger) LogError(err interface{}) {
	var errMsg error
	switch e := err.(type) {
	case string:
		errMsg = errors.New(e)
	case error:
		errMsg = e
	default:
		errMsg = errors.New(convertToString(err))
	}

	o.Increment("sdk_exceptions_count", 1, map[string]interface{}{})
	stack := make([]byte, 1024)
	n := runtime.Stack(stack, false)
	o.Log(fmt.Sprintf("Error: %s\nStack Trace:\n%s", errMsg.Error(), string(stack[:n])), errMsg)
}

func (o *OutputLogger) Initialize() {
	if o.isInitialized() && o.observabilityClient != nil {
		defer func() {
			if r := recover(); r != nil {
				o.Log("Observability client Init panicked", nil)
			}
		}()
		err := o.observabilityClient.Init(context.Background())
		if err != nil {
			o.Log("Observability client Init failed", err)
		}
	}
}

func (o *OutputLogger) Increment(metricName string, value int, tags map[string]interface{}) {
	if o.isInitialized() && o.observabilityClient != nil {
		defer func() {
			if r := recover(); r != nil {
				o.Log("Observability client Increment panicked", nil)
			}
		}()
		err := o.observabilityClient.Increment(fmt.Sprintf("%s.%s", METRIC_PREFIX, metricName), value, tags)
		if err != nil {
			o.Log("Observability client Increment failed", err)
		}
	}
}

func (o *OutputLogger) Distribution(metricName string, value float64, tags map[string]interface{}) {
	if o.isInitialized() && o.observabilityClient != nil {
		defer func() {
			if r := recover(); r != nil {
				o.Log("Observability client Distribution panicked", nil)
			}
		}()
		err := o.observabilityClient.Distribution(fmt.Sprintf("%s.%s", METRIC_PREFIX, metricName), value, tags)
		if err != nil {
			o.Log("Observability client Distribution failed", err)
		}
	}
}

func (o *OutputLogger) Shutdown() {
	if o.isInitialized() && o.observabilityClient != nil {
		defer func() {
			if r := recover(); r != nil {
				o.Log("Observability client Shutdown panicked", nil)
			}
		}()
		err := o.observabilityClient.Shutdown(context.Background())
		if err != nil {
			o.Log("Observability client Shutdown failed", err)
		}
	}
}

func (o *OutputLogger) isInitialized() bool {
	return o != nil
}

func sanitize(s string) string {
	return keyPattern.ReplaceAllString(s, "${1}_****")
}
