package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"
)

// OutputLogger is the SDK's own diagnostic logger. By default messages go to
// stdout and errors to stderr, timestamped; host applications can redirect
// everything through LogCallback instead.
type OutputLogger struct {
	options OutputLoggerOptions
}

func (o *OutputLogger) Log(msg string, err error) {
	if o.isInitialized() && o.options.LogCallback != nil {
		o.options.LogCallback(msg, err)
	} else {
		timestamp := time.Now().Format(time.RFC3339)

		formatted := fmt.Sprintf("[%s][Tracker] %s", timestamp, msg)

		if err != nil {
			formatted += err.Error()
			fmt.Fprintln(os.Stderr, formatted)
		} else if msg != "" {
			fmt.Println(formatted)
		}
	}
}

func (o *OutputLogger) Debug(any interface{}) {
	if !o.isInitialized() || !o.options.EnableDebug {
		return
	}
	bytes, _ := json.MarshalIndent(any, "", "	")
	msg := fmt.Sprintf("%+v\n", string(bytes))
	o.Log(msg, nil)
}

func (o *OutputLogger) LogError(err interface{}) {
	var errMsg error
	switch e := err.(type) {
	case string:
		errMsg = errors.New(e)
	case error:
		errMsg = e
	default:
		errMsg = toError(err)
	}

	stack := make([]byte, 1024)
	n := runtime.Stack(stack, false)
	o.Log(fmt.Sprintf("Error: %s\nStack Trace:\n%s", errMsg.Error(), string(stack[:n])), errMsg)
}

func (o *OutputLogger) isInitialized() bool {
	return o != nil
}
