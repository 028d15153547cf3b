package tracker

import (
	"errors"
	"fmt"
	"time"
)

func defaultString(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

// Allows for overriding in tests
var now = time.Now

func getUnixMilli() int64 {
	return now().UnixMilli()
}

func toError(v interface{}) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("%+v", v)
	}
}
