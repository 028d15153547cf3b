package tracker

import (
	"runtime"
)

const trackerVersion = "go-1.0.0"

type trackerMetadata struct {
	SDKType         string `json:"sdkType"`
	SDKVersion      string `json:"sdkVersion"`
	LanguageVersion string `json:"languageVersion"`
	SessionID       string `json:"sessionID"`
}

func getTrackerMetadata() trackerMetadata {
	return trackerMetadata{
		SDKType:         "go-tracker",
		SDKVersion:      "1.0.0",
		LanguageVersion: runtime.Version()[2:],
		SessionID:       SessionID(),
	}
}
