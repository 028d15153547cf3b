package tracker

// Size is a width/height pair in pixels, used for the subject's screen
// resolution and viewport.
type Size struct {
	Width  int
	Height int
}

// SubjectConfiguration carries initial values for a Subject. Zero-value
// string fields and nil pointers mean "leave unset". It is consumed by the
// internal subject constructor; the package-level tracker wiring passes it
// through Options.
type SubjectConfiguration struct {
	PlatformContext    *bool
	GeoLocationContext *bool

	UserID        string
	NetworkUserID string
	DomainUserID  string
	Useragent     string
	IPAddress     string
	Timezone      string
	Language      string

	ScreenResolution *Size
	ScreenViewPort   *Size
	ColorDepth       *int

	IPCountryOptions *IPCountryOptions
	UAParserOptions  *UAParserOptions
}
