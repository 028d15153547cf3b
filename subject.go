package tracker

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Subject holds the attributes of the user/device being tracked and projects
// them into the payloads merged into every outgoing event.
//
// A Subject is not safe for concurrent use. It is owned and mutated by a
// single Tracker; callers that share one across goroutines must supply their
// own lock, or risk projecting a partially-updated set of fields.
type Subject struct {
	platformContext    bool
	geoLocationContext bool

	userID        string
	networkUserID string
	domainUserID  string
	useragent     string
	ipAddress     string
	timezone      string
	language      string

	screenResolution *Size
	screenViewPort   *Size
	colorDepth       *int

	geoLatitude         *float64
	geoLongitude        *float64
	geoLatLongAccuracy  *float64
	geoAltitude         *float64
	geoAltitudeAccuracy *float64
	geoBearing          *float64
	geoSpeed            *float64
	geoTimestamp        *int64

	platform *platformInfo
}

// NewSubject returns a subject with both the platform and geolocation
// contexts disabled. Timezone and language are populated from the runtime
// environment.
func NewSubject() *Subject {
	return NewSubjectWithContexts(false, false)
}

// NewSubjectWithContexts returns a subject which optionally adds platform and
// geolocation pairs to events. The flags are fixed for the subject's
// lifetime. When platformContext is true the platform defaults are captured
// at construction time.
func NewSubjectWithContexts(platformContext bool, geoLocationContext bool) *Subject {
	return newSubject(platformContext, geoLocationContext, nil)
}

// newSubject additionally reads flags and field defaults from a
// SubjectConfiguration. With a nil configuration it is equivalent to
// NewSubjectWithContexts. Internal constructor, used by the tracker wiring
// and tests.
func newSubject(platformContext bool, geoLocationContext bool, config *SubjectConfiguration) *Subject {
	s := &Subject{
		platformContext:    platformContext,
		geoLocationContext: geoLocationContext,
		timezone:           systemTimezone(),
		language:           systemLanguage(),
	}

	uaOptions := UAParserOptions{}
	ipOptions := IPCountryOptions{}
	if config != nil {
		if config.PlatformContext != nil {
			s.platformContext = *config.PlatformContext
		}
		if config.GeoLocationContext != nil {
			s.geoLocationContext = *config.GeoLocationContext
		}
		if config.UAParserOptions != nil {
			uaOptions = *config.UAParserOptions
		}
		if config.IPCountryOptions != nil {
			ipOptions = *config.IPCountryOptions
		}
	}

	if s.platformContext {
		s.platform = newPlatformInfo(uaOptions, ipOptions)
	}

	if config != nil {
		s.applyConfiguration(config)
	}
	return s
}

func (s *Subject) applyConfiguration(config *SubjectConfiguration) {
	if config.UserID != "" {
		s.userID = config.UserID
	}
	if config.NetworkUserID != "" {
		s.networkUserID = config.NetworkUserID
	}
	if config.DomainUserID != "" {
		s.domainUserID = config.DomainUserID
	}
	if config.Useragent != "" {
		s.useragent = config.Useragent
	}
	if config.IPAddress != "" {
		s.ipAddress = config.IPAddress
	}
	if config.Timezone != "" {
		s.timezone = config.Timezone
	}
	if config.Language != "" {
		s.language = config.Language
	}
	if config.ScreenResolution != nil {
		res := *config.ScreenResolution
		s.screenResolution = &res
	}
	if config.ScreenViewPort != nil {
		vp := *config.ScreenViewPort
		s.screenViewPort = &vp
	}
	if config.ColorDepth != nil {
		cd := *config.ColorDepth
		s.colorDepth = &cd
	}
}

// PlatformContextEnabled reports whether the subject adds platform pairs to
// events. Fixed at construction.
func (s *Subject) PlatformContextEnabled() bool { return s.platformContext }

// GeoLocationContextEnabled reports whether the subject adds geolocation
// pairs to events. Fixed at construction.
func (s *Subject) GeoLocationContextEnabled() bool { return s.geoLocationContext }

func setNonEmpty(field string, dst *string, v string) error {
	if v == "" {
		return &InvalidArgumentError{Field: field, Reason: "must not be empty"}
	}
	*dst = v
	return nil
}

func setFinite(field string, dst **float64, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidArgumentError{Field: field, Reason: "must be a finite number"}
	}
	val := v
	*dst = &val
	return nil
}

// SetUserID sets the business user ID.
func (s *Subject) SetUserID(uid string) error {
	return setNonEmpty("userId", &s.userID, uid)
}

// SetNetworkUserID sets the network user ID, the cookie-based identifier
// assigned by the collector.
func (s *Subject) SetNetworkUserID(nuid string) error {
	return setNonEmpty("networkUserId", &s.networkUserID, nuid)
}

// SetDomainUserID sets the domain user ID, the first-party cookie identifier.
func (s *Subject) SetDomainUserID(duid string) error {
	return setNonEmpty("domainUserId", &s.domainUserID, duid)
}

// SetUseragent sets the user agent (also known as browser string).
func (s *Subject) SetUseragent(useragent string) error {
	return setNonEmpty("useragent", &s.useragent, useragent)
}

// SetIPAddress sets the user's IP address.
func (s *Subject) SetIPAddress(ip string) error {
	return setNonEmpty("ipAddress", &s.ipAddress, ip)
}

// SetTimezone sets the user's timezone.
func (s *Subject) SetTimezone(timezone string) error {
	return setNonEmpty("timezone", &s.timezone, timezone)
}

// SetLanguage sets the user's language.
func (s *Subject) SetLanguage(lang string) error {
	return setNonEmpty("language", &s.language, lang)
}

// SetResolution sets the screen resolution in pixels.
func (s *Subject) SetResolution(width int, height int) error {
	if width < 0 || height < 0 {
		return &InvalidArgumentError{Field: "screenResolution", Reason: "dimensions must be non-negative"}
	}
	s.screenResolution = &Size{Width: width, Height: height}
	return nil
}

// SetViewPort sets the viewport dimensions in pixels.
func (s *Subject) SetViewPort(width int, height int) error {
	if width < 0 || height < 0 {
		return &InvalidArgumentError{Field: "screenViewPort", Reason: "dimensions must be non-negative"}
	}
	s.screenViewPort = &Size{Width: width, Height: height}
	return nil
}

// SetColorDepth sets the screen color depth in bits per pixel.
func (s *Subject) SetColorDepth(depth int) error {
	s.colorDepth = &depth
	return nil
}

// SetGeoLatitude sets the latitude for the geolocation context.
func (s *Subject) SetGeoLatitude(latitude float64) error {
	return setFinite("geoLatitude", &s.geoLatitude, latitude)
}

// SetGeoLongitude sets the longitude for the geolocation context.
func (s *Subject) SetGeoLongitude(longitude float64) error {
	return setFinite("geoLongitude", &s.geoLongitude, longitude)
}

// SetGeoLatLongAccuracy sets the lat/long accuracy in meters.
func (s *Subject) SetGeoLatLongAccuracy(accuracy float64) error {
	return setFinite("geoLatLongAccuracy", &s.geoLatLongAccuracy, accuracy)
}

// SetGeoAltitude sets the altitude for the geolocation context.
func (s *Subject) SetGeoAltitude(altitude float64) error {
	return setFinite("geoAltitude", &s.geoAltitude, altitude)
}

// SetGeoAltitudeAccuracy sets the altitude accuracy in meters.
func (s *Subject) SetGeoAltitudeAccuracy(accuracy float64) error {
	return setFinite("geoAltitudeAccuracy", &s.geoAltitudeAccuracy, accuracy)
}

// SetGeoBearing sets the bearing for the geolocation context.
func (s *Subject) SetGeoBearing(bearing float64) error {
	return setFinite("geoBearing", &s.geoBearing, bearing)
}

// SetGeoSpeed sets the speed for the geolocation context.
func (s *Subject) SetGeoSpeed(speed float64) error {
	return setFinite("geoSpeed", &s.geoSpeed, speed)
}

// SetGeoTimestamp sets the unix-millisecond instant the geolocation fix was
// taken at. Negative values are valid pre-1970 instants.
func (s *Subject) SetGeoTimestamp(timestamp int64) error {
	s.geoTimestamp = &timestamp
	return nil
}

func (s *Subject) UserID() string { return s.userID }

func (s *Subject) NetworkUserID() string { return s.networkUserID }

func (s *Subject) DomainUserID() string { return s.domainUserID }

func (s *Subject) Useragent() string { return s.useragent }

func (s *Subject) IPAddress() string { return s.ipAddress }

func (s *Subject) Timezone() string { return s.timezone }

func (s *Subject) Language() string { return s.language }

func (s *Subject) ScreenResolution() *Size { return s.screenResolution }

func (s *Subject) ScreenViewPort() *Size { return s.screenViewPort }

func (s *Subject) ColorDepth() *int { return s.colorDepth }

func (s *Subject) GeoLatitude() *float64 { return s.geoLatitude }

func (s *Subject) GeoLongitude() *float64 { return s.geoLongitude }

func (s *Subject) GeoLatLongAccuracy() *float64 { return s.geoLatLongAccuracy }

func (s *Subject) GeoAltitude() *float64 { return s.geoAltitude }

func (s *Subject) GeoAltitudeAccuracy() *float64 { return s.geoAltitudeAccuracy }

func (s *Subject) GeoBearing() *float64 { return s.geoBearing }

func (s *Subject) GeoSpeed() *float64 { return s.geoSpeed }

func (s *Subject) GeoTimestamp() *int64 { return s.geoTimestamp }

// GetStandardDict returns the standard pairs to decorate an event with.
// Fields that were never set are omitted.
func (s *Subject) GetStandardDict() *Payload {
	p := NewPayload()
	p.Add(keyUserID, s.userID)
	p.Add(keyNetworkUserID, s.networkUserID)
	p.Add(keyDomainUserID, s.domainUserID)
	p.Add(keyUseragent, s.useragent)
	p.Add(keyIPAddress, s.ipAddress)
	p.Add(keyTimezone, s.timezone)
	p.Add(keyLanguage, s.language)
	if s.screenResolution != nil {
		p.Add(keyResolution, formatSize(*s.screenResolution))
	}
	if s.screenViewPort != nil {
		p.Add(keyViewPort, formatSize(*s.screenViewPort))
	}
	if s.colorDepth != nil {
		p.Add(keyColorDepth, strconv.Itoa(*s.colorDepth))
	}
	return p
}

// GetPlatformDict returns the platform pairs to decorate an event with, or
// nil if the platform context is not enabled.
func (s *Subject) GetPlatformDict() *Payload {
	if !s.platformContext || s.platform == nil {
		return nil
	}
	return s.platform.dict(s.useragent, s.ipAddress)
}

// GetGeoLocationDict returns the geolocation pairs, or nil if the
// geolocation context is not enabled or latitude/longitude are not yet
// known. All other geolocation fields are optional additions.
func (s *Subject) GetGeoLocationDict() map[string]interface{} {
	if !s.geoLocationContext {
		return nil
	}
	if s.geoLatitude == nil || s.geoLongitude == nil {
		return nil
	}
	dict := map[string]interface{}{
		keyGeoLatitude:  *s.geoLatitude,
		keyGeoLongitude: *s.geoLongitude,
	}
	if s.geoLatLongAccuracy != nil {
		dict[keyGeoLatLongAccuracy] = *s.geoLatLongAccuracy
	}
	if s.geoAltitude != nil {
		dict[keyGeoAltitude] = *s.geoAltitude
	}
	if s.geoAltitudeAccuracy != nil {
		dict[keyGeoAltitudeAcc] = *s.geoAltitudeAccuracy
	}
	if s.geoBearing != nil {
		dict[keyGeoBearing] = *s.geoBearing
	}
	if s.geoSpeed != nil {
		dict[keyGeoSpeed] = *s.geoSpeed
	}
	if s.geoTimestamp != nil {
		dict[keyGeoTimestamp] = *s.geoTimestamp
	}
	return dict
}

func formatSize(size Size) string {
	return fmt.Sprintf("%dx%d", size.Width, size.Height)
}

func systemTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	zone, _ := now().Zone()
	return zone
}

func systemLanguage() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		// "en_US.UTF-8" -> "en-US"
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}
