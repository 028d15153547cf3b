package tracker

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestSubjectSetters(t *testing.T) {
	s := NewSubject()
	if err := s.SetUserID("u1"); err != nil {
		t.Errorf("Expected no error setting user id, got %v", err)
	}
	if s.UserID() != "u1" {
		t.Errorf("Expected user id u1, got %s", s.UserID())
	}
	if err := s.SetNetworkUserID("n1"); err != nil || s.NetworkUserID() != "n1" {
		t.Errorf("Network user id not set correctly")
	}
	if err := s.SetDomainUserID("d1"); err != nil || s.DomainUserID() != "d1" {
		t.Errorf("Domain user id not set correctly")
	}
	if err := s.SetUseragent("Mozilla/5.0"); err != nil || s.Useragent() != "Mozilla/5.0" {
		t.Errorf("Useragent not set correctly")
	}
	if err := s.SetIPAddress("10.0.0.1"); err != nil || s.IPAddress() != "10.0.0.1" {
		t.Errorf("IP address not set correctly")
	}
	if err := s.SetTimezone("Europe/London"); err != nil || s.Timezone() != "Europe/London" {
		t.Errorf("Timezone not set correctly")
	}
	if err := s.SetLanguage("en-GB"); err != nil || s.Language() != "en-GB" {
		t.Errorf("Language not set correctly")
	}
	if err := s.SetColorDepth(24); err != nil || s.ColorDepth() == nil || *s.ColorDepth() != 24 {
		t.Errorf("Color depth not set correctly")
	}
	if err := s.SetGeoLatitude(1.5); err != nil || s.GeoLatitude() == nil || *s.GeoLatitude() != 1.5 {
		t.Errorf("Latitude not set correctly")
	}
	if err := s.SetGeoTimestamp(1000); err != nil || s.GeoTimestamp() == nil || *s.GeoTimestamp() != 1000 {
		t.Errorf("Geo timestamp not set correctly")
	}
}

func TestSubjectEmptyValuesAreNoOps(t *testing.T) {
	s := NewSubject()
	if err := s.SetUserID("u1"); err != nil {
		t.Errorf("Expected no error setting user id, got %v", err)
	}

	err := s.SetUserID("")
	if err == nil {
		t.Errorf("Expected an error setting an empty user id")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected error to match ErrInvalidArgument, got %v", err)
	}
	if s.UserID() != "u1" {
		t.Errorf("Expected empty set to leave prior value unchanged, got %q", s.UserID())
	}

	for _, set := range []func() error{
		func() error { return s.SetNetworkUserID("") },
		func() error { return s.SetDomainUserID("") },
		func() error { return s.SetUseragent("") },
		func() error { return s.SetIPAddress("") },
		func() error { return s.SetTimezone("") },
		func() error { return s.SetLanguage("") },
	} {
		if err := set(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument for empty value, got %v", err)
		}
	}
}

func TestSubjectRejectsBadNumbers(t *testing.T) {
	s := NewSubject()
	if err := s.SetGeoLatitude(math.NaN()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for NaN latitude, got %v", err)
	}
	if s.GeoLatitude() != nil {
		t.Errorf("Expected latitude to remain unset after rejected value")
	}
	if err := s.SetResolution(-1, 1080); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative resolution width")
	}
	if err := s.SetViewPort(100, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative viewport height")
	}
}

func TestGeoTimestampAcceptsPre1970Instants(t *testing.T) {
	s := NewSubject()
	if err := s.SetGeoTimestamp(-5); err != nil {
		t.Errorf("Expected no error for a pre-1970 instant, got %v", err)
	}
	if s.GeoTimestamp() == nil || *s.GeoTimestamp() != -5 {
		t.Errorf("Expected pre-1970 geo timestamp to be stored")
	}
}

func TestStandardDictOmitsUnsetFields(t *testing.T) {
	t.Setenv("TZ", "America/New_York")
	t.Setenv("LC_ALL", "en_US.UTF-8")
	s := NewSubject()
	_ = s.SetUserID("u1")

	dict := s.GetStandardDict()
	if v, ok := dict.Get("uid"); !ok || v != "u1" {
		t.Errorf("Expected uid -> u1 in standard dict")
	}
	if _, ok := dict.Get("tnuid"); ok {
		t.Errorf("Expected no tnuid key for an unset network user id")
	}
	if _, ok := dict.Get("duid"); ok {
		t.Errorf("Expected no duid key for an unset domain user id")
	}
	if _, ok := dict.Get("res"); ok {
		t.Errorf("Expected no res key for an unset resolution")
	}
	if _, ok := dict.Get("cd"); ok {
		t.Errorf("Expected no cd key for an unset color depth")
	}
	if v, ok := dict.Get("tz"); !ok || v != "America/New_York" {
		t.Errorf("Expected system-derived timezone in standard dict, got %q", v)
	}
	if v, ok := dict.Get("lang"); !ok || v != "en-US" {
		t.Errorf("Expected system-derived language in standard dict, got %q", v)
	}
}

func TestStandardDictFormatsDimensions(t *testing.T) {
	s := NewSubject()
	_ = s.SetResolution(1920, 1080)
	_ = s.SetViewPort(1280, 720)
	_ = s.SetColorDepth(32)

	dict := s.GetStandardDict()
	if v, _ := dict.Get("res"); v != "1920x1080" {
		t.Errorf("Expected res 1920x1080, got %q", v)
	}
	if v, _ := dict.Get("vp"); v != "1280x720" {
		t.Errorf("Expected vp 1280x720, got %q", v)
	}
	if v, _ := dict.Get("cd"); v != "32" {
		t.Errorf("Expected cd 32, got %q", v)
	}
}

func TestStandardDictKeys(t *testing.T) {
	s := NewSubject()
	_ = s.SetUserID("u")
	_ = s.SetNetworkUserID("n")
	_ = s.SetDomainUserID("d")
	_ = s.SetUseragent("agent")
	_ = s.SetIPAddress("127.0.0.1")
	_ = s.SetTimezone("UTC")
	_ = s.SetLanguage("fr")

	dict := s.GetStandardDict().Map()
	expected := map[string]string{
		"uid":   "u",
		"tnuid": "n",
		"duid":  "d",
		"ua":    "agent",
		"ip":    "127.0.0.1",
		"tz":    "UTC",
		"lang":  "fr",
	}
	if !reflect.DeepEqual(dict, expected) {
		t.Errorf("Standard dict keys incorrect: %v", dict)
	}
}

func TestPlatformDictGating(t *testing.T) {
	s := newOfflineSubject(false, false)
	_ = s.SetUseragent("Mozilla/5.0")
	if dict := s.GetPlatformDict(); dict != nil {
		t.Errorf("Expected nil platform dict when platform context is disabled")
	}

	enabled := newOfflineSubject(true, false)
	dict := enabled.GetPlatformDict()
	if dict == nil {
		t.Errorf("Expected platform dict when platform context is enabled")
	}
	if v, ok := dict.Get("ot"); !ok || v == "" {
		t.Errorf("Expected captured os type in platform dict")
	}
	if v, ok := dict.Get("dm"); !ok || v == "" {
		t.Errorf("Expected captured device model in platform dict")
	}
}

func TestGeoLocationDictGating(t *testing.T) {
	s := newOfflineSubject(false, false)
	_ = s.SetGeoLatitude(1.23)
	_ = s.SetGeoLongitude(4.56)
	if dict := s.GetGeoLocationDict(); dict != nil {
		t.Errorf("Expected nil geo dict when geolocation context is disabled")
	}

	partial := newOfflineSubject(false, true)
	_ = partial.SetGeoLatitude(1.23)
	if dict := partial.GetGeoLocationDict(); dict != nil {
		t.Errorf("Expected nil geo dict when longitude is unset")
	}
}

func TestGeoLocationDictRoundTrip(t *testing.T) {
	s := newOfflineSubject(true, true)
	_ = s.SetGeoLatitude(1.23)
	_ = s.SetGeoLongitude(4.56)

	expected := map[string]interface{}{
		"geo_latitude":  1.23,
		"geo_longitude": 4.56,
	}
	if !reflect.DeepEqual(s.GetGeoLocationDict(), expected) {
		t.Errorf("Geo dict incorrect: %v", s.GetGeoLocationDict())
	}

	_ = s.SetGeoLatLongAccuracy(10)
	_ = s.SetGeoAltitude(100)
	_ = s.SetGeoAltitudeAccuracy(5)
	_ = s.SetGeoBearing(180)
	_ = s.SetGeoSpeed(1.1)
	_ = s.SetGeoTimestamp(1234567890)

	full := s.GetGeoLocationDict()
	expectedFull := map[string]interface{}{
		"geo_latitude":          1.23,
		"geo_longitude":         4.56,
		"geo_latLong_accuracy":  10.0,
		"geo_altitude":          100.0,
		"geo_altitude_accuracy": 5.0,
		"geo_bearing":           180.0,
		"geo_speed":             1.1,
		"geo_timestamp":         int64(1234567890),
	}
	if !reflect.DeepEqual(full, expectedFull) {
		t.Errorf("Full geo dict incorrect: %v", full)
	}
}

func TestSubjectConfiguration(t *testing.T) {
	platform := true
	geo := true
	cd := 24
	s := newSubject(false, false, &SubjectConfiguration{
		PlatformContext:    &platform,
		GeoLocationContext: &geo,
		UserID:             "u1",
		Timezone:           "UTC",
		Language:           "de",
		ScreenResolution:   &Size{Width: 800, Height: 600},
		ColorDepth:         &cd,
		UAParserOptions:    &UAParserOptions{Disabled: true},
		IPCountryOptions:   &IPCountryOptions{Disabled: true},
	})

	if !s.PlatformContextEnabled() || !s.GeoLocationContextEnabled() {
		t.Errorf("Expected configuration flags to override constructor flags")
	}
	dict := s.GetStandardDict()
	if v, _ := dict.Get("uid"); v != "u1" {
		t.Errorf("Expected configured user id in standard dict")
	}
	if v, _ := dict.Get("tz"); v != "UTC" {
		t.Errorf("Expected configured timezone in standard dict")
	}
	if v, _ := dict.Get("lang"); v != "de" {
		t.Errorf("Expected configured language in standard dict")
	}
	if v, _ := dict.Get("res"); v != "800x600" {
		t.Errorf("Expected configured resolution in standard dict")
	}
	if v, _ := dict.Get("cd"); v != "24" {
		t.Errorf("Expected configured color depth in standard dict")
	}
}

func TestSubjectConfigurationEquivalence(t *testing.T) {
	a := NewSubjectWithContexts(false, true)
	b := newSubject(false, true, nil)
	if a.PlatformContextEnabled() != b.PlatformContextEnabled() ||
		a.GeoLocationContextEnabled() != b.GeoLocationContextEnabled() {
		t.Errorf("Expected internal constructor to match public constructor flags")
	}
	if !reflect.DeepEqual(a.GetStandardDict().Map(), b.GetStandardDict().Map()) {
		t.Errorf("Expected internal constructor to produce an equivalent standard dict")
	}
}
