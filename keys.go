package tracker

// Payload key names are a compatibility contract with the collector and the
// downstream enrichment pipeline. Do not change them.
const (
	// Subject standard pairs
	keyUserID        = "uid"
	keyUseragent     = "ua"
	keyIPAddress     = "ip"
	keyTimezone      = "tz"
	keyLanguage      = "lang"
	keyResolution    = "res"
	keyViewPort      = "vp"
	keyColorDepth    = "cd"
	keyNetworkUserID = "tnuid"
	keyDomainUserID  = "duid"

	// Geolocation pairs
	keyGeoLatitude        = "geo_latitude"
	keyGeoLongitude       = "geo_longitude"
	keyGeoLatLongAccuracy = "geo_latLong_accuracy"
	keyGeoAltitude        = "geo_altitude"
	keyGeoAltitudeAcc     = "geo_altitude_accuracy"
	keyGeoBearing         = "geo_bearing"
	keyGeoSpeed           = "geo_speed"
	keyGeoTimestamp       = "geo_timestamp"

	// Platform pairs
	keyOsType         = "ot"
	keyOsVersion      = "ov"
	keyDeviceModel    = "dm"
	keyBrowserName    = "bn"
	keyBrowserVersion = "bv"
	keyCountryCode    = "cc"

	// Event pairs
	keyEvent         = "e"
	keyEventID       = "eid"
	keyTimestamp     = "dtm"
	keyPlatform      = "p"
	keyNamespace     = "tna"
	keyAppID         = "aid"
	keyVersion       = "tv"
	keyGeoContext    = "geo"
	keySeCategory    = "se_ca"
	keySeAction      = "se_ac"
	keySeLabel       = "se_la"
	keySeProperty    = "se_pr"
	keySeValue       = "se_va"
	keyPageURL       = "url"
	keyPageTitle     = "page"
	keyPageReferrer  = "refr"
	keyScreenName    = "sv_na"
	keyScreenID      = "sv_id"
	keyTimingCat     = "tm_ca"
	keyTimingVar     = "tm_vr"
	keyTimingTime    = "tm_tm"
	keyTimingLabel   = "tm_la"
	keyEventName     = "ue_na"
	keyEventValue    = "ue_vl"
	keyEventMetadata = "ue_pr"
)

// Event type values for the "e" pair.
const (
	eventTypeStructured = "se"
	eventTypePageView   = "pv"
	eventTypeScreenView = "sv"
	eventTypeTiming     = "tm"
	eventTypeCustom     = "ue"
)
