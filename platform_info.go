package tracker

import (
	"runtime"
)

// platformInfo backs the subject's platform context. The static pairs are
// captured once at subject construction; useragent and IP derived pairs are
// layered on top at projection time.
type platformInfo struct {
	pairs   map[string]string
	ua      *uaParser
	country *countryLookup
}

func newPlatformInfo(uaOptions UAParserOptions, ipOptions IPCountryOptions) *platformInfo {
	info := &platformInfo{
		pairs: map[string]string{
			keyOsType:      runtime.GOOS,
			keyOsVersion:   runtime.Version(),
			keyDeviceModel: runtime.GOARCH,
		},
		ua:      newUAParser(uaOptions),
		country: newCountryLookup(ipOptions),
	}
	info.ua.init()
	info.country.init()
	return info
}

// dict projects the platform pairs for the given useragent and IP address.
// UA-derived pairs override the captured defaults when the parser recognizes
// an OS family.
func (p *platformInfo) dict(useragent string, ipAddress string) *Payload {
	out := NewPayload()
	out.AddDict(p.pairs)

	if client := p.ua.parse(useragent); client != nil {
		if client.Os != nil && client.Os.Family != "Other" {
			out.Add(keyOsType, client.Os.Family)
			out.Add(keyOsVersion, client.Os.ToVersionString())
		}
		if client.UserAgent != nil && client.UserAgent.Family != "Other" {
			out.Add(keyBrowserName, client.UserAgent.Family)
			out.Add(keyBrowserVersion, client.UserAgent.ToVersionString())
		}
	}

	if cc, ok := p.country.lookupIP(ipAddress); ok {
		out.Add(keyCountryCode, cc)
	}
	return out
}
