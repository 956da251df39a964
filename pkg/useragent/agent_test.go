package useragent_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/uadetect/pkg/rules"
	"github.com/dmitrymomot/uadetect/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	uaChromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	uaEdgeWindows   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59"
	uaOperaWindows  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 OPR/77.0.4054.90"
	uaIE11          = "Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; rv:11.0) like Gecko"
	uaSafariMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15"
	uaFirefoxLinux  = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
	uaChromeOS      = "Mozilla/5.0 (X11; CrOS x86_64 13904.97.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.167 Safari/537.36"
	uaIPhone        = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	uaIPad          = "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	uaPixel         = "Mozilla/5.0 (Linux; Android 10; Pixel 4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Mobile Safari/537.36"
	uaGalaxyPhone   = "Mozilla/5.0 (Linux; Android 11; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/14.0 Chrome/87.0.4280.141 Mobile Safari/537.36"
	uaGalaxyTab     = "Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36"
	uaGooglebot     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	uaBingbot       = "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)"
	uaCurl          = "curl/7.68.0"
	uaTestBrowser   = "TestBrowser/12.34.5"
)

func newDetector(t testing.TB, opts ...useragent.Option) *useragent.Detector {
	t.Helper()
	d, err := useragent.New(opts...)
	require.NoError(t, err)
	return d
}

func TestAgentClassification(t *testing.T) {
	d := newDetector(t)

	tests := []struct {
		name       string
		ua         string
		browser    string
		platform   string
		device     string
		deviceType string
	}{
		{name: "Chrome on Windows", ua: uaChromeWindows, browser: "Chrome", platform: "Windows", device: "WebKit", deviceType: useragent.DeviceTypeDesktop},
		{name: "Edge on Windows", ua: uaEdgeWindows, browser: "Edge", platform: "Windows", device: "WebKit", deviceType: useragent.DeviceTypeDesktop},
		{name: "Opera on Windows", ua: uaOperaWindows, browser: "Opera", platform: "Windows", device: "WebKit", deviceType: useragent.DeviceTypeDesktop},
		{name: "IE 11", ua: uaIE11, browser: "IE", platform: "Windows", deviceType: useragent.DeviceTypeDesktop},
		{name: "Safari on Mac", ua: uaSafariMac, browser: "Safari", platform: "OS X", device: "Macintosh", deviceType: useragent.DeviceTypeDesktop},
		{name: "Firefox on Ubuntu", ua: uaFirefoxLinux, browser: "Firefox", platform: "Ubuntu", deviceType: useragent.DeviceTypeDesktop},
		{name: "Chrome OS", ua: uaChromeOS, browser: "Chrome", platform: "ChromeOS", device: "WebKit", deviceType: useragent.DeviceTypeDesktop},
		{name: "iPhone", ua: uaIPhone, browser: "Safari", platform: "iOS", device: "iPhone", deviceType: useragent.DeviceTypePhone},
		{name: "iPad", ua: uaIPad, browser: "Safari", platform: "iOS", device: "iPad", deviceType: useragent.DeviceTypeTablet},
		{name: "Pixel", ua: uaPixel, browser: "Chrome", platform: "AndroidOS", device: "Pixel", deviceType: useragent.DeviceTypePhone},
		{name: "Galaxy phone", ua: uaGalaxyPhone, browser: "Chrome", platform: "AndroidOS", device: "Samsung", deviceType: useragent.DeviceTypePhone},
		{name: "Galaxy tablet", ua: uaGalaxyTab, browser: "Chrome", platform: "AndroidOS", device: "SamsungTablet", deviceType: useragent.DeviceTypeTablet},
		{name: "Googlebot", ua: uaGooglebot, browser: "Mozilla", device: "Bot", deviceType: useragent.DeviceTypeRobot},
		{name: "curl", ua: uaCurl, deviceType: useragent.DeviceTypeRobot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := d.Parse(tc.ua)

			browser, ok := a.Browser()
			assert.Equal(t, tc.browser != "", ok)
			assert.Equal(t, tc.browser, browser)

			platform, ok := a.Platform()
			assert.Equal(t, tc.platform != "", ok)
			assert.Equal(t, tc.platform, platform)

			device, ok := a.Device()
			assert.Equal(t, tc.device != "", ok)
			assert.Equal(t, tc.device, device)

			assert.Equal(t, tc.deviceType, a.DeviceType())
		})
	}
}

func TestAgentCategories(t *testing.T) {
	d := newDetector(t)

	tests := []struct {
		name    string
		ua      string
		mobile  bool
		tablet  bool
		phone   bool
		desktop bool
		robot   bool
	}{
		{name: "desktop", ua: uaChromeWindows, desktop: true},
		{name: "phone", ua: uaIPhone, mobile: true, phone: true},
		{name: "tablet is not a phone", ua: uaIPad, mobile: true, tablet: true},
		{name: "android tablet is not a phone", ua: uaGalaxyTab, mobile: true, tablet: true},
		{name: "robot is not a desktop", ua: uaGooglebot, robot: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := d.Parse(tc.ua)
			assert.Equal(t, tc.mobile, a.IsMobile(), "IsMobile")
			assert.Equal(t, tc.tablet, a.IsTablet(), "IsTablet")
			assert.Equal(t, tc.phone, a.IsPhone(), "IsPhone")
			assert.Equal(t, tc.desktop, a.IsDesktop(), "IsDesktop")
			assert.Equal(t, tc.robot, a.IsRobot(), "IsRobot")
		})
	}
}

func TestAgentEmptyInput(t *testing.T) {
	d := newDetector(t)
	a := d.Parse("")

	_, ok := a.Browser()
	assert.False(t, ok)
	_, ok = a.Platform()
	assert.False(t, ok)
	_, ok = a.Device()
	assert.False(t, ok)
	_, ok = a.Version("Chrome")
	assert.False(t, ok)
	_, ok = a.Robot()
	assert.False(t, ok)

	assert.False(t, a.IsMobile())
	assert.False(t, a.IsTablet())
	assert.False(t, a.IsPhone())
	assert.False(t, a.IsRobot())
	assert.False(t, a.Is("iPhone"))
	assert.Empty(t, a.Languages())
	assert.Equal(t, "Unknown device", a.ShortIdentifier())
}

func TestAgentRobot(t *testing.T) {
	d := newDetector(t)

	tests := []struct {
		name string
		ua   string
		want string
		ok   bool
	}{
		{name: "Googlebot", ua: uaGooglebot, want: "Googlebot", ok: true},
		{name: "first letter is upper-cased", ua: uaBingbot, want: "Bingbot", ok: true},
		{name: "library", ua: uaCurl, want: "Curl", ok: true},
		{name: "browser", ua: uaChromeWindows},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, ok := d.Parse(tc.ua).Robot()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, name)
		})
	}
}

func TestAgentVersion(t *testing.T) {
	d := newDetector(t)

	tests := []struct {
		name    string
		ua      string
		prop    string
		want    string
		wantNum float64
	}{
		{name: "Chrome", ua: uaChromeWindows, prop: "Chrome", want: "91.0.4472.124", wantNum: 91.0},
		{name: "Windows NT", ua: uaChromeWindows, prop: "Windows NT", want: "10.0", wantNum: 10.0},
		{name: "Windows via extension", ua: uaChromeWindows, prop: "Windows", want: "10.0", wantNum: 10.0},
		{name: "Edge", ua: uaEdgeWindows, prop: "Edge", want: "91.0.864.59", wantNum: 91.0},
		{name: "Opera", ua: uaOperaWindows, prop: "Opera", want: "77.0.4054.90", wantNum: 77.0},
		{name: "IE", ua: uaIE11, prop: "IE", want: "11.0", wantNum: 11.0},
		{name: "OS X", ua: uaSafariMac, prop: "OS X", want: "10_15_7", wantNum: 10.15},
		{name: "iOS", ua: uaIPhone, prop: "iOS", want: "14_4", wantNum: 14.4},
		{name: "Safari mobile", ua: uaIPhone, prop: "Safari", want: "14.0", wantNum: 14.0},
		{name: "Android", ua: uaPixel, prop: "AndroidOS", want: "10", wantNum: 10},
		{name: "Firefox", ua: uaFirefoxLinux, prop: "Firefox", want: "89.0", wantNum: 89.0},
		{name: "Samsung browser", ua: uaGalaxyPhone, prop: "SamsungBrowser", want: "14.0", wantNum: 14.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := d.Parse(tc.ua)

			v, ok := a.Version(tc.prop)
			require.True(t, ok)
			assert.Equal(t, tc.want, v)

			f, ok := a.VersionFloat(tc.prop)
			require.True(t, ok)
			assert.InDelta(t, tc.wantNum, f, 1e-9)
		})
	}

	t.Run("unknown property", func(t *testing.T) {
		_, ok := d.Parse(uaChromeWindows).Version("Nope")
		assert.False(t, ok)
	})

	t.Run("empty property", func(t *testing.T) {
		_, ok := d.Parse(uaChromeWindows).VersionFloat("")
		assert.False(t, ok)
	})
}

func TestExtensionBrowserVersion(t *testing.T) {
	d := newDetector(t, useragent.WithExtraExtensions(useragent.Extensions{
		Browsers:   rules.NewTable(rules.R("TestBrowser", "TestBrowser")),
		Properties: rules.NewTable(rules.R("TestBrowser", "TestBrowser/[VER]")),
	}))
	a := d.Parse(uaTestBrowser)

	browser, ok := a.Browser()
	require.True(t, ok)
	assert.Equal(t, "TestBrowser", browser)

	v, ok := a.Version("TestBrowser")
	require.True(t, ok)
	assert.Equal(t, "12.34.5", v)

	f, ok := a.VersionFloat("TestBrowser")
	require.True(t, ok)
	assert.Equal(t, 12.34, f)

	assert.Equal(t, useragent.DeviceTypeDesktop, a.DeviceType())
}

func TestAgentIs(t *testing.T) {
	d := newDetector(t)

	tests := []struct {
		name string
		ua   string
		rule string
		want bool
	}{
		{name: "phone device", ua: uaIPhone, rule: "iPhone", want: true},
		{name: "case-insensitive name", ua: uaIPhone, rule: "IPHONE", want: true},
		{name: "platform", ua: uaPixel, rule: "AndroidOS", want: true},
		{name: "tablet", ua: uaGalaxyTab, rule: "SamsungTablet", want: true},
		{name: "extension platform", ua: uaFirefoxLinux, rule: "ubuntu", want: true},
		{name: "merged desktop and platform rule", ua: uaSafariMac, rule: "Macintosh", want: true},
		{name: "extension browser", ua: uaChromeWindows, rule: "Chrome", want: true},
		{name: "utility", ua: uaGooglebot, rule: "Bot", want: true},
		{name: "not matching", ua: uaChromeWindows, rule: "iPhone", want: false},
		{name: "unknown rule", ua: uaIPhone, rule: "FooBar", want: false},
		{name: "empty rule", ua: uaIPhone, rule: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, d.Parse(tc.ua).Is(tc.rule))
		})
	}
}

func TestAgentQuery(t *testing.T) {
	d := newDetector(t)
	a := d.Parse(uaIPhone)

	t.Run("known rule", func(t *testing.T) {
		ok, err := a.Query("isIPhone")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("known rule not matching", func(t *testing.T) {
		ok, err := a.Query("isAndroidOS")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown rule is false", func(t *testing.T) {
		ok, err := a.Query("isFooBar")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	for _, name := range []string{"getFoo", "IsIPhone", "iphone", ""} {
		t.Run("unsupported "+name, func(t *testing.T) {
			ok, err := a.Query(name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, useragent.ErrUnsupportedOperation))
			assert.False(t, ok)
		})
	}
}

func TestAgentCloudFront(t *testing.T) {
	d := newDetector(t)

	header := func(kv ...string) http.Header {
		h := http.Header{}
		for i := 0; i+1 < len(kv); i += 2 {
			h.Set(kv[i], kv[i+1])
		}
		return h
	}

	t.Run("mobile viewer", func(t *testing.T) {
		a := d.Parse(useragent.CloudFrontAgent, useragent.WithHeader(header(
			useragent.HeaderCloudFrontDesktop, "false",
			useragent.HeaderCloudFrontMobile, "true",
			useragent.HeaderCloudFrontTablet, "false",
		)))
		assert.True(t, a.IsMobile())
		assert.False(t, a.IsTablet())
		assert.False(t, a.IsDesktop())
		assert.True(t, a.IsPhone())
		assert.Equal(t, useragent.DeviceTypePhone, a.DeviceType())
	})

	t.Run("tablet viewer", func(t *testing.T) {
		a := d.Parse(useragent.CloudFrontAgent, useragent.WithHeader(header(
			useragent.HeaderCloudFrontDesktop, "false",
			useragent.HeaderCloudFrontTablet, "true",
		)))
		assert.True(t, a.IsTablet())
		assert.False(t, a.IsPhone())
		assert.Equal(t, useragent.DeviceTypeTablet, a.DeviceType())
	})

	t.Run("desktop viewer", func(t *testing.T) {
		a := d.Parse(useragent.CloudFrontAgent, useragent.WithHeader(header(
			useragent.HeaderCloudFrontDesktop, "true",
		)))
		assert.True(t, a.IsDesktop())
		assert.Equal(t, useragent.DeviceTypeDesktop, a.DeviceType())
	})

	t.Run("no headers falls back to heuristics", func(t *testing.T) {
		a := d.Parse(useragent.CloudFrontAgent)
		assert.True(t, a.IsRobot())
		assert.False(t, a.IsDesktop())
		assert.Equal(t, useragent.DeviceTypeRobot, a.DeviceType())
	})

	t.Run("headers ignored for other agents", func(t *testing.T) {
		a := d.Parse(uaChromeWindows, useragent.WithHeader(header(
			useragent.HeaderCloudFrontDesktop, "false",
			useragent.HeaderCloudFrontMobile, "true",
		)))
		assert.False(t, a.IsMobile())
		assert.True(t, a.IsDesktop())
	})
}

func TestAgentLanguages(t *testing.T) {
	d := newDetector(t)
	a := d.Parse(uaChromeWindows, useragent.WithAcceptLanguage("fr-CH, fr;q=0.9, en;q=0.8, *;q=0.5"))
	assert.Equal(t, []string{"fr-ch", "fr", "en", "*"}, a.Languages())
}

func TestDetectorFromRequest(t *testing.T) {
	d := newDetector(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", uaIPhone)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")

	a := d.FromRequest(req)
	assert.Equal(t, uaIPhone, a.UserAgent())
	assert.True(t, a.IsPhone())
	assert.Equal(t, []string{"de-de", "de", "en"}, a.Languages())
}

func TestAgentSummarize(t *testing.T) {
	d := newDetector(t)

	s := d.Parse(uaIPhone, useragent.WithAcceptLanguage("en-US,en;q=0.9")).Summarize()
	assert.Equal(t, useragent.Summary{
		UserAgent:  uaIPhone,
		DeviceType: useragent.DeviceTypePhone,
		Device:     "iPhone",
		Platform:   "iOS",
		Browser:    "Safari",
		Versions:   map[string]string{"iOS": "14_4", "Safari": "14.0"},
		Languages:  []string{"en-us", "en"},
	}, s)

	bot := d.Parse(uaGooglebot).Summarize()
	assert.Equal(t, useragent.DeviceTypeRobot, bot.DeviceType)
	assert.Equal(t, "Googlebot", bot.Robot)
}

func TestAgentShortIdentifier(t *testing.T) {
	d := newDetector(t)

	tests := []struct {
		name string
		ua   string
		want string
	}{
		{name: "desktop", ua: uaChromeWindows, want: "Chrome/91.0.4472.124 (Windows, desktop)"},
		{name: "phone", ua: uaIPhone, want: "Safari/14.0 (iOS, phone)"},
		{name: "bot", ua: uaGooglebot, want: "Bot: Googlebot"},
		{name: "unknown", ua: "something", want: "Unknown device"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, d.Parse(tc.ua).ShortIdentifier())
		})
	}
}
