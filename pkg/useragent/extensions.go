package useragent

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uadetect/pkg/rules"
)

// Extensions are rule tables layered on top of the baseline provider.
type Extensions struct {
	DesktopDevices   *rules.Table `yaml:"desktop_devices,omitempty"`
	OperatingSystems *rules.Table `yaml:"operating_systems,omitempty"`
	Browsers         *rules.Table `yaml:"browsers,omitempty"`
	Properties       *rules.Table `yaml:"properties,omitempty"`
}

// DefaultExtensions returns the built-in desktop, platform and browser rules.
func DefaultExtensions() Extensions {
	return Extensions{
		DesktopDevices: rules.NewTable(
			rules.R("Macintosh", "Macintosh"),
		),
		OperatingSystems: rules.NewTable(
			rules.R("Windows", "Windows"),
			rules.R("Windows NT", "Windows NT"),
			rules.R("OS X", "Mac OS X"),
			rules.R("Debian", "Debian"),
			rules.R("Ubuntu", "Ubuntu"),
			rules.R("Macintosh", "PPC"),
			rules.R("OpenBSD", "OpenBSD"),
			rules.R("Linux", "Linux"),
			rules.R("ChromeOS", "CrOS"),
		),
		Browsers: rules.NewTable(
			rules.R("Opera Mini", "Opera Mini"),
			rules.R("Opera", "Opera|OPR"),
			rules.R("Edge", "Edge|Edg"),
			rules.R("Coc Coc", "coc_coc_browser"),
			rules.R("UCBrowser", "UCBrowser"),
			rules.R("Vivaldi", "Vivaldi"),
			rules.R("Chrome", "Chrome"),
			rules.R("Firefox", "Firefox"),
			rules.R("Safari", "Safari"),
			rules.R("IE", "MSIE|IEMobile|MSIEMobile|Trident/[.0-9]+"),
			rules.R("Netscape", "Netscape"),
			rules.R("Mozilla", "Mozilla"),
			rules.R("WeChat", "MicroMessenger"),
		),
		Properties: rules.NewTable(
			// platforms
			rules.R("Windows", "Windows NT [VER]"),
			rules.R("Windows NT", "Windows NT [VER]"),
			rules.R("OS X", "OS X [VER]"),
			rules.L("BlackBerryOS", `BlackBerry[\w]+/[VER]`, "BlackBerry.*Version/[VER]", "Version/[VER]"),
			rules.R("AndroidOS", "Android [VER]"),
			rules.R("ChromeOS", "CrOS x86_64 [VER]"),

			// browsers
			rules.R("Opera Mini", "Opera Mini/[VER]"),
			rules.L("Opera", " OPR/[VER]", "Opera Mini/[VER]", "Version/[VER]", "Opera [VER]"),
			rules.R("Netscape", "Netscape/[VER]"),
			rules.R("Mozilla", "rv:[VER]"),
			rules.L("IE", "IEMobile/[VER];", "IEMobile [VER]", "MSIE [VER];", "rv:[VER]"),
			rules.L("Edge", "Edge/[VER]", "Edg/[VER]"),
			rules.R("Vivaldi", "Vivaldi/[VER]"),
			rules.R("Coc Coc", "coc_coc_browser/[VER]"),
		),
	}
}

// Merge layers other on top of e using the rule merge policy and returns the
// result. Neither input is modified.
func (e Extensions) Merge(other Extensions) Extensions {
	return Extensions{
		DesktopDevices:   rules.Merge(e.DesktopDevices, other.DesktopDevices),
		OperatingSystems: rules.Merge(e.OperatingSystems, other.OperatingSystems),
		Browsers:         rules.Merge(e.Browsers, other.Browsers),
		Properties:       rules.Merge(e.Properties, other.Properties),
	}
}

// LoadExtensions reads extension rules from a YAML file.
func LoadExtensions(path string) (Extensions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Extensions{}, errors.Join(ErrLoadExtensions, err)
	}
	return ParseExtensions(data)
}

// ParseExtensions decodes extension rules from YAML. Missing sections are
// empty tables.
func ParseExtensions(data []byte) (Extensions, error) {
	var ext Extensions
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return Extensions{}, errors.Join(ErrInvalidExtensions, err)
	}
	return ext.normalize(), nil
}

func (e Extensions) normalize() Extensions {
	if e.DesktopDevices == nil {
		e.DesktopDevices = rules.NewTable()
	}
	if e.OperatingSystems == nil {
		e.OperatingSystems = rules.NewTable()
	}
	if e.Browsers == nil {
		e.Browsers = rules.NewTable()
	}
	if e.Properties == nil {
		e.Properties = rules.NewTable()
	}
	return e
}
