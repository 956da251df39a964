package useragent

// Device types returned by Agent.DeviceType
const (
	// DeviceTypeDesktop identifies desktop computers and laptops
	DeviceTypeDesktop = "desktop"

	// DeviceTypePhone identifies smartphones and feature phones
	DeviceTypePhone = "phone"

	// DeviceTypeTablet identifies tablet devices (iPad, Android tablets, etc.)
	DeviceTypeTablet = "tablet"

	// DeviceTypeRobot identifies automated crawlers, bots, and spiders
	DeviceTypeRobot = "robot"

	// DeviceTypeOther is used when none of the above applies
	DeviceTypeOther = "other"
)

// GenericRobot is the metrics label for crawlers matched only by a generic
// suffix such as "bot" or "spider".
const GenericRobot = "generic"

// Version placeholder handling
const (
	// VersionPlaceholder marks the version token in property patterns.
	VersionPlaceholder = "[VER]"

	// versionPattern replaces VersionPlaceholder: digits, letters and the
	// delimiters . _ +
	versionPattern = `([\w._\+]+)`
)

// Transport hints
const (
	// CloudFrontAgent is the agent string sent by the CloudFront CDN.
	// Only for this agent are the CloudFront viewer headers consulted.
	CloudFrontAgent = "Amazon CloudFront"

	HeaderCloudFrontDesktop = "CloudFront-Is-Desktop-Viewer"
	HeaderCloudFrontMobile  = "CloudFront-Is-Mobile-Viewer"
	HeaderCloudFrontTablet  = "CloudFront-Is-Tablet-Viewer"
)

// queryPrefix is the required prefix of dynamic rule queries ("isIPhone").
const queryPrefix = "is"

// maxAcceptLanguageLength bounds the parsed part of an Accept-Language header.
// Longer headers keep only the entries that end within the limit.
const maxAcceptLanguageLength = 4096
