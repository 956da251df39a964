package mobiledetect

import "github.com/dmitrymomot/uadetect/pkg/rules"

var operatingSystems = rules.NewTable(
	rules.R("AndroidOS", `Android`),
	rules.R("BlackBerryOS", `blackberry|\bBB10\b|rim tablet os`),
	rules.R("PalmOS", `PalmOS|avantgo|blazer|elaine|hiptop|palm|plucker|xiino`),
	rules.R("SymbianOS", `Symbian|SymbOS|Series60|Series40|SYB-[0-9]+|\bS60\b`),
	rules.R("WindowsMobileOS", `Windows CE.*(PPC|Smartphone|Mobile|[0-9]{3}x[0-9]{3})|Windows Mobile|Windows Phone [0-9.]+|WCE;`),
	rules.R("WindowsPhoneOS", `Windows Phone 10.0|Windows Phone 8.1|Windows Phone 8.0|Windows Phone OS|XBLWP7|ZuneWP7|Windows NT 6.[23]; ARM;`),
	rules.R("iOS", `\biPhone.*Mobile|\biPod|\biPad|AppleCoreMedia`),
	rules.R("iPadOS", `CPU OS 13`),
	rules.R("SailfishOS", `Sailfish`),
	rules.R("MeeGoOS", `MeeGo`),
	rules.R("MaemoOS", `Maemo`),
	rules.R("JavaOS", `J2ME/|\bMIDP\b|\bCLDC\b`),
	rules.R("webOS", `webOS|hpwOS`),
	rules.R("badaOS", `\bBada\b`),
	rules.R("BREWOS", `BREW`),
)

var browsers = rules.NewTable(
	rules.R("Chrome", `\bCrMo\b|CriOS|Android.*Chrome/[.0-9]* (Mobile)?`),
	rules.R("Dolfin", `\bDolfin\b`),
	rules.R("Opera", `Opera.*Mini|Opera.*Mobi|Android.*Opera|Mobile.*OPR/[0-9.]+$|Coast/[0-9.]+`),
	rules.R("Skyfire", `Skyfire`),
	rules.R("Edge", `Mobile Safari/[.0-9]* Edge|EdgiOS|EdgA/`),
	rules.R("IE", `IEMobile|MSIEMobile`),
	rules.R("Firefox", `fennec|firefox.*maemo|(Mobile|Tablet).*Firefox|Firefox.*Mobile|FxiOS`),
	rules.R("Bolt", `bolt`),
	rules.R("TeaShark", `teashark`),
	rules.R("Blazer", `Blazer`),
	rules.R("Safari", `Version((?!\bEdgiOS\b).)*Mobile.*Safari|Safari.*Mobile|MobileSafari`),
	rules.R("WeChat", `\bMicroMessenger\b`),
	rules.R("UCBrowser", `UC.*Browser|UCWEB`),
	rules.R("baiduboxapp", `baiduboxapp`),
	rules.R("baidubrowser", `baidubrowser`),
	rules.R("DiigoBrowser", `DiigoBrowser`),
	rules.R("Mercury", `\bMercury\b`),
	rules.R("ObigoBrowser", `Obigo`),
	rules.R("NetFront", `NF-Browser`),
	rules.R("GenericBrowser", `NokiaBrowser|OviBrowser|OneBrowser|TwonkyBeamBrowser|SEMC.*Browser|FlyFlow|Minimo|NetFront|Novarra-Vision|MQQBrowser|MicroMessenger`),
	rules.R("PaleMoon", `Android.*PaleMoon|Mobile.*PaleMoon`),
)

var utilities = rules.NewTable(
	rules.R("Bot", `Googlebot|facebookexternalhit|Google-AMPHTML|s~amp-validator|AdsBot-Google|Google Keyword Suggestion|Facebot|YandexBot|YandexMobileBot|bingbot|ia_archiver|AhrefsBot|Ezooms|GSLFbot|WBSearchBot|Twitterbot|TweetmemeBot|Twikle|PaperLiBot|Wotbox|UnwindFetchor|Exabot|MJ12bot|YandexImages|TurnitinBot|Pingdom|contentkingapp|AspiegelBot`),
	rules.R("MobileBot", `Googlebot-Mobile|AdsBot-Google-Mobile|YahooSeeker/M1A1-R2D2`),
	rules.R("DesktopMode", `WPDesktop`),
	rules.R("TV", `SonyDTV|HbbTV`),
	rules.R("WebKit", `(webkit)[ /]([\w.]+)`),
	rules.R("Console", `\b(Nintendo|Nintendo WiiU|Nintendo 3DS|Nintendo Switch|PLAYSTATION|Xbox)\b`),
	rules.R("Watch", `SM-V700`),
)

// properties maps a property name to the patterns able to extract its
// version. [VER] marks the version token.
var properties = rules.NewTable(
	// Build
	rules.R("Mobile", `Mobile/[VER]`),
	rules.R("Build", `Build/[VER]`),
	rules.R("Version", `Version/[VER]`),
	rules.R("VendorID", `VendorID/[VER]`),

	// Devices
	rules.R("iPad", `iPad.*CPU[a-z ]+[VER]`),
	rules.R("iPhone", `iPhone.*CPU[a-z ]+[VER]`),
	rules.R("iPod", `iPod.*CPU[a-z ]+[VER]`),
	rules.R("Kindle", `Kindle/[VER]`),

	// Browsers
	rules.L("Chrome", `Chrome/[VER]`, `CriOS/[VER]`, `CrMo/[VER]`),
	rules.L("Coast", `Coast/[VER]`),
	rules.R("Dolfin", `Dolfin/[VER]`),
	rules.L("Firefox", `Firefox/[VER]`, `FxiOS/[VER]`),
	rules.R("Fennec", `Fennec/[VER]`),
	rules.L("Edge", `Edge/[VER]`, `EdgA/[VER]`, `EdgiOS/[VER]`),
	rules.L("IE", `IEMobile/[VER];`, `IEMobile [VER]`, `MSIE [VER];`, `Trident/[0-9.]+;.*rv:[VER]`),
	rules.R("NetFront", `NetFront/[VER]`),
	rules.R("NokiaBrowser", `NokiaBrowser/[VER]`),
	rules.L("Opera", ` OPR/[VER]`, `Opera Mini/[VER]`, `Version/[VER]`),
	rules.R("Opera Mini", `Opera Mini/[VER]`),
	rules.R("Opera Mobi", `Version/[VER]`),
	rules.L("UCBrowser", `UCWEB[VER]`, `UC.*Browser/[VER]`),
	rules.R("MQQBrowser", `MQQBrowser/[VER]`),
	rules.R("MicroMessenger", `MicroMessenger/[VER]`),
	rules.R("baiduboxapp", `baiduboxapp/[VER]`),
	rules.R("baidubrowser", `baidubrowser/[VER]`),
	rules.R("SamsungBrowser", `SamsungBrowser/[VER]`),
	rules.R("Iron", `Iron/[VER]`),
	rules.L("Safari", `Version/[VER]`, `Safari/[VER]`),
	rules.R("Skyfire", `Skyfire/[VER]`),
	rules.R("Tizen", `Tizen/[VER]`),
	rules.R("Webkit", `webkit[ /][VER]`),
	rules.R("PaleMoon", `PaleMoon/[VER]`),
	rules.R("SailfishBrowser", `SailfishBrowser/[VER]`),

	// Engines
	rules.R("Gecko", `Gecko/[VER]`),
	rules.R("Trident", `Trident/[VER]`),
	rules.R("Presto", `Presto/[VER]`),
	rules.R("Goanna", `Goanna/[VER]`),

	// Operating systems
	rules.R("iOS", ` \bi?OS\b [VER][ ;]{1}`),
	rules.R("Android", `Android [VER]`),
	rules.R("Sailfish", `Sailfish [VER]`),
	rules.L("BlackBerry", `BlackBerry[\w]+/[VER]`, `BlackBerry.*Version/[VER]`, `Version/[VER]`),
	rules.R("BREW", `BREW [VER]`),
	rules.R("Java", `Java/[VER]`),
	rules.L("Windows Phone OS", `Windows Phone OS [VER]`, `Windows Phone [VER]`),
	rules.R("Windows Phone", `Windows Phone [VER]`),
	rules.R("Windows CE", `Windows CE/[VER]`),
	rules.R("Windows NT", `Windows NT [VER]`),
	rules.L("Symbian", `SymbianOS/[VER]`, `Symbian/[VER]`),
	rules.L("webOS", `webOS/[VER]`, `hpwOS/[VER];`),
)
