package crawler

// signatures are known crawler names. Matching is case-insensitive and the
// leftmost signature in the cleaned agent string wins.
var signatures = []string{
	// Search engines
	`Googlebot(-Mobile|-Image|-Video|-News)?`,
	`AdsBot-Google(-Mobile)?`,
	`Mediapartners-Google`,
	`Google-InspectionTool`,
	`Google-Extended`,
	`Google Favicon`,
	`Google-AMPHTML`,
	`bingbot`,
	`BingPreview`,
	`msnbot`,
	`Slurp`,
	`DuckDuckBot`,
	`Baiduspider`,
	`YandexBot`,
	`YandexMobileBot`,
	`YandexImages`,
	`Sogou`,
	`Exabot`,
	`ia_archiver`,
	`Yeti`,
	`Daum(oa)?`,
	`Applebot(-Extended)?`,
	`SeznamBot`,
	`Qwantify`,
	`PetalBot`,
	`AspiegelBot`,

	// SEO and monitoring
	`AhrefsBot`,
	`SemrushBot`,
	`MJ12bot`,
	`DotBot`,
	`rogerbot`,
	`BLEXBot`,
	`Pingdom`,
	`UptimeRobot`,
	`StatusCake`,
	`Chrome-Lighthouse`,
	`Lighthouse`,
	`contentkingapp`,
	`Screaming Frog SEO Spider`,

	// Social and messaging previews
	`facebookexternalhit`,
	`Facebot`,
	`Twitterbot`,
	`LinkedInBot`,
	`Slackbot(-LinkExpanding)?`,
	`Slack-ImgProxy`,
	`TelegramBot`,
	`WhatsApp`,
	`Discordbot`,
	`SkypeUriPreview`,
	`Pinterest(bot)?`,
	`redditbot`,
	`Embedly`,

	// AI crawlers
	`GPTBot`,
	`ChatGPT-User`,
	`OAI-SearchBot`,
	`ClaudeBot`,
	`Claude-User`,
	`anthropic-ai`,
	`PerplexityBot`,
	`Bytespider`,
	`CCBot`,
	`Meta-ExternalAgent`,
	`cohere-ai`,

	// Libraries and tools
	`curl`,
	`Wget`,
	`python-requests`,
	`python-urllib`,
	`Go-http-client`,
	`okhttp`,
	`axios`,
	`node-fetch`,
	`libwww-perl`,
	`Java/[0-9]`,
	`Apache-HttpClient`,
	`HeadlessChrome`,
	`PhantomJS`,
	`Scrapy`,
	`Camo Asset Proxy`,
	`Amazon CloudFront`,
}

// genericSignature catches unnamed clients by their suffix. It is tested
// after the named signatures so that a named one wins at the same offset.
const genericSignature = `[a-z0-9\-_]*(bot|crawl|archiver|transcoder|spider|uptime|validator|fetcher|cron|checker|reader|extractor|monitoring|analyzer|scraper)`

// exclusions are removed from the agent string before signatures are tested.
// They strip ordinary browser tokens that would otherwise trip the generic
// suffix rule.
var exclusions = []string{
	`Safari.[\d\.]*`,
	`Firefox.[\d\.]*`,
	` Chrome.[\d\.]*`,
	`Chromium.[\d\.]*`,
	`MSIE.[\d\.]`,
	`Opera\/[\d\.]*`,
	`Mozilla.[\d\.]*`,
	`AppleWebKit.[\d\.]*`,
	`Trident.[\d\.]*`,
	`Windows NT.[\d\.]*`,
	`Android [\d\.]*`,
	`Macintosh.`,
	`Ubuntu`,
	`Linux`,
	`[ ]Intel`,
	`Mac OS X [\d_]*`,
	`(like )?Gecko(.[\d\.]*)?`,
	`KHTML,`,
	`CriOS.[\d\.]*`,
	`CPU iPhone OS ([0-9_])* like Mac OS X`,
	`CPU OS ([0-9_])* like Mac OS X`,
	`iPod`,
	`compatible`,
	`x86_..`,
	`i686`,
	`x64`,
	`X11`,
	`rv:[\d\.]*`,
	`Version.[\d\.]*`,
	`WOW64`,
	`Win64`,
	`Dalvik.[\d\.]*`,
	` \.NET CLR [\d\.]*`,
	`Presto.[\d\.]*`,
	`Media Center PC`,
	`BlackBerry`,
	`Build`,
	`Opera Mini\/\d{1,2}\.\d{1,2}\.[\d\.]*\/\d{1,2}\.`,
	`Opera`,
	` \.NET[\d\.]*`,
	`cubot`,
	`; M bot`,
	`; CRONO`,
	`; B bot`,
	`; IDbot`,
	`; ID bot`,
	`; POWER BOT`,
	`OCTOPUS-CORE`,
	`htc_botdugls`,
	`super\/\d+\/Android\/\d+`,
}
