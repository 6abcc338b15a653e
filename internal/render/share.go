package render

import (
	"net/url"
	"strings"
)

const siteName = "Local News Network"

// escape percent-encodes s for use in a query component, with spaces as
// %20 rather than "+" so the links work in every share target.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FacebookShareURL builds the Facebook sharer link for an article page.
func FacebookShareURL(articleURL, title string) string {
	return "https://www.facebook.com/sharer/sharer.php?u=" + escape(articleURL) +
		"&quote=" + escape(title+" - "+siteName)
}

// TwitterShareURL builds the tweet intent link for an article page.
func TwitterShareURL(articleURL, title string) string {
	return "https://twitter.com/intent/tweet?url=" + escape(articleURL) +
		"&text=" + escape(title+" - Check out this article from "+siteName) +
		"&hashtags=" + escape("LocalNews,Community")
}

// MailtoShareURL builds a mailto link with a prefilled subject and body.
func MailtoShareURL(articleURL, title string) string {
	body := "I found this interesting article and thought you might like it:\n\n" +
		title + "\n\n" + articleURL +
		"\n\nRead more at " + siteName + " - Bringing you the latest community news."
	return "mailto:?subject=" + escape(title+" - "+siteName) + "&body=" + escape(body)
}
