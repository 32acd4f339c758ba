// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package links

import (
	"net/url"
	"strings"
)

// retailer describes one supported storefront.
type retailer struct {
	domain        string // registered domain, matched exactly or as suffix
	trackingParam string // affiliate tracking query parameter
	searchBase    string // search endpoint for synthesized links
	searchParam   string // search query parameter
}

var (
	amazonRetailer = retailer{
		domain:        "amazon.com",
		trackingParam: "tag",
		searchBase:    "https://www.amazon.com/s",
		searchParam:   "k",
	}
	neweggRetailer = retailer{
		domain:        "newegg.com",
		trackingParam: "cm_mmc",
		searchBase:    "https://www.newegg.com/p/pl",
		searchParam:   "d",
	}
	ebayRetailer = retailer{
		domain:        "ebay.com",
		trackingParam: "campid",
		searchBase:    "https://www.ebay.com/sch/i.html",
		searchParam:   "_nkw",
	}
)

// Links carries the purchase URLs for one product. Canonical is always set;
// retailer fields are nil only when the canonical URL did not parse.
type Links struct {
	Canonical string
	Amazon    *string
	Newegg    *string
	Ebay      *string
}

// Builder produces purchase links, optionally decorated with an affiliate
// tracking tag. The zero tag simply omits tracking parameters; it never
// disables link building.
type Builder struct {
	tag string
}

// NewBuilder creates a link builder. tag may be empty.
func NewBuilder(tag string) *Builder {
	return &Builder{tag: tag}
}

// Build derives retailer links from a canonical product URL. A canonical
// that does not parse, or has no host, yields only the Canonical field;
// building never fails a request.
func (b *Builder) Build(canonical string) Links {
	links := Links{Canonical: canonical}

	u, err := url.Parse(canonical)
	if err != nil || u.Host == "" {
		return links
	}

	host := strings.ToLower(u.Hostname())
	links.Amazon = b.retailerLink(canonical, u, host, amazonRetailer)
	links.Newegg = b.retailerLink(canonical, u, host, neweggRetailer)
	links.Ebay = b.retailerLink(canonical, u, host, ebayRetailer)
	return links
}

// retailerLink returns the tagged canonical URL when it already points at
// this retailer, or a synthesized search link otherwise.
func (b *Builder) retailerLink(canonical string, u *url.URL, host string, r retailer) *string {
	var link string
	if hostMatches(host, r.domain) {
		link = b.withTracking(canonical, u, r)
	} else {
		link = b.searchLink(canonical, r)
	}
	return &link
}

// hostMatches reports whether host is the retailer domain or one of its
// subdomains. A plain suffix check would let lookalike hosts through
// (notamazon.com), so the suffix must start at a label boundary.
func hostMatches(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// withTracking appends the retailer's tracking parameter to the canonical
// URL. Without a configured tag the canonical string passes through
// untouched, byte for byte.
func (b *Builder) withTracking(canonical string, u *url.URL, r retailer) string {
	if b.tag == "" {
		return canonical
	}

	tagged := *u
	q := tagged.Query()
	q.Set(r.trackingParam, b.tag)
	tagged.RawQuery = q.Encode()
	return tagged.String()
}

// searchLink synthesizes a retailer search URL with the canonical URL as
// the query value.
func (b *Builder) searchLink(canonical string, r retailer) string {
	q := url.Values{}
	q.Set(r.searchParam, canonical)
	if b.tag != "" {
		q.Set(r.trackingParam, b.tag)
	}
	return r.searchBase + "?" + q.Encode()
}
