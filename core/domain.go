package core

import (
	"strconv"
	"time"
)

// DoNotTrack is the marker value that suppresses a tracking call.
const DoNotTrack = "1"

// Hit is a single page-view payload. Zero-valued fields are omitted on the
// wire; callers only set what they know.
type Hit struct {
	Hostname               string            `json:"hostname,omitempty"`
	URL                    string            `json:"url,omitempty"`
	IP                     string            `json:"ip,omitempty"`
	UserAgent              string            `json:"user_agent,omitempty"`
	AcceptLanguage         string            `json:"accept_language,omitempty"`
	SecCHUA                string            `json:"sec_ch_ua,omitempty"`
	SecCHUAMobile          string            `json:"sec_ch_ua_mobile,omitempty"`
	SecCHUAPlatform        string            `json:"sec_ch_ua_platform,omitempty"`
	SecCHUAPlatformVersion string            `json:"sec_ch_ua_platform_version,omitempty"`
	SecCHWidth             string            `json:"sec_ch_width,omitempty"`
	SecCHViewportWidth     string            `json:"sec_ch_viewport_width,omitempty"`
	Title                  string            `json:"title,omitempty"`
	Referrer               string            `json:"referrer,omitempty"`
	ScreenWidth            int               `json:"screen_width,omitempty"`
	ScreenHeight           int               `json:"screen_height,omitempty"`
	Tags                   map[string]string `json:"tags,omitempty"`
	DNT                    string            `json:"-"`
}

// EventOptions names a custom event. Duration defaults to 0; Metadata values
// are coerced to strings on the wire.
type EventOptions struct {
	Name     string
	Duration int
	Metadata map[string]any
}

// BatchHit is one item of a batched hit call; Time is the moment the view
// occurred.
type BatchHit struct {
	Time time.Time
	Hit  Hit
}

// BatchEvent is one item of a batched event call.
type BatchEvent struct {
	Time  time.Time
	Event EventOptions
	Hit   Hit
}

// Session is a keep-alive ping extending an existing visitor session.
type Session struct {
	Hostname  string `json:"hostname,omitempty"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	DNT       string `json:"-"`
}

// BatchSession is one item of a batched session call.
type BatchSession struct {
	Time    time.Time
	Session Session
}

// Filter narrows a statistics read. DomainID, From and To are expected by
// the remote API; everything else is optional dimension narrowing.
type Filter struct {
	DomainID             string
	From                 time.Time
	To                   time.Time
	Start                int
	Scale                string
	Path                 string
	Pattern              string
	EntryPath            string
	ExitPath             string
	Event                string
	EventMetaKey         string
	Language             string
	Country              string
	Region               string
	City                 string
	Referrer             string
	ReferrerName         string
	OS                   string
	Browser              string
	Platform             string
	ScreenClass          string
	UTMSource            string
	UTMMedium            string
	UTMCampaign          string
	UTMContent           string
	UTMTerm              string
	Tag                  string
	Limit                int
	Offset               int
	IncludeAvgTimeOnPage bool
}

// Query encodes the filter as request query parameters, skipping zero
// values.
func (f *Filter) Query() map[string]string {
	query := map[string]string{}
	if f == nil {
		return query
	}
	set := func(key string, value string) {
		if value != "" {
			query[key] = value
		}
	}
	set("id", f.DomainID)
	if !f.From.IsZero() {
		query["from"] = f.From.Format("2006-01-02")
	}
	if !f.To.IsZero() {
		query["to"] = f.To.Format("2006-01-02")
	}
	if f.Start > 0 {
		query["start"] = strconv.Itoa(f.Start)
	}
	set("scale", f.Scale)
	set("path", f.Path)
	set("pattern", f.Pattern)
	set("entry_path", f.EntryPath)
	set("exit_path", f.ExitPath)
	set("event", f.Event)
	set("event_meta_key", f.EventMetaKey)
	set("language", f.Language)
	set("country", f.Country)
	set("region", f.Region)
	set("city", f.City)
	set("referrer", f.Referrer)
	set("referrer_name", f.ReferrerName)
	set("os", f.OS)
	set("browser", f.Browser)
	set("platform", f.Platform)
	set("screen_class", f.ScreenClass)
	set("utm_source", f.UTMSource)
	set("utm_medium", f.UTMMedium)
	set("utm_campaign", f.UTMCampaign)
	set("utm_content", f.UTMContent)
	set("utm_term", f.UTMTerm)
	set("tag", f.Tag)
	if f.Limit > 0 {
		query["limit"] = strconv.Itoa(f.Limit)
	}
	if f.Offset > 0 {
		query["offset"] = strconv.Itoa(f.Offset)
	}
	if f.IncludeAvgTimeOnPage {
		query["include_avg_time_on_page"] = "true"
	}
	return query
}

// Domain is a site registered with the analytics service.
type Domain struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	Hostname           string `json:"hostname"`
	Subdomain          string `json:"subdomain"`
	IdentificationCode string `json:"identification_code"`
	Public             bool   `json:"public"`
	Timezone           string `json:"timezone"`
}

// MetaStats is the shared slice of every dimension breakdown.
type MetaStats struct {
	Visitors         int     `json:"visitors"`
	RelativeVisitors float64 `json:"relative_visitors"`
}

type VisitorStats struct {
	Day        time.Time `json:"day"`
	Visitors   int       `json:"visitors"`
	Sessions   int       `json:"sessions"`
	Views      int       `json:"views"`
	Bounces    int       `json:"bounces"`
	BounceRate float64   `json:"bounce_rate"`
}

type TotalVisitorStats struct {
	Visitors   int     `json:"visitors"`
	Sessions   int     `json:"sessions"`
	Views      int     `json:"views"`
	Bounces    int     `json:"bounces"`
	BounceRate float64 `json:"bounce_rate"`
}

type PageStats struct {
	Path                    string  `json:"path"`
	Visitors                int     `json:"visitors"`
	Sessions                int     `json:"sessions"`
	Views                   int     `json:"views"`
	Bounces                 int     `json:"bounces"`
	BounceRate              float64 `json:"bounce_rate"`
	AverageTimeSpentSeconds int     `json:"average_time_spent_seconds"`
}

type EntryStats struct {
	Path      string  `json:"path"`
	Visitors  int     `json:"visitors"`
	Sessions  int     `json:"sessions"`
	Entries   int     `json:"entries"`
	EntryRate float64 `json:"entry_rate"`
}

type ExitStats struct {
	Path     string  `json:"path"`
	Visitors int     `json:"visitors"`
	Sessions int     `json:"sessions"`
	Exits    int     `json:"exits"`
	ExitRate float64 `json:"exit_rate"`
}

type ConversionGoal struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PathPattern string  `json:"path_pattern"`
	Visitors    int     `json:"visitors"`
	CR          float64 `json:"cr"`
}

type EventStats struct {
	Name                   string   `json:"name"`
	Visitors               int      `json:"visitors"`
	Views                  int      `json:"views"`
	CR                     float64  `json:"cr"`
	AverageDurationSeconds int      `json:"average_duration_seconds"`
	MetaKeys               []string `json:"meta_keys"`
	MetaValue              string   `json:"meta_value"`
}

type EventListStats struct {
	Name     string            `json:"name"`
	Meta     map[string]string `json:"meta"`
	Visitors int               `json:"visitors"`
	Count    int               `json:"count"`
}

type Growth struct {
	VisitorsGrowth  float64 `json:"visitors_growth"`
	ViewsGrowth     float64 `json:"views_growth"`
	SessionsGrowth  float64 `json:"sessions_growth"`
	BouncesGrowth   float64 `json:"bounces_growth"`
	TimeSpentGrowth float64 `json:"time_spent_growth"`
	CRGrowth        float64 `json:"cr_growth"`
}

type ActiveVisitorStats struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Visitors int    `json:"visitors"`
}

type ActiveVisitorsData struct {
	Stats    []ActiveVisitorStats `json:"stats"`
	Visitors int                  `json:"visitors"`
}

type VisitorHourStats struct {
	Hour     int `json:"hour"`
	Visitors int `json:"visitors"`
	Sessions int `json:"sessions"`
	Views    int `json:"views"`
}

type LanguageStats struct {
	MetaStats
	Language string `json:"language"`
}

type ReferrerStats struct {
	Referrer     string  `json:"referrer"`
	ReferrerName string  `json:"referrer_name"`
	ReferrerIcon string  `json:"referrer_icon"`
	Visitors     int     `json:"visitors"`
	Sessions     int     `json:"sessions"`
	Bounces      int     `json:"bounces"`
	BounceRate   float64 `json:"bounce_rate"`
}

type OSStats struct {
	MetaStats
	OS string `json:"os"`
}

type OSVersionStats struct {
	MetaStats
	OS        string `json:"os"`
	OSVersion string `json:"os_version"`
}

type BrowserStats struct {
	MetaStats
	Browser string `json:"browser"`
}

type BrowserVersionStats struct {
	MetaStats
	Browser        string `json:"browser"`
	BrowserVersion string `json:"browser_version"`
}

type CountryStats struct {
	MetaStats
	CountryCode string `json:"country_code"`
}

type RegionStats struct {
	MetaStats
	CountryCode string `json:"country_code"`
	Region      string `json:"region"`
}

type CityStats struct {
	MetaStats
	CountryCode string `json:"country_code"`
	Region      string `json:"region"`
	City        string `json:"city"`
}

type PlatformStats struct {
	PlatformDesktop         int     `json:"platform_desktop"`
	PlatformMobile          int     `json:"platform_mobile"`
	PlatformUnknown         int     `json:"platform_unknown"`
	RelativePlatformDesktop float64 `json:"relative_platform_desktop"`
	RelativePlatformMobile  float64 `json:"relative_platform_mobile"`
	RelativePlatformUnknown float64 `json:"relative_platform_unknown"`
}

type ScreenClassStats struct {
	MetaStats
	ScreenClass string `json:"screen_class"`
}

type KeywordStats struct {
	Keyword     string  `json:"keyword"`
	Visitors    int     `json:"visitors"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Position    float64 `json:"position"`
	Impressions int     `json:"impressions"`
}

type TagStats struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Visitors int    `json:"visitors"`
	Views    int    `json:"views"`
}

type TimeSpentStats struct {
	Day                     time.Time `json:"day"`
	AverageTimeSpentSeconds int       `json:"average_time_spent_seconds"`
}

type UTMSourceStats struct {
	MetaStats
	UTMSource string `json:"utm_source"`
}

type UTMMediumStats struct {
	MetaStats
	UTMMedium string `json:"utm_medium"`
}

type UTMCampaignStats struct {
	MetaStats
	UTMCampaign string `json:"utm_campaign"`
}

type UTMContentStats struct {
	MetaStats
	UTMContent string `json:"utm_content"`
}

type UTMTermStats struct {
	MetaStats
	UTMTerm string `json:"utm_term"`
}
