package core

import "context"

// Domain looks up the domain belonging to the authenticated client. The API
// is expected to return at most one domain; an empty response is a distinct
// not-found error, and trailing elements are ignored.
func (c *Client) Domain(ctx context.Context) (Domain, error) {
	var domains []Domain
	if err := c.performGet(ctx, "domain", DomainEndpoint, nil, &domains); err != nil {
		return Domain{}, err
	}
	if len(domains) == 0 {
		return Domain{}, domainNotFoundError()
	}
	return domains[0], nil
}

// SessionDuration returns the average session duration grouped by day.
func (c *Client) SessionDuration(ctx context.Context, filter *Filter) ([]TimeSpentStats, error) {
	var stats []TimeSpentStats
	err := c.performGet(ctx, "session_duration", SessionDurationEndpoint, filter.Query(), &stats)
	return stats, err
}

// TimeOnPage returns the average time on page grouped by day.
func (c *Client) TimeOnPage(ctx context.Context, filter *Filter) ([]TimeSpentStats, error) {
	var stats []TimeSpentStats
	err := c.performGet(ctx, "time_on_page", TimeOnPageEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) UTMSource(ctx context.Context, filter *Filter) ([]UTMSourceStats, error) {
	var stats []UTMSourceStats
	err := c.performGet(ctx, "utm_source", UTMSourceEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) UTMMedium(ctx context.Context, filter *Filter) ([]UTMMediumStats, error) {
	var stats []UTMMediumStats
	err := c.performGet(ctx, "utm_medium", UTMMediumEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) UTMCampaign(ctx context.Context, filter *Filter) ([]UTMCampaignStats, error) {
	var stats []UTMCampaignStats
	err := c.performGet(ctx, "utm_campaign", UTMCampaignEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) UTMContent(ctx context.Context, filter *Filter) ([]UTMContentStats, error) {
	var stats []UTMContentStats
	err := c.performGet(ctx, "utm_content", UTMContentEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) UTMTerm(ctx context.Context, filter *Filter) ([]UTMTermStats, error) {
	var stats []UTMTermStats
	err := c.performGet(ctx, "utm_term", UTMTermEndpoint, filter.Query(), &stats)
	return stats, err
}

// TotalVisitors returns the totals for the filtered range as one object.
func (c *Client) TotalVisitors(ctx context.Context, filter *Filter) (*TotalVisitorStats, error) {
	stats := new(TotalVisitorStats)
	err := c.performGet(ctx, "total_visitors", TotalVisitorsEndpoint, filter.Query(), stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Visitors returns visitor statistics grouped by day.
func (c *Client) Visitors(ctx context.Context, filter *Filter) ([]VisitorStats, error) {
	var stats []VisitorStats
	err := c.performGet(ctx, "visitors", VisitorsEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) Pages(ctx context.Context, filter *Filter) ([]PageStats, error) {
	var stats []PageStats
	err := c.performGet(ctx, "pages", PagesEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) EntryPages(ctx context.Context, filter *Filter) ([]EntryStats, error) {
	var stats []EntryStats
	err := c.performGet(ctx, "entry_pages", EntryPagesEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) ExitPages(ctx context.Context, filter *Filter) ([]ExitStats, error) {
	var stats []ExitStats
	err := c.performGet(ctx, "exit_pages", ExitPagesEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) ConversionGoals(ctx context.Context, filter *Filter) ([]ConversionGoal, error) {
	var stats []ConversionGoal
	err := c.performGet(ctx, "conversion_goals", ConversionGoalsEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) Events(ctx context.Context, filter *Filter) ([]EventStats, error) {
	var stats []EventStats
	err := c.performGet(ctx, "events", EventsEndpoint, filter.Query(), &stats)
	return stats, err
}

// EventMetadata breaks one event down by a single metadata key; the filter
// must set Event and EventMetaKey.
func (c *Client) EventMetadata(ctx context.Context, filter *Filter) ([]EventStats, error) {
	var stats []EventStats
	err := c.performGet(ctx, "event_metadata", EventMetadataEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) ListEvents(ctx context.Context, filter *Filter) ([]EventListStats, error) {
	var stats []EventListStats
	err := c.performGet(ctx, "list_events", ListEventsEndpoint, filter.Query(), &stats)
	return stats, err
}

// Growth compares the filtered range against the preceding one.
func (c *Client) Growth(ctx context.Context, filter *Filter) (*Growth, error) {
	growth := new(Growth)
	err := c.performGet(ctx, "growth", GrowthRateEndpoint, filter.Query(), growth)
	if err != nil {
		return nil, err
	}
	return growth, nil
}

// ActiveVisitors returns pages with visitors active inside the Start window
// (seconds back from now).
func (c *Client) ActiveVisitors(ctx context.Context, filter *Filter) (*ActiveVisitorsData, error) {
	data := new(ActiveVisitorsData)
	err := c.performGet(ctx, "active_visitors", ActiveVisitorsEndpoint, filter.Query(), data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) TimeOfDay(ctx context.Context, filter *Filter) ([]VisitorHourStats, error) {
	var stats []VisitorHourStats
	err := c.performGet(ctx, "time_of_day", TimeOfDayEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) Languages(ctx context.Context, filter *Filter) ([]LanguageStats, error) {
	var stats []LanguageStats
	err := c.performGet(ctx, "languages", LanguagesEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) Referrer(ctx context.Context, filter *Filter) ([]ReferrerStats, error) {
	var stats []ReferrerStats
	err := c.performGet(ctx, "referrer", ReferrerEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) OS(ctx context.Context, filter *Filter) ([]OSStats, error) {
	var stats []OSStats
	err := c.performGet(ctx, "os", OSEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) OSVersions(ctx context.Context, filter *Filter) ([]OSVersionStats, error) {
	var stats []OSVersionStats
	err := c.performGet(ctx, "os_versions", OSVersionsEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) Browser(ctx context.Context, filter *Filter) ([]BrowserStats, error) {
	var stats []BrowserStats
	err := c.performGet(ctx, "browser", BrowserEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) BrowserVersions(ctx context.Context, filter *Filter) ([]BrowserVersionStats, error) {
	var stats []BrowserVersionStats
	err := c.performGet(ctx, "browser_versions", BrowserVersionsEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) Country(ctx context.Context, filter *Filter) ([]CountryStats, error) {
	var stats []CountryStats
	err := c.performGet(ctx, "country", CountryEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) Region(ctx context.Context, filter *Filter) ([]RegionStats, error) {
	var stats []RegionStats
	err := c.performGet(ctx, "region", RegionEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) City(ctx context.Context, filter *Filter) ([]CityStats, error) {
	var stats []CityStats
	err := c.performGet(ctx, "city", CityEndpoint, filter.Query(), &stats)
	return stats, err
}

// Platform returns the desktop/mobile/unknown split as one object.
func (c *Client) Platform(ctx context.Context, filter *Filter) (*PlatformStats, error) {
	stats := new(PlatformStats)
	err := c.performGet(ctx, "platform", PlatformEndpoint, filter.Query(), stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Client) Screen(ctx context.Context, filter *Filter) ([]ScreenClassStats, error) {
	var stats []ScreenClassStats
	err := c.performGet(ctx, "screen", ScreenEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) Keywords(ctx context.Context, filter *Filter) ([]KeywordStats, error) {
	var stats []KeywordStats
	err := c.performGet(ctx, "keywords", KeywordsEndpoint, filter.Query(), &stats)
	return stats, err
}

func (c *Client) TagKeys(ctx context.Context, filter *Filter) ([]TagStats, error) {
	var stats []TagStats
	err := c.performGet(ctx, "tag_keys", TagKeysEndpoint, filter.Query(), &stats)
	return stats, err
}

// TagDetails breaks a single tag key down by value; the filter must set Tag.
func (c *Client) TagDetails(ctx context.Context, filter *Filter) ([]TagStats, error) {
	var stats []TagStats
	err := c.performGet(ctx, "tag_details", TagDetailsEndpoint, filter.Query(), &stats)
	return stats, err
}
