package core

// Versioned API paths, joined with the configured base URL at request time.
const (
	TokenEndpoint = "/api/v1/token"

	HitEndpoint          = "/api/v1/hit"
	HitBatchEndpoint     = "/api/v1/hit/batch"
	EventEndpoint        = "/api/v1/event"
	EventBatchEndpoint   = "/api/v1/event/batch"
	SessionEndpoint      = "/api/v1/session"
	SessionBatchEndpoint = "/api/v1/session/batch"

	DomainEndpoint = "/api/v1/domain"

	SessionDurationEndpoint = "/api/v1/statistics/duration/session"
	TimeOnPageEndpoint      = "/api/v1/statistics/duration/time"
	UTMSourceEndpoint       = "/api/v1/statistics/utm/source"
	UTMMediumEndpoint       = "/api/v1/statistics/utm/medium"
	UTMCampaignEndpoint     = "/api/v1/statistics/utm/campaign"
	UTMContentEndpoint      = "/api/v1/statistics/utm/content"
	UTMTermEndpoint         = "/api/v1/statistics/utm/term"
	TotalVisitorsEndpoint   = "/api/v1/statistics/total"
	VisitorsEndpoint        = "/api/v1/statistics/visitor"
	PagesEndpoint           = "/api/v1/statistics/page"
	EntryPagesEndpoint      = "/api/v1/statistics/page/entry"
	ExitPagesEndpoint       = "/api/v1/statistics/page/exit"
	ConversionGoalsEndpoint = "/api/v1/statistics/goals"
	EventsEndpoint          = "/api/v1/statistics/events"
	EventMetadataEndpoint   = "/api/v1/statistics/event/meta"
	ListEventsEndpoint      = "/api/v1/statistics/event/list"
	GrowthRateEndpoint      = "/api/v1/statistics/growth"
	ActiveVisitorsEndpoint  = "/api/v1/statistics/active"
	TimeOfDayEndpoint       = "/api/v1/statistics/hours"
	LanguagesEndpoint       = "/api/v1/statistics/language"
	ReferrerEndpoint        = "/api/v1/statistics/referrer"
	OSEndpoint              = "/api/v1/statistics/os"
	OSVersionsEndpoint      = "/api/v1/statistics/os/version"
	BrowserEndpoint         = "/api/v1/statistics/browser"
	BrowserVersionsEndpoint = "/api/v1/statistics/browser/version"
	CountryEndpoint         = "/api/v1/statistics/country"
	RegionEndpoint          = "/api/v1/statistics/region"
	CityEndpoint            = "/api/v1/statistics/city"
	PlatformEndpoint        = "/api/v1/statistics/platform"
	ScreenEndpoint          = "/api/v1/statistics/screen"
	KeywordsEndpoint        = "/api/v1/statistics/keywords"
	TagKeysEndpoint         = "/api/v1/statistics/tags"
	TagDetailsEndpoint      = "/api/v1/statistics/tag/details"
)
