package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/akshat7606/QuickC/internal/cab/catalog"
	"github.com/akshat7606/QuickC/internal/cab/service"
	"github.com/akshat7606/QuickC/internal/cab/store"
	"github.com/akshat7606/QuickC/pkg/faillog"
	"github.com/akshat7606/QuickC/pkg/httpx"
	"github.com/akshat7606/QuickC/pkg/mapmyindia"
	"github.com/akshat7606/QuickC/pkg/slogx"
	"github.com/klauspost/compress/gzhttp"

	_ "github.com/akshat7606/QuickC/api/cab" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	Catalog        *catalog.Catalog
	SearchService  *service.SearchService
	BookingService *service.BookingService
	Resolver       *mapmyindia.Resolver
	Failures       *faillog.Sink
	GeocodeDebug   bool
}

func NewRouter(buildVersion string, st store.Store, cors httpx.CORSConfig, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Probes are polled constantly, keep them out of the info log.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger, "/livez", "/readyz"),
		httpx.CORS(cors),
		gzipMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRides()
	r.registerIVR()
	r.registerGeocoding()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Universal Cab Aggregator API
//	@version		0.1.0
//	@description	Ride search and booking across app and IVR channels, with a MapMyIndia geocoding proxy
//	@description	that falls back from a static key to OAuth.
//
//	@contact.name	QuickC Team
//	@contact.url	https://github.com/akshat7606/QuickC
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:5000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerRides() {
	searchHandler := &SearchHandler{SearchService: r.SearchService}
	bookings := &BookingsHandler{BookingService: r.BookingService}

	// POST /search - lenient, pricing is cheap and read-only
	r.Mux.Handle("POST /v1/search",
		httpx.Chain(searchHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /book - moderate rate limit (writes)
	r.Mux.Handle("POST /v1/book",
		httpx.Chain(http.HandlerFunc(bookings.HandleBook),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/history/{phone}",
		httpx.Chain(http.HandlerFunc(bookings.HandleHistory),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/bookings/{booking_id}",
		httpx.Chain(http.HandlerFunc(bookings.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerIVR() {
	// Twilio posts from a handful of IPs, so key by caller as well.
	h := &IVRHandler{BookingService: r.BookingService}
	r.Mux.Handle("POST /v1/ivr",
		httpx.Chain(h,
			httpx.RateLimitByIPAndFormField(httpx.ModerateLimit, "From"),
		),
	)
}

func (r *Router) registerGeocoding() {
	h := &GeocodeHandler{
		Resolver: r.Resolver,
		Failures: r.Failures,
		Debug:    r.GeocodeDebug,
	}

	// Geocoding spends provider quota
	r.Mux.Handle("GET /v1/mapmyindia/autocomplete",
		httpx.Chain(http.HandlerFunc(h.HandleAutocomplete),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/mapmyindia/reverse",
		httpx.Chain(http.HandlerFunc(h.HandleReverse),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /logs - strict, the admin token is a shared secret
	r.Mux.Handle("GET /v1/mapmyindia/logs",
		httpx.Chain(http.HandlerFunc(h.HandleLogs),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}",
		httpx.Chain(ServiceInfoHandler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/partner/health",
		httpx.Chain(PartnerHealthHandler(r.Catalog),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Failures),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func gzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
