package rankapi

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"Page_Rank/pagerank"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

const (
	getRankEndpoint    = "/getPageRank"
	updatePageEndpoint = "/updatePageData"
	rankEndpoint       = "/rank/{url}"
	metricsEndpoint    = "/metrics"

	defaultShutdownTimeout = 10 * time.Second
)

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rankapi_http_requests_total",
	Help: "The number of HTTP requests served by the rank API, by endpoint and status code.",
}, []string{"endpoint", "code"})

// RankAPI defines the set of rank service methods exposed over HTTP.
type RankAPI interface {
	GetRank(ctx context.Context, url string) (float64, error)
	RecordReference(ctx context.Context, from string, to []string) error
}

// Config encapsulates the settings for configuring the HTTP rank API service.
type Config struct {
	// The rank service to expose.
	RankAPI RankAPI

	// The address to listen for incoming requests.
	ListenAddr string

	// A clock instance for generating response timestamps. If not
	// specified, the default wall-clock will be used instead.
	Clock clock.Clock

	// The time allowed for in-flight requests to complete when the
	// service is shutting down. Defaults to 10s.
	ShutdownTimeout time.Duration

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.RankAPI == nil {
		err = multierror.Append(err, xerrors.New("rank API has not been provided"))
	}
	if cfg.ListenAddr == "" {
		err = multierror.Append(err, xerrors.New("listen address has not been specified"))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
	}
	return err
}

// Service exposes the rank service over a JSON HTTP API.
type Service struct {
	cfg    Config
	router *mux.Router
}

// NewService creates a new HTTP rank API service instance with the specified
// config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("rank API service: config validation failed: %w", err)
	}

	svc := &Service{
		cfg:    cfg,
		router: mux.NewRouter().UseEncodedPath(),
	}

	svc.router.HandleFunc(getRankEndpoint, svc.getRank).Methods(http.MethodPost)
	svc.router.HandleFunc(updatePageEndpoint, svc.updatePage).Methods(http.MethodPost)
	svc.router.HandleFunc(rankEndpoint, svc.rankForURL).Methods(http.MethodGet)
	svc.router.Handle(metricsEndpoint, promhttp.Handler()).Methods(http.MethodGet)
	return svc, nil
}

// Name implements service.Service
func (svc *Service) Name() string { return "rankapi" }

// Run implements service.Service
func (svc *Service) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", svc.cfg.ListenAddr)
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	srv := &http.Server{
		Addr:    svc.cfg.ListenAddr,
		Handler: svc.router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancelFn := context.WithTimeout(context.Background(), svc.cfg.ShutdownTimeout)
		defer cancelFn()
		_ = srv.Shutdown(shutdownCtx)
	}()

	svc.cfg.Logger.WithField("addr", svc.cfg.ListenAddr).Info("listening for incoming requests")
	if err = srv.Serve(l); err == http.ErrServerClosed {
		err = nil
	}
	return err
}

// ServeHTTP implements http.Handler.
func (svc *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

type getRankRequest struct {
	PageURL string `json:"pageUrl"`
}

type getRankResponse struct {
	PageURL   string    `json:"pageUrl"`
	PageRank  float64   `json:"pageRank"`
	Timestamp time.Time `json:"timestamp"`
}

type updatePageRequest struct {
	PageURL      string   `json:"pageUrl"`
	EmbeddedURLs []string `json:"embeddedUrls"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (svc *Service) getRank(w http.ResponseWriter, r *http.Request) {
	var req getRankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PageURL == "" {
		svc.writeJSON(w, getRankEndpoint, http.StatusBadRequest, errorResponse{Error: "pageUrl is required"})
		return
	}
	svc.serveRank(w, r, getRankEndpoint, req.PageURL)
}

func (svc *Service) rankForURL(w http.ResponseWriter, r *http.Request) {
	pageURL, err := url.PathUnescape(mux.Vars(r)["url"])
	if err != nil || pageURL == "" {
		svc.writeJSON(w, rankEndpoint, http.StatusBadRequest, errorResponse{Error: "invalid page URL"})
		return
	}
	svc.serveRank(w, r, rankEndpoint, pageURL)
}

func (svc *Service) serveRank(w http.ResponseWriter, r *http.Request, endpoint, pageURL string) {
	rank, err := svc.cfg.RankAPI.GetRank(r.Context(), pageURL)
	if err != nil {
		if xerrors.Is(err, pagerank.ErrPageNotFound) {
			svc.writeJSON(w, endpoint, http.StatusNotFound, errorResponse{Error: "Page not found"})
			return
		}
		svc.cfg.Logger.WithFields(logrus.Fields{
			"err": err,
			"url": pageURL,
		}).Error("rank lookup failed")
		svc.writeJSON(w, endpoint, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	svc.writeJSON(w, endpoint, http.StatusOK, getRankResponse{
		PageURL:   pageURL,
		PageRank:  rank,
		Timestamp: svc.cfg.Clock.Now().UTC(),
	})
}

func (svc *Service) updatePage(w http.ResponseWriter, r *http.Request) {
	var req updatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PageURL == "" {
		svc.writeJSON(w, updatePageEndpoint, http.StatusBadRequest, errorResponse{Error: "pageUrl is required"})
		return
	}

	if err := svc.cfg.RankAPI.RecordReference(r.Context(), req.PageURL, req.EmbeddedURLs); err != nil {
		svc.cfg.Logger.WithFields(logrus.Fields{
			"err": err,
			"url": req.PageURL,
		}).Error("page update failed")
		svc.writeJSON(w, updatePageEndpoint, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	svc.writeJSON(w, updatePageEndpoint, http.StatusOK, map[string]bool{"success": true})
}

func (svc *Service) writeJSON(w http.ResponseWriter, endpoint string, status int, body interface{}) {
	httpRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		svc.cfg.Logger.WithField("err", err).Error("unable to encode response")
	}
}
