package cryptoalert

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oshokin/cryptoalert-cli/internal/config"
	"github.com/oshokin/cryptoalert-cli/internal/logger"
	http_transport "github.com/oshokin/cryptoalert-cli/internal/transport/http"
	"github.com/oshokin/cryptoalert-cli/internal/utils"
	"github.com/oshokin/cryptoalert-cli/internal/version"
)

// Client defines the interface for interacting with the CryptoAlert API.
type Client interface {
	// Login exchanges email and password for a bearer token. The token is not stored.
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	// Register creates an account and returns a bearer token for it. The token is not stored.
	Register(ctx context.Context, email, password string) (*AuthResponse, error)
	// TelegramBindStart opens a Telegram binding session for the authenticated user.
	TelegramBindStart(ctx context.Context) (*BindingSession, error)
	// TelegramBindStatus reports whether the binding session identified by correlationToken completed.
	TelegramBindStatus(ctx context.Context, correlationToken string) (*BindingStatus, error)
	// CurrentUser fetches the authenticated user.
	CurrentUser(ctx context.Context) (*User, error)
	// ListSubscriptions lists the user's subscriptions, filtered by symbol when it is not empty.
	ListSubscriptions(ctx context.Context, symbol string) (*SubscriptionList, error)
	// CreateSubscription subscribes the user to symbol for every cycle in cycles.
	CreateSubscription(ctx context.Context, symbol string, cycles []string) (*Ack, error)
	// DeleteSubscription removes the (symbol, cycle) subscription.
	DeleteSubscription(ctx context.Context, symbol, cycle string) (*Ack, error)
	// GetBaseURL returns the configured API base URL; empty means relative paths on the site origin.
	GetBaseURL() string
}

// ClientImpl implements the Client interface for interacting with the CryptoAlert API.
type ClientImpl struct {
	// baseURL is the resolved API base URL, possibly empty.
	baseURL string
	// apiRoot is the absolute prefix every API path is appended to.
	apiRoot string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

// productName is the product token of the User-Agent header.
const productName = "cryptoalert-cli"

// ResolveBaseURL trims spaces and trailing slashes from a configured base URL.
// An empty result means "use relative /api paths".
func ResolveBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// NewClient creates and returns a new instance of ClientImpl.
// The base URL is resolved here, once; later changes to cfg do not affect the client.
// tokens is consulted on every request to attach the bearer token.
func NewClient(cfg *config.Config, tokens http_transport.TokenProvider) (Client, error) {
	return newClient(cfg, tokens, http.DefaultTransport)
}

func newClient(cfg *config.Config, tokens http_transport.TokenProvider, base http.RoundTripper) (*ClientImpl, error) {
	baseURL := ResolveBaseURL(cfg.APIBaseURL)

	apiRoot, err := resolveAPIRoot(baseURL, cfg.SiteURL)
	if err != nil {
		return nil, err
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = utils.BuildUserAgent(productName, version.Short())
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	// The auth injector sits below the header decorators and above logging,
	// so dumps show the header the server receives, redacted.
	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewRequestIDInjector(
				http_transport.NewAuthInjector(
					http_transport.NewLogTransport(base, cfg.ParsedMaxLogLength),
					tokens)),
			utils.NewSimpleUserAgentProvider(userAgent)),
		// Redirects are returned as is: the auth injector would attach the token on every hop.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Timeout: timeout,
	}

	logger.Debugf(context.Background(), "API requests go to %s", apiRoot)

	return &ClientImpl{
		baseURL:    baseURL,
		apiRoot:    apiRoot,
		httpClient: httpClient,
	}, nil
}

// resolveAPIRoot picks the absolute origin requests are sent to:
// the base URL when set, otherwise the scheme and host of the site URL.
func resolveAPIRoot(baseURL, siteURL string) (string, error) {
	if baseURL != "" {
		if _, err := url.Parse(baseURL); err != nil {
			return "", fmt.Errorf("invalid API base URL: %w", err)
		}

		return baseURL, nil
	}

	site, err := url.Parse(ResolveBaseURL(siteURL))
	if err != nil {
		return "", fmt.Errorf("invalid site URL: %w", err)
	}

	if site.Scheme == "" || site.Host == "" {
		return "", fmt.Errorf("%w: '%s'", config.ErrInvalidSiteURL, siteURL)
	}

	return (&url.URL{Scheme: site.Scheme, Host: site.Host}).String(), nil
}

// Login exchanges email and password for a bearer token.
func (c *ClientImpl) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return doJSON[AuthResponse](c, ctx, http.MethodPost, apiLoginURI, nil, &Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
}

// Register creates an account and returns a bearer token for it.
func (c *ClientImpl) Register(ctx context.Context, email, password string) (*AuthResponse, error) {
	return doJSON[AuthResponse](c, ctx, http.MethodPost, apiRegisterURI, nil, &Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
}

// TelegramBindStart opens a Telegram binding session. It requires a stored bearer token.
func (c *ClientImpl) TelegramBindStart(ctx context.Context) (*BindingSession, error) {
	return doJSON[BindingSession](c, ctx, http.MethodPost, apiTelegramBindStartURI, nil, nil)
}

// TelegramBindStatus polls a binding session. It has no side effects and is safe to repeat.
// After the session's window elapses the server keeps answering bound=false.
func (c *ClientImpl) TelegramBindStatus(ctx context.Context, correlationToken string) (*BindingStatus, error) {
	if strings.TrimSpace(correlationToken) == "" {
		return nil, ErrEmptyCorrelationToken
	}

	query := url.Values{}
	query.Set(queryToken, correlationToken)

	return doJSON[BindingStatus](c, ctx, http.MethodGet, apiTelegramBindStatusURI, query, nil)
}

// CurrentUser fetches the authenticated user. The result is never cached.
func (c *ClientImpl) CurrentUser(ctx context.Context) (*User, error) {
	return doJSON[User](c, ctx, http.MethodGet, apiUserMeURI, nil, nil)
}

// ListSubscriptions lists subscriptions; a non-empty symbol is uppercased and used as an exact filter.
func (c *ClientImpl) ListSubscriptions(ctx context.Context, symbol string) (*SubscriptionList, error) {
	var query url.Values

	if symbol = NormalizeSymbol(symbol); symbol != "" {
		query = url.Values{}
		query.Set(querySymbol, symbol)
	}

	result, err := doJSON[SubscriptionList](c, ctx, http.MethodGet, apiSubscriptionURI, query, nil)
	if err != nil {
		return nil, err
	}

	if result.Data == nil {
		result.Data = []Subscription{}
	}

	return result, nil
}

// CreateSubscription subscribes to symbol for each cycle. Duplicates are passed to the server as is.
func (c *ClientImpl) CreateSubscription(ctx context.Context, symbol string, cycles []string) (*Ack, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	if len(cycles) == 0 {
		return nil, ErrEmptyCycles
	}

	cycles = utils.Map(cycles, strings.TrimSpace)

	for _, cycle := range cycles {
		if cycle == "" {
			return nil, ErrEmptyCycle
		}
	}

	return doJSON[Ack](c, ctx, http.MethodPost, apiSubscriptionURI, nil, &CreateSubscriptionRequest{
		Symbol: symbol,
		Cycles: cycles,
	})
}

// DeleteSubscription removes the (symbol, cycle) subscription.
// Deleting a missing pair yields whatever the server answers, typically ErrNotFound or a plain ack.
func (c *ClientImpl) DeleteSubscription(ctx context.Context, symbol, cycle string) (*Ack, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	cycle = strings.TrimSpace(cycle)
	if cycle == "" {
		return nil, ErrEmptyCycle
	}

	query := url.Values{}
	query.Set(querySymbol, symbol)
	query.Set(queryCycle, cycle)

	return doJSON[Ack](c, ctx, http.MethodDelete, apiSubscriptionURI, query, nil)
}

// GetBaseURL returns the resolved API base URL.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}
