package cryptoalert

const (
	// apiLoginURI is the URI path for email/password login.
	apiLoginURI = "/api/auth/login"
	// apiRegisterURI is the URI path for account registration.
	apiRegisterURI = "/api/auth/register"
	// apiTelegramBindStartURI is the URI path that opens a Telegram binding session.
	apiTelegramBindStartURI = "/api/auth/tg/bind/start"
	// apiTelegramBindStatusURI is the URI path for polling a Telegram binding session.
	apiTelegramBindStatusURI = "/api/auth/tg/bind/status"
	// apiUserMeURI is the URI path for the current user.
	apiUserMeURI = "/api/user/me"
	// apiSubscriptionURI is the URI path for subscription CRUD. The trailing slash is significant.
	apiSubscriptionURI = "/api/subscription/"
)

const (
	queryToken  = "token"
	querySymbol = "symbol"
	queryCycle  = "cycle"
)

const (
	contentTypeHeader = "Content-Type"
	acceptHeader      = "Accept"
	jsonContentType   = "application/json"

	// maxResponseBodySize bounds how much of a response body is read into memory.
	maxResponseBodySize = 4 << 20
)
