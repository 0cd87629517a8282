// Package auth manages the client-side session of a CryptoAlert user.
//
// It ties the API client to a credential store: successful login and
// registration persist the bearer token, logout clears it, and every
// later request picks it up through the transport. It also drives the
// Telegram binding handshake by polling the bind status until the user
// starts the bot, the session window closes, or the caller gives up.
package auth
