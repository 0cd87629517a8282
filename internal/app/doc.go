// Package app implements the cryptoalert commands.
// It wires configuration, the credential store, the API client and the
// session service together, talks to the user, and turns API errors into
// messages with a hint on what to do next.
package app
