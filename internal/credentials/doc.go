// Package credentials holds the single bearer-token slot of the client.
//
// A Store keeps at most one token: writes replace the previous value and
// an empty write clears the slot. MemoryStore is used in tests and for
// one-shot invocations, FileStore persists the token in a small YAML file
// under the user's home directory so it survives between runs.
package credentials
