// Package server holds the HTTP server configuration.
//
// The serve command builds the Fiber application from it: the listen port, the API key
// checked by the auth middleware, the dataset cache TTL and the optional cron schedule
// for background refreshes.
package server
