// Package http implements the REST transport of the vault server.
//
// Handlers decode JSON, call the service layer and map service errors to
// status codes and fixed plain-text messages (see errors_mapper.go). The
// server never learns a password: login and password change run SRP, and
// vault blobs are opaque bytes. Middleware adds trace ids, access logging,
// gzip with a body size cap, per-address rate limiting of unauthenticated
// endpoints, bearer authentication and the ingest key check of the mail
// delivery endpoint.
package http
