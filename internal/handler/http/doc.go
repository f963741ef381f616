// Package http implements the HTTP transport layer of the application.
//
// It wires the chi router, the request lifecycle that turns endpoint results
// and failures into response envelopes, and the middleware around it: trace
// ids, access logging, CORS and bearer authentication. Routes opt into the
// envelope either through a path rule in configuration or through a route
// annotation; everything else is served as plain HTTP.
package http
