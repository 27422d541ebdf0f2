// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal application services, translating HTTP concerns to
// business operations.
//
// Every error leaving a handler goes through HandleAPIError, which picks the
// status code and the client-safe erro/mensagem pair and logs the redacted
// details.
package api
