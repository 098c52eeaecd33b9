// Package client contains client-side building blocks for the ESS backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     PHP backend: login, employee profile and update, documents, notices,
//     holidays, leave, handbook, chat, birthdays and document files.
//  2. A concrete HTTP implementation (see HTTPClient) that sends form and
//     multipart requests, tags every request with an X-Request-ID, and
//     decodes the {status, data|message} envelope at the boundary.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, opening an SQLite database and applying embedded goose
//     migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. A response with status "error"
// becomes an *ApplicationError carrying the backend message. Malformed
// bodies become a *ParseError. UserMessage turns any of them into the text
// shown to the user.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every operation takes a
// context.Context; cancelling it aborts the request in flight.
package client
