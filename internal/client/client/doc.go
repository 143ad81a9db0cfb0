// Package client contains the transport side of the clinic terminal client.
//
// # Overview
//
// The package provides:
//  1. The Client contract for the parts of the clinic REST API that the
//     terminal client uses: ObtainToken, Register and a generic Get for views.
//  2. HTTPClient, a thin net/http implementation. Authenticated requests carry
//     "Authorization: Bearer <access>" from an injected token source; every
//     request carries a fresh X-Request-ID. There is no retry and no token
//     refresh: a rejected token surfaces as ErrUnauthorized.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens the
//     sqlite session database and applies the embedded goose migrations.
//
// # Error Handling
//
// Callers match with errors.Is / errors.As:
//   - ErrUnauthorized: 401 or 403.
//   - ErrUnavailable: transport failures, timeouts, 502/503/504.
//   - *APIError: any other non-2xx status, with the response body.
package client
