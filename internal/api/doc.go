// Package api provides the request pipeline for the MailFinch REST API.
//
// A call flows through three pieces:
//
//   - [Client] implements [Connection]. It adds the api_key parameter,
//     builds the endpoint URL as base + path + ".json" and parses the
//     reply envelope.
//   - A [Transport] performs the exchange. [HTTPTransport] sends GET
//     parameters as a query string and everything else as a JSON body.
//   - [ParseResponse] unwraps the {"response": {...}} envelope into a
//     [Response] whose payload is decoded on demand with
//     [Response.Object] or [Response.Array].
//
// # Parameters
//
// Request parameters are [Params], a map of [Value]. A Value is a string,
// null, or a nested Params object; [Params.Encode] is the single place
// that turns them into wire form for a given [Method].
//
// # Error Handling
//
// Every failure is an *apierrors.Error. HTTP statuses 400, 401, 403, 404,
// 422, 500, 502 and 503 are reported with fixed messages; any other status
// is treated as success and its body parsed as usual.
//
// Requests are attempted once. There is no retry or backoff.
package api
