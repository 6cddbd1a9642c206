// Package greeting provides the demonstration greeting controller.
//
// The decision itself lives in the pure SayHello function; the HTTP handler
// only maps its result onto a status code and a {"response": ...} body.
//
// # HTTP Endpoints
//
//   - GET /api/say-hello/:name : 250 {"response":"hello"} on success,
//     400 {"response":"error"} when name is the "userfail" sentinel or the
//     handler fails unexpectedly.
package greeting
