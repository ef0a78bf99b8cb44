// Package health exposes liveness and readiness probes.
//
//   - GET /alive : Always 200 while the process serves requests.
//   - GET /health : Probes the storage backend (ListBuckets) and the audit
//     database when one is configured. 200 when every probe is up, 503
//     with the same report otherwise.
//
// Both routes are public and mounted before the API key gate.
package health
