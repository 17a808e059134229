/*
Package observability turns sieve lifecycle hooks into Prometheus metrics.

Metrics are registered on a caller-supplied registry so that several runs in
the same process stay independent. Use Metrics.Hooks to obtain the
domain.SieveHooks to pass to the sieve, and Dump to print the collected
families in the Prometheus text format.
*/
package observability
