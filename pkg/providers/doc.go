// Package providers defines the output-format adapter contract and the
// pieces shared by all adapters: the registry, per-rule routing, the
// provider-scoped front-matter override merge, and the section buffer used
// by aggregate providers.
//
// A provider converts rule documents into one downstream representation and
// owns exactly one output target for its lifetime. Its lifecycle is strict:
// Init, zero or more Handle calls, Finish. Handle calls for different files
// may run concurrently, so implementations must keep any cross-file state
// behind their own synchronization.
package providers
