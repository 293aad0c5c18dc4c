// Package migrations holds the ordered schema migrations for the dashboard.
//
// Each migration registers itself via init(), so importing this package for
// side effects (as cmd/opsdash does) is enough to make them runnable.
package migrations
