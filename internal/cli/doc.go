// Package cli implements the localecfg command-line interface: resolving
// merged configurations and inspecting the intermediate combinations and
// stems the resolver derives from an identity.
package cli
