// Localecfg resolves hierarchically-named configuration files for an
// identity and prints the merged result.
//
// Usage:
//
//	localecfg resolve web 1 prod --dir /etc/myapp       # merged config as YAML
//	localecfg resolve web 1 prod --format json          # merged config as JSON
//	localecfg stems web 1 prod --dir /etc/myapp         # probed file stems
//	localecfg combinations web 1 prod --algorithm permute
//
// The identity is given as positional arguments, least to most specific.
// See "localecfg resolve --help" for the full set of construction flags.
package main
