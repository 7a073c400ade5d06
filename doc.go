// Package localeconfig resolves hierarchically-named configuration files
// into one merged configuration.
//
// An identity — an ordered list of classifier strings such as role,
// instance number and environment — is expanded into every candidate
// combination of concrete values and a wildcard token, each combination is
// mapped to a file stem under a directory, and whichever files exist are
// deep-merged least specific first into a single mapping. Deployment
// tooling uses this to layer per-role and per-host configuration over
// shared defaults without bespoke logic per environment.
//
// For the identity ["web", "prod"] with the default settings, the probed
// stems are, in merge order:
//
//	default
//	all.all
//	all.prod
//	web.all
//	web.prod
//	override
//
// Each stem is tried against every supported file format (YAML, JSON,
// JSONC, TOML); missing files are skipped. Keys from later, more specific
// fragments override identically-named keys from earlier ones, nested
// mappings merging key by key and every other value replaced wholesale.
//
//	cfg, err := localeconfig.New([]string{"web", "prod"},
//	    localeconfig.WithDirectory("/etc/myapp"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	settings, err := cfg.Merged()
//
// The permute algorithm (WithAlgorithm(combination.Permute)) instead probes
// every ordered subset of the identity values, and WithStrictDefaults
// rejects any key not declared in the default fragment. Intermediate
// artifacts — combinations, stems, per-file fragments — stay accessible on
// the Config for diagnostics.
package localeconfig
