// Package typenv provides typed access to environment variables with
// pluggable per-name custom parsers and a uniform error surface.
//
// Typenv reads a flat name-to-string mapping once at construction time
// (process environment, an optional .env file, or an explicit map), then
// converts raw values on demand through a closed set of kinds: string, int,
// float, bool, date, duration, uuid, json, path, url, list, map, and bytes.
//
// # Key Components
//
//   - Env: Immutable raw environment plus the custom parser registry
//   - Kind: Closed enum of supported conversion targets
//   - ParserFunc: Caller-supplied conversion bound to a single variable name
//   - LoadError / MissingError / ParseError: The complete failure taxonomy
//
// # Sources
//
// The environment is assembled exactly once by New. Sources are merged in
// the order their options appear, with later sources overriding earlier
// values for the same name:
//
//	env, err := typenv.New(typenv.FromEnviron(), typenv.FromFile(".env"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Example Usage
//
//	port, err := env.Int("PORT")
//	active, err := env.Bool("IS_ACTIVE")
//	endpoint, err := env.URL("API_ENDPOINT")
//
//	// Register a custom parser for a single variable name. It overrides
//	// the built-in converter for that name regardless of the kind asked for.
//	env.RegisterParser("RELEASE_DATE", func(raw string) (any, error) {
//	    return time.Parse("2006/01/02", raw)
//	})
//
// The package never logs and never exits; every failure is returned as one
// of the three error kinds above. See the dotenv package for the .env file
// format and the cmd/typenv binary for shell access to the same converters.
package typenv
