// Package cli implements the bigod command line interface.
//
// Two commands are exposed:
//
//   - serve: run the HTTP API server (see pkg/api)
//   - analyze: analyze a local code snippet and print the result
//
// The analyze command shares the exact pipeline the server uses, so a
// snippet analyzed locally produces the same result shape as POST /analyze.
//
// # Usage
//
//	bigod serve
//	bigod analyze --file sort.py --language python
//	bigod analyze -f - -l go --format yaml < main.go
//
// Logging level is controlled with the global --log-level flag.
package cli
