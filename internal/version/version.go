// Package version identifies the client build. Name doubles as the
// default client name reported to servers in the c parameter.
package version

// Set at build time with -ldflags.
var (
	Name    = "opensonic-go"
	Version = "1.0.0"
	Commit  = ""
)

// String returns the banner line, e.g. "opensonic-go v1.0.0 (abc1234)".
func String() string {
	s := Name + " v" + Version
	if Commit != "" {
		short := Commit
		if len(short) > 7 {
			short = short[:7]
		}
		s += " (" + short + ")"
	}
	return s
}
