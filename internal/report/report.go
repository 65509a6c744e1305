package report

// Record is the value stored per build under /workers/{worker}/reports.
type Record struct {
	Report    string `json:"report"`
	Timestamp int64  `json:"timestamp"`
	Verdict   bool   `json:"verdict"`
}

// SuccessVerdict is the only verdict string that publishes as passed.
const SuccessVerdict = "success"

// Passed reports whether verdict is exactly "success". Case matters.
func Passed(verdict string) bool {
	return verdict == SuccessVerdict
}

// HTMLURLRedirect returns a minimal HTML page that immediately redirects the
// browser to url. url is inserted as-is, without escaping.
func HTMLURLRedirect(url string) string {
	return `<!DOCTYPE html>` +
		`<html>` +
		` <head>` +
		`  <title>HTML Meta Tag</title>` +
		`  <meta http-equiv = "refresh" content = "0; url = ` + url + `" />` +
		` </head>` +
		` <body>` +
		`  <p>Redirecting to another URL</p>` +
		` </body>` +
		`</html>`
}

// Publication is a record as written for one worker and build.
type Publication struct {
	WorkerID string
	BuildID  string
	Record   Record
}
