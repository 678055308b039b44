package naming

import (
	"fmt"
	"regexp"
	"time"

	"postrec/internal/textutil"
)

// Extension is the container suffix of both source and output files.
const Extension = ".m4a"

const timestampLayout = "2006-01-02T15:04:05Z"

var filenamePattern = regexp.MustCompile(
	`(?i)^(?P<artist>.+?)\s*-\s*` +
		`(?P<date>\d{4}-\d{2}-\d{2})\s+` +
		`(?P<hour>\d{2})h(?P<minute>\d{2})m(?P<second>\d{2})s` +
		`\s*-\s*(?P<title>.+?)\.m4a$`)

// DecodedName holds the fields of a recording filename.
type DecodedName struct {
	Source string
	Artist string
	Date   string
	Hour   string
	Minute string
	Second string
	Title  string
}

// Decode splits filename into its fields. The title is whitespace-normalized.
// A name that does not follow the pattern yields a *FormatError.
func Decode(filename string) (DecodedName, error) {
	m := filenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return DecodedName{}, &FormatError{Filename: filename}
	}
	group := func(name string) string {
		return m[filenamePattern.SubexpIndex(name)]
	}
	return DecodedName{
		Source: filename,
		Artist: group("artist"),
		Date:   group("date"),
		Hour:   group("hour"),
		Minute: group("minute"),
		Second: group("second"),
		Title:  textutil.NormalizeWhitespace(group("title")),
	}, nil
}

// Timestamp formats the capture time as YYYY-MM-DDThh:mm:ssZ.
func (n DecodedName) Timestamp() string {
	return fmt.Sprintf("%sT%s:%s:%sZ", n.Date, n.Hour, n.Minute, n.Second)
}

// CanonicalName returns the filename the processed recording is stored under.
func (n DecodedName) CanonicalName() string {
	return n.Title + "-" + n.Timestamp() + Extension
}

// Time parses the capture time. Names with out-of-range fields (month 13,
// hour 25) still decode; Time reports them as an error.
func (n DecodedName) Time() (time.Time, error) {
	return time.Parse(timestampLayout, n.Timestamp())
}
