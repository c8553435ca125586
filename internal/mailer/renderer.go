// Package mailer renders interview emails and hands them to an SMTP transport
package mailer

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/interviewmail/backend/internal/models"
)

// InterviewLayout is the long form used for the {{interview_datetime}} placeholder
const InterviewLayout = "January 02, 2006 at 03:04 PM"

// Built-in placeholder names
const (
	KeyName              = "name"
	KeyEmail             = "email"
	KeyPosition          = "position"
	KeyInterviewDatetime = "interview_datetime"
)

// Context maps placeholder names to the text they are replaced with
type Context map[string]string

// BuildContext merges the recipient fields, the interview time and the custom
// variables of a sent email. Later sources win, so a custom variable may
// override name, email or position.
func BuildContext(recipient *models.Recipient, interview *time.Time, loc *time.Location, custom map[string]any) Context {
	ctx := Context{}
	if recipient != nil {
		ctx[KeyName] = recipient.Name
		ctx[KeyEmail] = recipient.Email
		ctx[KeyPosition] = "N/A"
		if recipient.PositionName != "" {
			ctx[KeyPosition] = recipient.PositionName
		}
	}

	if interview != nil {
		t := *interview
		if loc != nil {
			t = t.In(loc)
		}
		ctx[KeyInterviewDatetime] = t.Format(InterviewLayout)
	}

	for k, v := range custom {
		ctx[k] = stringify(v)
	}

	return ctx
}

// Render replaces every {{key}} of ctx in subject and body.
// Replacement is a single pass: text produced by a value is never expanded again,
// and tokens without a context entry are left untouched.
func Render(subject, body string, ctx Context) (string, string) {
	if len(ctx) == 0 {
		return subject, body
	}
	r := ctx.replacer()
	return r.Replace(subject), r.Replace(body)
}

func (c Context) replacer() *strings.Replacer {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	// longest token first so overlapping names resolve the same way every time
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, Placeholder(k), c[k])
	}
	return strings.NewReplacer(pairs...)
}

// Placeholder returns the token form of a variable name
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// stringify renders a custom variable value the way the stored templates expect:
// None, True and False for the JSON literals, and floats keep a trailing .0.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case string:
		return val
	case bool:
		if val {
			return "True"
		}
		return "False"
	case json.Number:
		if !strings.ContainsAny(val.String(), ".eE") {
			return val.String()
		}
		f, err := val.Float64()
		if err != nil {
			return val.String()
		}
		return formatFloat(f)
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case []any, map[string]any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprint(f)
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
