package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/anton-dovnar/revtree/revtree"
)

//go:embed resources/*.css resources/*.js resources/*.html
var resources embed.FS

// CommitMessage is a parsed conventional-commit-style message,
// adapted from the teacher's view.CommitMessage.
type CommitMessage struct {
	Type  string `json:"type,omitempty"`
	Scope string `json:"scope,omitempty"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CommitData is one commit's HTML-sidebar entry.
type CommitData struct {
	Label      string        `json:"label"`
	Log        string        `json:"log"`
	Message    CommitMessage `json:"message"`
	Date       string        `json:"date"`
	DateDelta  string        `json:"date_delta"`
	FileCount  int           `json:"file_count"`
	HasTail    bool          `json:"has_tail"`
}

var issueRegex = regexp.MustCompile(`(\w+)#(\d+)`)

// prettyDate formats t relative to now, e.g. "2 days ago".
func prettyDate(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	case diff < 30*24*time.Hour:
		return pluralize(int(diff.Hours()/24), "day")
	case diff < 365*24*time.Hour:
		return pluralize(int(diff.Hours()/(24*30)), "month")
	default:
		return pluralize(int(diff.Hours()/(24*365)), "year")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func issueLink(text, ghSlug string) string {
	if ghSlug == "" {
		return text
	}
	return issueRegex.ReplaceAllStringFunc(text, func(match string) string {
		parts := issueRegex.FindStringSubmatch(match)
		if len(parts) != 3 {
			return match
		}
		org, num := parts[1], parts[2]
		if strings.HasPrefix(ghSlug, org+"/") {
			return fmt.Sprintf(`<a target="_blank" href="https://github.com/%s/issues/%s">%s#%s</a>`, ghSlug, num, org, num)
		}
		return fmt.Sprintf(`<a target="_blank" href="https://github.com/%s/issues/%s">%s#%s</a>`, org, num, org, num)
	})
}

// parseCommitMessage splits a "type(scope): title" log line into its
// conventional-commit parts, falling back to the whole line as title.
func parseCommitMessage(message string) (string, string, string) {
	colonIdx := strings.Index(message, ": ")
	if colonIdx < 0 {
		return "", "", message
	}
	prefix := strings.TrimSpace(message[:colonIdx])
	title := strings.TrimSpace(message[colonIdx+2:])

	if parenIdx := strings.Index(prefix, "("); parenIdx >= 0 {
		commitType := strings.TrimSpace(prefix[:parenIdx])
		rest := prefix[parenIdx+1:]
		if closeIdx := strings.Index(rest, ")"); closeIdx >= 0 {
			scope := strings.TrimSpace(rest[:closeIdx])
			if strings.Contains(commitType, " ") {
				return "", "", message
			}
			return commitType, scope, title
		}
	}
	if strings.Contains(prefix, " ") {
		return "", "", message
	}
	return prefix, "", title
}

// GenerateCommitData builds the sidebar JSON payload for every commit
// in layout, keyed by the same label DrawRailway uses for each stop's
// SVG id, so the page's JavaScript can join click events back to data.
func GenerateCommitData(layout *Layout, ghSlug string) map[string]CommitData {
	result := make(map[string]CommitData, len(layout.Positions))
	for c := range layout.Positions {
		log := ""
		if c.Log != nil {
			log = *c.Log
		}
		summary := strings.SplitN(log, "\n", 2)[0]
		commitType, scope, title := parseCommitMessage(summary)

		body := ""
		if lines := strings.SplitN(log, "\n", 2); len(lines) > 1 {
			body = strings.TrimSpace(lines[1])
		}
		title = issueLink(title, ghSlug)
		body = issueLink(body, ghSlug)

		label := commitLabel(c)
		result[label] = CommitData{
			Label: label,
			Log:   log,
			Message: CommitMessage{
				Type:  commitType,
				Scope: scope,
				Title: title,
				Body:  body,
			},
			Date:      c.Date.Format(time.RFC3339),
			DateDelta: prettyDate(c.Date),
			FileCount: c.NFiles(),
			HasTail:   c.Tail,
		}
	}
	return result
}

func getResource(name string) (string, error) {
	data, err := resources.ReadFile("resources/" + name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func replacePlaceholders(text string, placeholders map[string]string) string {
	result := text
	for key, value := range placeholders {
		result = strings.ReplaceAll(result, fmt.Sprintf("((%% %s %%))", key), value)
	}
	return result
}

func replaceReferences(text string) (string, error) {
	result := text
	begin := 0
	for {
		startIdx := strings.Index(result[begin:], "{{")
		if startIdx < 0 {
			break
		}
		startIdx += begin
		endIdx := strings.Index(result[startIdx+2:], "}}")
		if endIdx < 0 {
			break
		}
		endIdx += startIdx + 2

		reference := strings.TrimSpace(result[startIdx+2 : endIdx])
		resourceContent, err := getResource(reference)
		if err != nil {
			return "", fmt.Errorf("failed to load resource %s: %w", reference, err)
		}
		resourceContent, err = replaceReferences(resourceContent)
		if err != nil {
			return "", err
		}
		placeholder := result[startIdx : endIdx+2]
		result = strings.Replace(result, placeholder, resourceContent, 1)
		begin = startIdx + len(resourceContent)
	}
	return result, nil
}

// GenerateSVGString renders rl's railway as a standalone SVG string.
func GenerateSVGString(rl *revtree.RevList, layout *Layout) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	DrawRailway(canvas, rl, layout)
	return buf.String()
}

// WriteHTML writes a self-contained HTML page embedding svgContent and
// commitData into the resources/html_template.html shell.
func WriteHTML(w io.Writer, svgContent string, commitData map[string]CommitData, title string) error {
	tmpl, err := getResource("html_template.html")
	if err != nil {
		return fmt.Errorf("failed to load HTML template: %w", err)
	}

	commitDataJSON, err := json.Marshal(commitData)
	if err != nil {
		return fmt.Errorf("failed to marshal commit data: %w", err)
	}

	if !strings.Contains(svgContent, `id="railway_svg"`) {
		if tagStart := strings.Index(svgContent, "<svg"); tagStart >= 0 {
			if tagEnd := strings.Index(svgContent[tagStart:], ">"); tagEnd >= 0 {
				tagEnd += tagStart
				svgContent = svgContent[:tagEnd] + ` id="railway_svg"` + svgContent[tagEnd:]
			}
		}
	}

	tmpl, err = replaceReferences(tmpl)
	if err != nil {
		return fmt.Errorf("failed to replace resource references: %w", err)
	}

	tmpl = replacePlaceholders(tmpl, map[string]string{
		"title": html.EscapeString(title),
		"svg":   svgContent,
		"data":  string(commitDataJSON),
	})

	_, err = w.Write([]byte(tmpl))
	return err
}
