// Package scrape pulls answer lists from the daily nytbee.com answer pages.
package scrape

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/net/html"
)

// AnswerListID is the id of the div wrapping the official answer list.
const AnswerListID = "main-answer-list"

// ExtractAnswerList returns the trimmed text of every <li> inside a <ul> under
// div#main-answer-list. Script and style contents are ignored.
func ExtractAnswerList(page string) []string {
	z := html.NewTokenizer(strings.NewReader(page))

	var (
		items     []string
		divDepth  int
		target    = -1
		ulDepth   int
		skipDepth int
		liStack   []*strings.Builder
	)
	inTarget := func() bool { return target >= 0 && divDepth >= target }

	for {
		switch z.Next() {
		case html.ErrorToken:
			return items

		case html.StartTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			switch {
			case tag == "script" || tag == "style":
				skipDepth++
			case tag == "div":
				divDepth++
				if target < 0 && hasAttr && hasID(z, AnswerListID) {
					target = divDepth
				}
			case !inTarget():
			case tag == "ul":
				ulDepth++
			case tag == "li" && ulDepth > 0:
				liStack = append(liStack, &strings.Builder{})
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch tag := string(name); {
			case (tag == "script" || tag == "style") && skipDepth > 0:
				skipDepth--
			case tag == "li" && len(liStack) > 0:
				top := liStack[len(liStack)-1]
				liStack = liStack[:len(liStack)-1]
				if text := strings.TrimSpace(top.String()); text != "" {
					items = append(items, text)
				}
			case tag == "ul" && ulDepth > 0:
				ulDepth--
			case tag == "div":
				if target >= 0 && divDepth == target {
					target = -1
				}
				if divDepth > 0 {
					divDepth--
				}
			}

		case html.TextToken:
			if skipDepth > 0 || len(liStack) == 0 {
				continue
			}
			liStack[len(liStack)-1].Write(z.Text())
		}
	}
}

func hasID(z *html.Tokenizer, id string) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "id" && string(val) == id {
			return true
		}
		if !more {
			return false
		}
	}
}

var pangramSuffix = regexp.MustCompile(`(?i)\s+(perfect\s+)?pangram\s*$`)

// NormalizeAnswer strips a trailing "Pangram"/"Perfect Pangram" marker and keeps
// only the lowercased letters.
func NormalizeAnswer(item string) string {
	item = pangramSuffix.ReplaceAllString(strings.TrimSpace(item), "")
	var b strings.Builder
	for _, r := range strings.ToLower(item) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeAnswers applies NormalizeAnswer and drops empty results.
func NormalizeAnswers(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if w := NormalizeAnswer(it); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// PageURL fills the {date} placeholder of template with day as YYYYMMDD.
func PageURL(template string, day time.Time) string {
	return strings.ReplaceAll(template, "{date}", day.Format("20060102"))
}
