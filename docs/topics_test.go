package docs

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures the documentation stays in sync with itself:
// every topic listed in readme.md loads, and every topic file is listed.
func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) unexpected error = %v", err)
	}

	// Topics are referenced as `name`: in the readme list.
	re := regexp.MustCompile("`([a-z]+)`:")
	var listed []string
	for _, m := range re.FindAllStringSubmatch(readme, -1) {
		listed = append(listed, m[1])
	}
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q listed in readme.md but not loadable: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}
	for _, topic := range all {
		if topic == "readme" {
			continue
		}
		if !slices.Contains(listed, topic) {
			t.Errorf("topic file %q is not listed in readme.md", topic)
		}
	}
}

// TestTopicsAreValidMarkdown parses every topic and requires a level-1
// heading naming the topic.
func TestTopicsAreValidMarkdown(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}

	mdParser := goldmark.DefaultParser()
	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) unexpected error = %v", topic, err)
		}

		source := []byte(content)
		root := mdParser.Parse(text.NewReader(source))

		var h1 string
		for n := root.FirstChild(); n != nil; n = n.NextSibling() {
			h, ok := n.(*ast.Heading)
			if !ok || h.Level != 1 {
				continue
			}
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				h1 += string(line.Value(source))
			}
			break
		}
		if h1 == "" {
			t.Errorf("topic %q has no level-1 heading", topic)
			continue
		}
		if topic != "readme" && !strings.Contains(h1, topic) {
			t.Errorf("topic %q heading is %q, want it to name the topic", topic, h1)
		}
	}
}
