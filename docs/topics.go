// Package docs embeds the user documentation of nwc. Every *.md file is a
// topic named after the file; readme lists the others.
package docs

import (
	"embed"
	"io/fs"
	"slices"
	"strings"

	"github.com/rotisserie/eris"
)

//go:embed *.md
var docs embed.FS

// readme is the index topic, left out of GetAllTopics.
const readme = "readme"

// GetTopic returns the markdown of a topic, or of all topics for "*".
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := fs.ReadFile(docs, topic+".md")
	if err != nil {
		return "", eris.Wrapf(err, "topic %q not found", topic)
	}
	return string(content), nil
}

// GetTopics returns the markdown of several topics, one after the other.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of every topic but the readme.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, eris.Wrap(err, "listing topics")
	}
	topics := make([]string, 0, len(files))
	for _, f := range files {
		if name := strings.TrimSuffix(f, ".md"); name != readme {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
