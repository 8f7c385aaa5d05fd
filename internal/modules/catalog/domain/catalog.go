package domain

import (
	"fmt"
	"strings"
)

type Post struct {
	ID      int    `yaml:"id"`
	User    string `yaml:"user"`
	Avatar  string `yaml:"avatar"`
	Image   string `yaml:"image"`
	Caption string `yaml:"caption"`
}

type Chat struct {
	ID     int    `yaml:"id"`
	User   string `yaml:"user"`
	Text   string `yaml:"text"`
	Avatar string `yaml:"avatar"`
}

type ActivityItem struct {
	ID   int    `yaml:"id"`
	Text string `yaml:"text"`
	When string `yaml:"when"`
}

type Highlight struct {
	Label string `yaml:"label"`
	Empty bool   `yaml:"empty"`
}

// SearchCorpus describes the generated handle list: Prefix+1 .. Prefix+Count.
type SearchCorpus struct {
	Prefix  string `yaml:"prefix"`
	Count   int    `yaml:"count"`
	Initial int    `yaml:"initial"`
}

type Profile struct {
	Posts      []string    `yaml:"posts"`
	Followers  []string    `yaml:"followers"`
	Following  []string    `yaml:"following"`
	Highlights []Highlight `yaml:"highlights"`
}

type Catalog struct {
	Feed     []Post         `yaml:"feed"`
	Stories  []string       `yaml:"stories"`
	Search   SearchCorpus   `yaml:"search"`
	Chats    []Chat         `yaml:"chats"`
	Activity []ActivityItem `yaml:"activity"`
	Profile  Profile        `yaml:"profile"`
}

// Validate checks that every list has unique iteration keys.
func (c Catalog) Validate() error {
	seen := map[int]bool{}
	for _, p := range c.Feed {
		if seen[p.ID] {
			return fmt.Errorf("duplicate feed post id %d", p.ID)
		}
		seen[p.ID] = true
	}
	seen = map[int]bool{}
	for _, ch := range c.Chats {
		if seen[ch.ID] {
			return fmt.Errorf("duplicate chat id %d", ch.ID)
		}
		seen[ch.ID] = true
	}
	seen = map[int]bool{}
	for _, a := range c.Activity {
		if seen[a.ID] {
			return fmt.Errorf("duplicate activity id %d", a.ID)
		}
		seen[a.ID] = true
	}
	for name, handles := range map[string][]string{
		"stories":   c.Stories,
		"posts":     c.Profile.Posts,
		"followers": c.Profile.Followers,
		"following": c.Profile.Following,
	} {
		if err := uniqueStrings(handles); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.Search.Count < 0 || c.Search.Initial < 0 {
		return fmt.Errorf("search corpus sizes must be non-negative")
	}
	return nil
}

func uniqueStrings(items []string) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item] {
			return fmt.Errorf("duplicate key %q", item)
		}
		seen[item] = true
	}
	return nil
}

// Handles expands the search corpus.
func (s SearchCorpus) Handles() []string {
	out := make([]string, 0, s.Count)
	for i := 1; i <= s.Count; i++ {
		out = append(out, fmt.Sprintf("%s%d", s.Prefix, i))
	}
	return out
}

// Filter returns the first Initial handles for an empty query, otherwise every
// handle containing the lower-cased query.
func (s SearchCorpus) Filter(query string) []string {
	all := s.Handles()
	if query == "" {
		if s.Initial < len(all) {
			return all[:s.Initial]
		}
		return all
	}
	q := strings.ToLower(query)
	out := []string{}
	for _, h := range all {
		if strings.Contains(h, q) {
			out = append(out, h)
		}
	}
	return out
}
