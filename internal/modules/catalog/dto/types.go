package dto

type PostOutput struct {
	ID      int
	User    string
	Avatar  string
	Image   string
	Caption string
}

type StoryOutput struct {
	Handle string
	Avatar string
}

type ChatOutput struct {
	ID     int
	User   string
	Text   string
	Avatar string
}

type ActivityOutput struct {
	ID   int
	Text string
	When string
}

type SearchResultOutput struct {
	Handle string
	Image  string
}

type HighlightOutput struct {
	Label string
	Empty bool
	Image string
}

type ProfileOutput struct {
	Posts      []string
	Followers  []string
	Following  []string
	Highlights []HighlightOutput
}
