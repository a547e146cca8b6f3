package tools

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// SearchEducationalResourcesName is the model-facing name of the resource
// search tool.
const SearchEducationalResourcesName = "searchEducationalResources"

// Resource is one educational online resource returned by the search tool.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // video, article, or activity
}

// sampleResources is the fixed result set the stub search filters. A real
// deployment would replace the handler with a call to a search API.
var sampleResources = []Resource{
	{
		Title: "Photosynthesis for Kids | Learn with BYJU'S",
		URL:   "https://byjus.com/biology/photosynthesis-for-kids/",
		Type:  "article",
	},
	{
		Title: "Photosynthesis | Educational Video for Kids",
		URL:   "https://www.youtube.com/watch?v=D1Ymc31__xM",
		Type:  "video",
	},
	{
		Title: "Photosynthesis Paper Craft Activity",
		URL:   "https://www.sugarnspicebaking.com/2020/04/photosynthesis-for-kids-craft.html",
		Type:  "activity",
	},
	{
		Title: "What is Photosynthesis? | National Geographic",
		URL:   "https://www.nationalgeographic.org/encyclopedia/photosynthesis/",
		Type:  "article",
	},
}

// NewSearchEducationalResources returns the tool the lesson-plan flow
// exposes to the model. The stub implementation matches the first word of
// the query against the sample resource titles.
func NewSearchEducationalResources(logger *slog.Logger) Definition {
	return Definition{
		Name:        SearchEducationalResourcesName,
		Description: "Searches for educational online resources like articles, videos, and activities based on a query.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"query": {
					Type:        genai.TypeString,
					Description: `The search query, e.g., "photosynthesis for 5th graders"`,
				},
			},
			Required: []string{"query"},
		},
		Handler: func(ctx context.Context, args map[string]any, state *State) (map[string]any, error) {
			query, _ := args["query"].(string)
			logger.InfoContext(ctx, "simulating web search", "query", query)

			results := FilterResources(query)
			out := make([]any, 0, len(results))
			for _, r := range results {
				out = append(out, map[string]any{
					"title": r.Title,
					"url":   r.URL,
					"type":  r.Type,
				})
			}
			return map[string]any{"resources": out}, nil
		},
	}
}

// FilterResources applies the stub's matching rule: only resources whose
// title contains the first word of the query (case-insensitive) are kept.
func FilterResources(query string) []Resource {
	firstWord := strings.ToLower(strings.SplitN(query, " ", 2)[0])
	var results []Resource
	for _, r := range sampleResources {
		if strings.Contains(strings.ToLower(r.Title), firstWord) {
			results = append(results, r)
		}
	}
	return results
}
