package ports

import "leetcode-daily-thread/internal/domain/model"

// MarkupConverter turns a question body into the markdown posted to the forum.
// linkPath is the question's path relative to the provider's base URL.
type MarkupConverter interface {
	Convert(content model.ChallengeContent, linkPath string) (model.ConvertedBody, error)
}
