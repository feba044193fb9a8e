package tagger

import (
	"context"
	"strings"

	"google.golang.org/grpc/status"

	"go-tweetlab/errs"
	"go-tweetlab/nlp"
	"go-tweetlab/types"
)

// CloudEntityTagger tags tokens with the Cloud Natural Language entity analysis.
// Tokens are sent joined by single spaces, and every proper mention is
// projected back onto the tokens its byte span covers. Common mentions
// ("the president") are not named entities and stay O.
type CloudEntityTagger struct {
	Client nlp.EntityAnalyzer
}

// NewCloudEntityTagger wraps an entity analyzer, usually a *language.Client.
func NewCloudEntityTagger(client nlp.EntityAnalyzer) *CloudEntityTagger {
	return &CloudEntityTagger{Client: client}
}

// TagEntities implements EntityTagger.
func (c *CloudEntityTagger) TagEntities(ctx context.Context, tokens []string) ([]string, error) {
	tags := outside(len(tokens))
	if len(tokens) == 0 {
		return tags, nil
	}

	starts := make([]int, len(tokens))
	offset := 0
	for i, token := range tokens {
		starts[i] = offset
		offset += len(token) + 1
	}

	entities, err := nlp.AnalyzeEntities(ctx, c.Client, strings.Join(tokens, " "))
	if err != nil {
		return nil, errs.WrapExternal(err, "entity analysis failed (%s)", status.Code(err))
	}

	for _, entity := range entities {
		label := cloudLabel(entity.Type)
		if label == types.EntityOutside {
			continue
		}
		for _, m := range entity.Mentions {
			if !m.Proper {
				continue
			}
			begin := int(m.BeginOffset)
			end := begin + len(m.Content)
			for i, token := range tokens {
				if starts[i] < end && begin < starts[i]+len(token) {
					tags[i] = label
				}
			}
		}
	}
	return tags, nil
}

// cloudLabel maps a Natural Language entity type onto the three-class scheme.
func cloudLabel(entityType string) string {
	switch entityType {
	case "PERSON":
		return types.EntityPerson
	case "ORGANIZATION":
		return types.EntityOrganization
	case "LOCATION", "ADDRESS":
		return types.EntityLocation
	default:
		return types.EntityOutside
	}
}
