package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"go-tweetlab/errs"
	"go-tweetlab/types"
)

// EntityAnalyzer is the part of the Natural Language client we use.
// *language.Client satisfies it.
type EntityAnalyzer interface {
	AnalyzeEntities(ctx context.Context, req *languagepb.AnalyzeEntitiesRequest, opts ...gax.CallOption) (*languagepb.AnalyzeEntitiesResponse, error)
}

// languageClient a singleton languageClient instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
	clientErr      error
)

// sends text to the Cloud Natural Language API to extract named entities
// and returns a slice of Entity structs along with any error encountered
func AnalyzeEntities(ctx context.Context, client EntityAnalyzer, text string) ([]types.Entity, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	var entities []types.Entity
	for _, e := range resp.GetEntities() {
		var mentions []types.EntityMention
		for _, m := range e.GetMentions() {
			mentions = append(mentions, types.EntityMention{
				Content:     m.GetText().GetContent(),
				BeginOffset: m.GetText().GetBeginOffset(),
				Probability: m.GetProbability(),
				Proper:      m.GetType() == languagepb.EntityMention_PROPER,
			})
		}
		md := make(map[string]string)
		for k, v := range e.GetMetadata() {
			md[k] = v
		}
		entities = append(entities, types.Entity{
			Name:     e.GetName(),
			Type:     e.GetType().String(),
			Metadata: md,
			Mentions: mentions,
		})
	}
	return entities, nil
}

// initializes and returns a language client. Credentials are read, base64
// encoded, from NATURAL_LANGUAGE_CREDENTIALS.
func InitLanguageClient(ctx context.Context) (*language.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		if encodedCreds == "" {
			clientErr = errs.Configuration("NATURAL_LANGUAGE_CREDENTIALS is not set")
			return
		}
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			clientErr = errs.WrapConfiguration(err, "decoding Natural Language credentials")
			return
		}

		// Create the Natural Language API client using the decoded credentials
		opt := option.WithCredentialsJSON(creds)
		languageClient, err = language.NewClient(ctx, opt)
		if err != nil {
			clientErr = errs.WrapExternal(err, "creating Natural Language client")
		}
	})

	return languageClient, clientErr
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}
