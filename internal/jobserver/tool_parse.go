package jobserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

func registerParseJob(server *mcp.Server, deps Deps) {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if perMinute := engine.Cfg.ParsePerMinute; perMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_job",
		Description: "Extract a structured job posting from raw text or HTML: title, company, location, salary, employment type, experience level, skills with required/years detail, requirements, benefits, dates, and classification metadata. Never fails on messy input; returns confidence, missing_fields, and warnings instead.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ParseJobInput) (*mcp.CallToolResult, engine.ParseJobOutput, error) {
		if input.Text == "" {
			return nil, engine.ParseJobOutput{}, fmt.Errorf("text is required")
		}
		if err := limiter.Wait(ctx); err != nil {
			return nil, engine.ParseJobOutput{}, err
		}

		cacheKey := engine.CacheKey("parse_job", input.Text, input.Source, input.URL)
		if out, ok := engine.CacheLoadJSON[engine.ParseJobOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		result := deps.Parser.Parse(input.Text, normalizeSource(input.Source), input.URL)
		out := engine.ParseJobOutput{
			Job:           result.Job,
			Confidence:    result.Confidence,
			Warnings:      result.Warnings,
			MissingFields: result.MissingFields,
		}

		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// normalizeSource maps free-form source strings to the known enum,
// defaulting to other.
func normalizeSource(s string) engine.Source {
	switch engine.Source(s) {
	case engine.SourceLinkedIn, engine.SourceIndeed, engine.SourceGlassdoor,
		engine.SourceCompanyWebsite, engine.SourceEmail:
		return engine.Source(s)
	default:
		return engine.SourceOther
	}
}
