// Package seo provides a Go client for the SEO analyzer HTTP API.
//
// The client scores free-form text for SEO quality, inserts keywords
// into existing text, and reports extraction token usage:
//
//	client, _ := seo.New("http://localhost:8080", seo.WithAPIKey("secret"))
//	result, _ := client.Analyze(ctx, "My article text ...")
//	fmt.Println(result.Score, result.ScoreCategory)
//
//	updated, _ := client.InsertKeyword(ctx, "I like cats. They are great.", "feline")
//
// Errors returned by the API can be checked with errors.Is against the
// package sentinel errors:
//
//	if errors.Is(err, seo.ErrQuotaExceeded) { ... }
package seo
