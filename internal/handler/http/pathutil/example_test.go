package pathutil_test

import (
	"fmt"

	"docbrief/internal/handler/http/pathutil"
)

// ExampleNormalizePath demonstrates how path normalization works
// to prevent metrics label cardinality explosion.
func ExampleNormalizePath() {
	// Before normalization: Each summary ID creates a unique path label
	// This would cause cardinality explosion in Prometheus metrics

	// After normalization: All summary IDs map to the same template
	fmt.Println(pathutil.NormalizePath("/summaries/123"))
	fmt.Println(pathutil.NormalizePath("/summaries/456"))
	fmt.Println(pathutil.NormalizePath("/summaries/789"))

	// Output:
	// /summaries/:id
	// /summaries/:id
	// /summaries/:id
}

// ExampleNormalizePath_users demonstrates normalization for user-scoped endpoints.
func ExampleNormalizePath_users() {
	fmt.Println(pathutil.NormalizePath("/users/alice/summaries"))
	fmt.Println(pathutil.NormalizePath("/users/bob/summaries/recent"))
	fmt.Println(pathutil.NormalizePath("/users/carol/summaries/statistics"))

	// Output:
	// /users/:user_id/summaries
	// /users/:user_id/summaries/recent
	// /users/:user_id/summaries/statistics
}

// ExampleNormalizePath_static demonstrates that static endpoints remain unchanged.
func ExampleNormalizePath_static() {
	fmt.Println(pathutil.NormalizePath("/health"))
	fmt.Println(pathutil.NormalizePath("/metrics"))
	fmt.Println(pathutil.NormalizePath("/styles"))

	// Output:
	// /health
	// /metrics
	// /styles
}

// ExampleNormalizePath_queryParameters demonstrates that query parameters are stripped.
func ExampleNormalizePath_queryParameters() {
	fmt.Println(pathutil.NormalizePath("/summaries/123?fields=score"))
	fmt.Println(pathutil.NormalizePath("/users/alice/summaries/search?q=budget"))
	fmt.Println(pathutil.NormalizePath("/health?format=json"))

	// Output:
	// /summaries/:id
	// /users/:user_id/summaries/search
	// /health
}

// ExampleNormalizePath_trailingSlash demonstrates that trailing slashes are handled.
func ExampleNormalizePath_trailingSlash() {
	fmt.Println(pathutil.NormalizePath("/summaries/123/"))
	fmt.Println(pathutil.NormalizePath("/users/alice/summaries/"))

	// Output:
	// /summaries/:id
	// /users/:user_id/summaries
}

// ExampleGetExpectedCardinality demonstrates how to check expected metric cardinality.
func ExampleGetExpectedCardinality() {
	cardinality := pathutil.GetExpectedCardinality()
	fmt.Printf("Expected unique path labels: ~%d\n", cardinality)

	// Output is approximate, so we just demonstrate the usage
	// In real output: Expected unique path labels: ~13
}
