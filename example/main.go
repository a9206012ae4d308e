package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/pipeline"
	"github.com/meikuraledutech/pipeline/postgres"
)

func main() {
	ctx := context.Background()

	// ── Decoded object ────────────────────────────────────────────────
	payload := map[string]any{
		"nodes": []any{
			map[string]any{"id": "input-1", "type": "customInput"},
			map[string]any{"id": "llm-1", "type": "llm"},
			map[string]any{"id": "output-1", "type": "customOutput"},
		},
		"edges": []any{
			map[string]any{"source": "input-1", "target": "llm-1"},
			map[string]any{"source": "llm-1", "target": "output-1"},
		},
	}
	fmt.Println("object payload:")
	printJSON(pipeline.Parse(payload))

	// ── JSON string with a cycle ──────────────────────────────────────
	cyclic := `{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"source":"a","target":"b"},{"source":"b","target":"a"}]}`
	fmt.Println("\nstring payload:")
	res := pipeline.Parse(cyclic)
	printJSON(res)

	// ── Malformed ─────────────────────────────────────────────────────
	fmt.Println("\nmalformed payload:")
	printJSON(pipeline.Parse(`{"nodes": oops`))

	// ── Optional: store the last report ───────────────────────────────
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	var store pipeline.ReportStore = postgres.New(pool)
	if err := store.CreateSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	id, err := store.SaveReport(ctx, pipeline.NewReport("", pipeline.SourceCLI, res))
	if err != nil {
		log.Fatalf("save report: %v", err)
	}
	saved, err := store.GetReport(ctx, id)
	if err != nil {
		log.Fatalf("get report: %v", err)
	}
	fmt.Println("\nstored report:")
	printJSON(saved)
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
