package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Must match the key layout in internal/repositories/rounds
const (
	roundKeyPrefix      = "round:"
	tableRoundKeyPrefix = "table_rounds:"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning table round indexes for expired rounds...")

	iter := client.Scan(ctx, 0, tableRoundKeyPrefix+"*", 0).Iterator()

	stale := map[string][]string{}
	var indexCount, staleCount int

	for iter.Next(ctx) {
		indexKey := iter.Val()
		indexCount++

		ids, err := client.ZRange(ctx, indexKey, 0, -1).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", indexKey, err)
			continue
		}

		for _, id := range ids {
			n, err := client.Exists(ctx, roundKeyPrefix+id).Result()
			if err != nil {
				fmt.Printf("Error checking %s: %v\n", id, err)
				continue
			}
			if n == 0 {
				stale[indexKey] = append(stale[indexKey], id)
				staleCount++
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d tables, found %d expired rounds still indexed\n", indexCount, staleCount)

	if staleCount == 0 {
		fmt.Println("Nothing to prune!")
		return
	}

	for indexKey, ids := range stale {
		fmt.Printf("  - %s: %s\n", strings.TrimPrefix(indexKey, tableRoundKeyPrefix), strings.Join(ids, ", "))
	}

	fmt.Print("\nDo you want to REMOVE these index entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for indexKey, ids := range stale {
		members := make([]any, len(ids))
		for i, id := range ids {
			members[i] = id
		}
		if err := client.ZRem(ctx, indexKey, members...).Err(); err != nil {
			fmt.Printf("Failed to prune %s: %v\n", indexKey, err)
		} else {
			fmt.Printf("Pruned %d entries from %s\n", len(ids), indexKey)
		}
	}
	fmt.Println("\nCleanup complete!")
}
