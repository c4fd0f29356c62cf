// Command viewer opens the shared store read-only and prints the current
// waiting queue and the most recent matches. Safe to run next to a live
// server: BypassLockGuard tolerates the server holding the lock.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"match-lab/repositories"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	PriorityWeight int64  `env:"PRIORITY_WEIGHT,default=10000000000"`
	MatchLimit     int    `env:"VIEWER_MATCH_LIMIT,default=25"`
}

func main() {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	queue := repositories.NewQueueRepository(db, logger, config.PriorityWeight)
	matches := repositories.NewMatchRepository(db, logger)

	printQueue(queue)
	fmt.Println()
	printMatches(matches, config.MatchLimit)
}

func printQueue(queue *repositories.QueueRepository) {
	entries, err := queue.Snapshot()
	if err != nil {
		log.Fatalf("Failed to read queue: %v", err)
	}

	color.Bold.Printf("Waiting queue (%d)\n", len(entries))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "User", "Hashtags", "Waiting", "Priority"})
	now := time.Now().UTC()
	for i, entry := range entries {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			entry.UserID,
			strings.Join(entry.Hashtags, " "),
			entry.WaitedFor(now).Round(time.Second).String(),
			fmt.Sprintf("%d", entry.Preferences.Priority),
		})
	}
	table.Render()
}

func printMatches(repo *repositories.MatchRepository, limit int) {
	recent, err := repo.FindRecentMatches(limit)
	if err != nil {
		log.Fatalf("Failed to read matches: %v", err)
	}

	color.Bold.Printf("Recent matches (%d)\n", len(recent))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Match", "Participants", "Status", "Confidence", "Created"})
	for _, match := range recent {
		status := match.Status
		row := []string{
			match.ID,
			strings.Join(match.Participants, ", "),
			string(status),
			fmt.Sprintf("%.2f", match.Confidence),
			match.CreatedAt.Format(time.RFC822),
		}
		table.Append(row)
	}
	table.Render()
}
