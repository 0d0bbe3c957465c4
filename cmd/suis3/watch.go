package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/suis3/catalog/internal/notify"
)

func newWatchCmd() *cobra.Command {
	var (
		redisAddr string
		redisDB   int
		prefix    string
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream catalog events from the notification channel",
		Long: `Subscribe to the catalog's redis notification channel and print every
published event. Read and list results are delivered here in addition to
their direct API responses, so watchers see the same payloads callers get.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rdb := redis.NewClient(&redis.Options{
				Addr: redisAddr,
				DB:   redisDB,
			})
			defer rdb.Close()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("connect to redis at %s: %w", redisAddr, err)
			}

			pubsub := rdb.PSubscribe(ctx, notify.ChannelPattern(prefix))
			defer pubsub.Close()

			// Wait for subscription confirmation before reading
			if _, err := pubsub.Receive(ctx); err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}

			fmt.Fprintf(os.Stderr, "watching %s\n", notify.ChannelPattern(prefix))

			ch := pubsub.Channel()
			for {
				select {
				case <-ctx.Done():
					return nil
				case msg, ok := <-ch:
					if !ok {
						return nil
					}
					fmt.Println(msg.Payload)
				}
			}
		},
	}
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "redis address of the notification channel")
	cmd.Flags().IntVar(&redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().StringVar(&prefix, "prefix", "catalog:events", "notification channel prefix")
	return cmd
}
