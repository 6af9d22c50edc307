// Command twitctl is a small console for poking the Twitter API v2 through
// the tweetkit client: single-tweet lookup, recent search with pagination,
// and the sampled stream.
//
// Credentials come from the TWITTER_BEARER_TOKEN environment variable; a
// .env file in the working directory is honored.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	tweetkit "github.com/tweetkit/tweetkit-go"
	"github.com/tweetkit/tweetkit-go/pkg/types"
)

var (
	header  = color.New(color.FgCyan, color.Bold)
	faint   = color.New(color.Faint)
	problem = color.New(color.FgYellow)
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "twitctl",
		Short:         "Console for the Twitter API v2",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(tweetCmd(), searchCmd(), streamCmd())

	if err := root.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func newClient(forStreaming bool) (*tweetkit.Client, error) {
	config := &tweetkit.Config{
		BearerToken: os.Getenv("TWITTER_BEARER_TOKEN"),
	}
	if forStreaming {
		// Streams outlive any fixed deadline.
		config.HTTPClient = &http.Client{}
	}
	return tweetkit.NewClient(config)
}

var defaultParams = tweetkit.Params{
	"tweet.fields": []string{"created_at", "author_id", "public_metrics"},
	"expansions":   []string{"author_id"},
}

func tweetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tweet <id>",
		Short: "Look up a single tweet with its author expanded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(false)
			if err != nil {
				return err
			}
			resp, err := client.Tweets.FindTweetByID(args[0], defaultParams).Send(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range resp.Errors() {
				problem.Fprintf(os.Stderr, "partial failure: %s\n", p.Message())
			}
			return printJSON(resp.Data())
		},
	}
}

func searchCmd() *cobra.Command {
	var maxItems int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search recent tweets, following pagination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(false)
			if err != nil {
				return err
			}
			pager := client.Tweets.SearchRecent(args[0], defaultParams).Paginate()
			items, err := pager.Collect(cmd.Context(), maxItems)
			if err != nil {
				return err
			}
			header.Printf("%d tweets\n", len(items))
			for _, item := range items {
				printItem(item)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxItems, "max", 100, "maximum number of tweets to collect")
	return cmd
}

func streamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stream",
		Short: "Print tweets from the sampled stream until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(true)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			stream, err := client.Tweets.SampleStream(defaultParams).Stream(ctx)
			if err != nil {
				return err
			}
			err = stream.Each(ctx, func(resp *tweetkit.Response) error {
				for _, item := range resp.Items() {
					printItem(item)
				}
				return nil
			})
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}
}

func printItem(item types.Object) {
	header.Printf("%s ", item.GetString("id"))
	fmt.Println(item.GetString("text"))
	if createdAt := item.GetString("created_at"); createdAt != "" {
		faint.Printf("  %s\n", createdAt)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
