package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

var (
	bestOf      string
	pointsToWin string
	mode        string
	names       []string
)

func init() {
	newCmd.Flags().StringVar(&bestOf, "best-of", "", "Number of games, 1 or 3")
	newCmd.Flags().StringVar(&pointsToWin, "points", "", "Points to win a game, 15 or 21")
	newCmd.Flags().StringVar(&mode, "mode", "", "singles or doubles")
	newCmd.Flags().StringSliceVar(&names, "player", nil, "Player as key=name, e.g. aL=Kento (keys: a, b, aL, aR, bL, bR)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(pointCmd)
	rootCmd.AddCommand(swapSidesCmd)
	rootCmd.AddCommand(actionCmd("next-game", "Start the next game after a game is won"))
	rootCmd.AddCommand(actionCmd("reset", "Reset the match to 0-0 keeping settings and players"))
	rootCmd.AddCommand(actionCmd("swap-serve", "Hand the serve to the other side"))
	rootCmd.AddCommand(actionCmd("undo", "Revert the last applied action"))
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new match",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		setIf(q, "bestOf", bestOf)
		setIf(q, "pointsToWin", pointsToWin)
		setIf(q, "mode", mode)
		for _, n := range names {
			key, value, ok := cutPlayer(n)
			if !ok {
				return fmt.Errorf("invalid player %q, expected key=name", n)
			}
			q.Set(key, value)
		}
		return performRequest(http.MethodPost, "/matches", q)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <match-id>",
	Short: "Show the current state of a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/matches/"+args[0], nil)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <match-id>",
	Short: "Discard a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/matches/"+args[0], nil)
	},
}

var pointCmd = &cobra.Command{
	Use:   "point <match-id> <A|B>",
	Short: "Award a rally to a side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/matches/"+args[0]+"/point", url.Values{"side": {args[1]}})
	},
}

var swapSidesCmd = &cobra.Command{
	Use:   "swap-sides <match-id> <A|B>",
	Short: "Swap the left and right players of a doubles pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/matches/"+args[0]+"/swap-sides", url.Values{"side": {args[1]}})
	},
}

// actionCmd builds a command posting to /matches/<id>/<action>.
func actionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <match-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return performRequest(http.MethodPost, "/matches/"+args[0]+"/"+action, nil)
		},
	}
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func cutPlayer(raw string) (string, string, bool) {
	key, name, ok := strings.Cut(raw, "=")
	return key, name, ok && key != ""
}

func performRequest(method, endpoint string, query url.Values) error {
	if dryRun {
		if query == nil {
			query = url.Values{}
		}
		query.Set("dry_run", "true")
	}
	target := host + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
