package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pokerhands/pkg/poker"
)

// CLI is the command line for besthand
type CLI struct {
	Hands   []string `arg:"" optional:"" help:"Hands of five cards, quoted, i.e., '10♤ J♤ Q♤ K♤ A♤'. Read from stdin, one per line, when omitted."`
	Rank    bool     `short:"r" help:"Print every hand, best first"`
	JSON    bool     `short:"j" name:"json" help:"Print JSON"`
	Workers int      `short:"w" default:"1" help:"Number of hands evaluated concurrently"`
	Debug   bool     `help:"Enable debug logging"`
}

type handOutput struct {
	Hand        string         `json:"hand"`
	Category    poker.Category `json:"category"`
	Description string         `json:"description"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("besthand"),
		kong.Description("Pick the best five-card poker hand"),
		kong.UsageOnError(),
	)

	logrus.SetOutput(os.Stderr)
	if cli.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if len(cli.Hands) == 0 && !term.IsTerminal(int(os.Stdin.Fd())) {
		hands, err := readHands(os.Stdin)
		if err != nil {
			logrus.WithError(err).Fatal("could not read hands")
		}

		cli.Hands = hands
	}

	if err := run(context.Background(), cli, os.Stdout); err != nil {
		logrus.WithError(err).Error("could not pick the best hand")
		ctx.Exit(1)
	}
}

// readHands returns every non-blank line
func readHands(r io.Reader) ([]string, error) {
	hands := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			hands = append(hands, line)
		}
	}

	return hands, scanner.Err()
}

func run(ctx context.Context, cli CLI, w io.Writer) error {
	ranker := poker.Ranker{Workers: cli.Workers}
	logrus.WithFields(logrus.Fields{
		"hands":   len(cli.Hands),
		"workers": cli.Workers,
	}).Debug("ranking hands")

	var ranked []*poker.RankedHand
	if cli.Rank {
		r, err := ranker.Rank(ctx, cli.Hands)
		if err != nil {
			return err
		}

		ranked = r
	} else {
		winner, err := ranker.Winner(ctx, cli.Hands)
		if err != nil {
			return err
		}

		ranked = []*poker.RankedHand{winner}
	}

	if cli.JSON {
		out := make([]handOutput, len(ranked))
		for i, r := range ranked {
			out[i] = handOutput{
				Hand:        r.Hand.String(),
				Category:    r.Category,
				Description: r.Description(),
			}
		}

		enc := json.NewEncoder(w)
		if cli.Rank {
			return enc.Encode(out)
		}

		return enc.Encode(out[0])
	}

	if !cli.Rank {
		_, err := fmt.Fprintln(w, ranked[0].Description())
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, r := range ranked {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, r.Hand, r.Description())
	}

	return tw.Flush()
}
