package main

import (
	"fmt"

	"github.com/deckward/deckward/internal/normalize"
	"github.com/deckward/deckward/internal/spreadsheet"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <spreadsheet> <prompts-csv> <responses-csv>",
		Short: "Convert a card spreadsheet to prompt/response deck CSVs",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := spreadsheet.Read(args[0])
			if err != nil {
				return err
			}

			decks := spreadsheet.SplitDecks(rows)
			for _, row := range decks.Rows {
				kind := "white card"
				if row.Kind == spreadsheet.KindPrompt {
					kind = "black card"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "row %d: %s - %s\n", row.Row, kind, normalize.Preview(row.Text, 50))
			}

			prompts := decks.Prompts()
			if err := spreadsheet.WriteDeck(args[1], prompts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d prompt cards to %s\n", len(prompts), args[1])

			responses := decks.Responses()
			if err := spreadsheet.WriteDeck(args[2], responses); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d response cards to %s\n", len(responses), args[2])

			return nil
		},
	}

	return cmd
}
