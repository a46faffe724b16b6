package main

import (
	"github.com/keepmind9/onechat/pkg/onechat"
	"github.com/spf13/cobra"
)

func newBroadcastCmd(root *rootOptions) *cobra.Command {
	var (
		to      []string
		bot     string
		message string
	)

	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Send one text message to up to 100 recipients",
		Long: `Send one text message to a list of recipients in a single request.

Without --to the message goes to default_to only. Lists longer than
100 recipients are rejected before any request is made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := root.connect(); err != nil {
				return err
			}

			res, err := onechat.BroadcastMessage(cmd.Context(), bot, to, message)
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "Comma-separated recipient ids")
	cmd.Flags().StringVar(&bot, "bot", "", "Bot id")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Message text")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
