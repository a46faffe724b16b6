package main

import (
	"github.com/keepmind9/onechat/pkg/onechat"
	"github.com/spf13/cobra"
)

func newFriendsCmd(root *rootOptions) *cobra.Command {
	var (
		bot     string
		idsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "friends",
		Short: "List the users the bot is friends with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := root.connect()
			if err != nil {
				return err
			}

			if idsOnly {
				ids, err := session.ListFriendIDs(cmd.Context(), bot)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), ids)
			}

			friends, err := session.ListAllFriends(cmd.Context(), bot)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), friends)
		},
	}

	cmd.Flags().StringVar(&bot, "bot", "", "Bot id")
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "Print one_id values only")

	return cmd
}

func newGroupsCmd(root *rootOptions) *cobra.Command {
	var (
		bot     string
		idsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List the groups the bot belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := root.connect()
			if err != nil {
				return err
			}

			if idsOnly {
				ids, err := session.ListGroupIDs(cmd.Context(), bot)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), ids)
			}

			groups, err := session.ListAllGroups(cmd.Context(), bot)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), groups)
		},
	}

	cmd.Flags().StringVar(&bot, "bot", "", "Bot id")
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "Print group_id values only")

	return cmd
}

// newRoomsCmd prints the raw friends-and-groups response
func newRoomsCmd(root *rootOptions) *cobra.Command {
	var bot string

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Print the full friends and groups response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := root.connect(); err != nil {
				return err
			}

			res, err := onechat.FetchFriendsAndGroups(cmd.Context(), bot)
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}

	cmd.Flags().StringVar(&bot, "bot", "", "Bot id")

	return cmd
}
