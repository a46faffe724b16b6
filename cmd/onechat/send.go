package main

import (
	"encoding/json"
	"fmt"

	"github.com/keepmind9/onechat/pkg/onechat"
	"github.com/spf13/cobra"
)

type sendOptions struct {
	*rootOptions
	to           string
	bot          string
	notification string
}

// messageBuilder turns positional args and kind flags into a message
type messageBuilder func(args []string) (onechat.Message, error)

func newSendCmd(root *rootOptions) *cobra.Command {
	opts := &sendOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message to a user or group",
		Long: `Send one message through the bot.

--to and --bot fall back to default_to and default_bot_id from the configuration.`,
	}

	cmd.PersistentFlags().StringVar(&opts.to, "to", "", "Recipient user or group id")
	cmd.PersistentFlags().StringVar(&opts.bot, "bot", "", "Bot id")
	cmd.PersistentFlags().StringVar(&opts.notification, "notification", "", "Custom push notification text")

	cmd.AddCommand(
		opts.textCmd(),
		opts.fileCmd(),
		opts.webviewCmd(),
		opts.stickerCmd(),
		opts.locationCmd(),
		opts.templateCmd(),
		opts.quickReplyCmd(),
		opts.carouselCmd(),
	)

	return cmd
}

// run builds the message before connecting so flag errors never touch the network
func (o *sendOptions) run(build messageBuilder) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		msg, err := build(args)
		if err != nil {
			return err
		}

		session, err := o.connect()
		if err != nil {
			return err
		}

		res, err := session.Send(cmd.Context(), onechat.Target{To: o.to, BotID: o.bot}, msg)
		if err != nil {
			return err
		}
		return printResult(cmd, res)
	}
}

func (o *sendOptions) textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <message>",
		Short: "Send a text message",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(args []string) (onechat.Message, error) {
			return onechat.Text{Message: args[0], Notification: o.notification}, nil
		}),
	}
}

func (o *sendOptions) fileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>",
		Short: "Upload and send a local file",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(args []string) (onechat.Message, error) {
			return onechat.File{Path: args[0], Notification: o.notification}, nil
		}),
	}
}

func (o *sendOptions) webviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "webview <url>",
		Short: "Send a link that opens in the in-app browser",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(args []string) (onechat.Message, error) {
			return onechat.WebView{URL: args[0], Notification: o.notification}, nil
		}),
	}
}

func (o *sendOptions) stickerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sticker <sticker-id>",
		Short: "Send a sticker",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(args []string) (onechat.Message, error) {
			return onechat.Sticker{StickerID: args[0], Notification: o.notification}, nil
		}),
	}
}

func (o *sendOptions) locationCmd() *cobra.Command {
	var lat, lng, address string

	cmd := &cobra.Command{
		Use:   "location",
		Short: "Send a map location",
		Args:  cobra.NoArgs,
		RunE: o.run(func([]string) (onechat.Message, error) {
			return onechat.Location{
				Latitude:     lat,
				Longitude:    lng,
				Address:      address,
				Notification: o.notification,
			}, nil
		}),
	}

	cmd.Flags().StringVar(&lat, "lat", "", "Latitude")
	cmd.Flags().StringVar(&lng, "lng", "", "Longitude")
	cmd.Flags().StringVar(&address, "address", "", "Address shown with the pin")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}

func (o *sendOptions) templateCmd() *cobra.Command {
	var elements string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Send a template message",
		Args:  cobra.NoArgs,
		RunE: o.run(func([]string) (onechat.Message, error) {
			parsed, err := parseElements(elements)
			if err != nil {
				return nil, err
			}
			return onechat.Template{Elements: parsed, Notification: o.notification}, nil
		}),
	}

	addElementsFlag(cmd, &elements, "Template elements as a JSON array")
	return cmd
}

func (o *sendOptions) quickReplyCmd() *cobra.Command {
	var elements string

	cmd := &cobra.Command{
		Use:   "quickreply <message>",
		Short: "Send a message with quick-reply options",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(args []string) (onechat.Message, error) {
			parsed, err := parseElements(elements)
			if err != nil {
				return nil, err
			}
			return onechat.QuickReply{Message: args[0], Options: parsed, Notification: o.notification}, nil
		}),
	}

	addElementsFlag(cmd, &elements, "Quick-reply options as a JSON array")
	return cmd
}

func (o *sendOptions) carouselCmd() *cobra.Command {
	var elements string

	cmd := &cobra.Command{
		Use:   "carousel",
		Short: "Send an image carousel",
		Args:  cobra.NoArgs,
		RunE: o.run(func([]string) (onechat.Message, error) {
			parsed, err := parseElements(elements)
			if err != nil {
				return nil, err
			}
			return onechat.ImageCarousel{Elements: parsed, Notification: o.notification}, nil
		}),
	}

	addElementsFlag(cmd, &elements, "Carousel cards as a JSON array")
	return cmd
}

func addElementsFlag(cmd *cobra.Command, target *string, usage string) {
	cmd.Flags().StringVar(target, "elements", "", usage)
	_ = cmd.MarkFlagRequired("elements")
}

// parseElements decodes a JSON array of objects
func parseElements(raw string) ([]onechat.Element, error) {
	var elements []onechat.Element
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, fmt.Errorf("invalid --elements: %w", err)
	}
	if elements == nil {
		return nil, fmt.Errorf("invalid --elements: expected a JSON array")
	}
	return elements, nil
}
