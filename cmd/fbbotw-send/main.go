// Command fbbotw-send exercises the Send API from the terminal. It reads
// PAGE_ACCESS_TOKEN from the environment or a .env file in the working
// directory.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	fbbotw "github.com/sadmanHsn/fbbotw"
)

var verbose bool

func newClient() *fbbotw.Client {
	opts := []fbbotw.Option{}
	if verbose {
		opts = append(opts, fbbotw.WithLogger(hclog.New(&hclog.LoggerOptions{
			Name:  "fbbotw",
			Level: hclog.Debug,
		})))
	}
	return fbbotw.New(opts...)
}

func printResponse(cmd *cobra.Command, resp *fbbotw.Response) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", resp.Status, resp.Body)
}

func newTextCmd() *cobra.Command {
	var psid string
	cmd := &cobra.Command{
		Use:   "text <message>",
		Short: "Send a text message to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().SendTextMessage(cmd.Context(), psid, args[0])
			if err != nil {
				return err
			}
			printResponse(cmd, resp)
			return nil
		},
	}
	cmd.Flags().StringVar(&psid, "to", "", "Page-scoped recipient id")
	cmd.MarkFlagRequired("to")
	return cmd
}

func newActionCmd() *cobra.Command {
	var psid string
	cmd := &cobra.Command{
		Use:   "action <typing_on|typing_off|mark_seen>",
		Short: "Send a sender action to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().SendSenderAction(cmd.Context(), psid, fbbotw.SenderAction(args[0]))
			if err != nil {
				return err
			}
			printResponse(cmd, resp)
			return nil
		},
	}
	cmd.Flags().StringVar(&psid, "to", "", "Page-scoped recipient id")
	cmd.MarkFlagRequired("to")
	return cmd
}

func newImageCmd() *cobra.Command {
	var psid string
	var reusable bool
	cmd := &cobra.Command{
		Use:   "image <url>",
		Short: "Send a hosted image to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []fbbotw.SendOption
			if reusable {
				opts = append(opts, fbbotw.WithReusable())
			}
			resp, err := newClient().SendImage(cmd.Context(), psid, args[0], opts...)
			if err != nil {
				return err
			}
			printResponse(cmd, resp)
			return nil
		},
	}
	cmd.Flags().StringVar(&psid, "to", "", "Page-scoped recipient id")
	cmd.Flags().BoolVar(&reusable, "reusable", false, "Save the attachment for reuse")
	cmd.MarkFlagRequired("to")
	return cmd
}

func newProfileCmd() *cobra.Command {
	var fields []string
	cmd := &cobra.Command{
		Use:   "profile <psid>",
		Short: "Look up a user's public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := newClient().GetUserProfile(cmd.Context(), args[0], fields...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", profile.FirstName, profile.LastName)
			if profile.ProfilePic != "" {
				fmt.Fprintln(cmd.OutOrStdout(), profile.ProfilePic)
			}
			if profile.Locale != "" {
				fmt.Fprintln(cmd.OutOrStdout(), profile.Locale)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Extra profile fields (locale, timezone, gender)")
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fbbotw-send",
		Short: "Send Messenger Platform messages from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Best effort; the environment may already carry the token.
			godotenv.Load()
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every dispatched request")
	cmd.AddCommand(newTextCmd())
	cmd.AddCommand(newActionCmd())
	cmd.AddCommand(newImageCmd())
	cmd.AddCommand(newProfileCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
