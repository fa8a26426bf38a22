package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rcliao/offline-assist/internal/remote"
	"github.com/rcliao/offline-assist/internal/responder"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat [query]",
		Short: "Ask the remote chat API, falling back to the offline knowledge base",
		Long:  "Send the query to $OFFLINE_ASSIST_REMOTE_URL when configured. Any remote failure is answered offline.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runChat,
	}

	cmd.Flags().Bool("offline", false, "Skip the remote API")

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	offline, _ := cmd.Flags().GetBool("offline")
	query := strings.Join(args, " ")

	s, err := openSeededStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	a := &remote.Assistant{Offline: responder.New(s)}
	if !offline {
		a.Remote = remote.NewFromConfig(cfg)
	}

	reply := a.Ask(cmd.Context(), query, getLanguage())
	if formatFlag == "text" {
		fmt.Println(reply.Answer)
		return
	}
	b, _ := json.MarshalIndent(reply, "", "  ")
	fmt.Println(string(b))
}
