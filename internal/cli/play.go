package cli

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <id> <action>...",
		Short: "Send input actions to a session",
		Long: `Send one or more input actions to a session and print the resulting
board.

Actions:
  left     move the falling piece left
  right    move the falling piece right
  down     move the falling piece down (scores a bonus)
  rotate   rotate the falling piece clockwise
  tick     advance gravity by one step
  restart  start a fresh game in the same session`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result Session
			for _, action := range args[1:] {
				body := map[string]string{"action": action}
				if err := client.Post("/api/v1/sessions/"+id+"/input", body, &result); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
