package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/muu0726/Tech-Information/internal/view"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Toggle the saved marker of an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctrl := view.New(st)
		id := args[0]
		if _, err := ctrl.ToggleSaved(id); err != nil {
			return err
		}
		if ctrl.IsSaved(id) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("saved"), id)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.YellowString("unsaved"), id)
		}
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark an article as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctrl := view.New(st)
		id := args[0]
		if _, err := ctrl.MarkRead(id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("read"), id)
		return nil
	},
}
