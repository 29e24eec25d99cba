package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"countdown/internal/calendar"
	cderrors "countdown/internal/errors"
	"countdown/internal/store"
	"countdown/pkg/models"
)

func newAddEventCmd(eventStore func() *store.Store) *cobra.Command {
	var (
		eventName string
		eventDate string
	)

	cmd := &cobra.Command{
		Use:   "add-event",
		Short: "Add a new event",
		Long: `Add a named event on a calendar date.

The date uses the dd-mm-yyyy format; day and month may omit the leading zero.

Examples:
  countdown add-event -e "Birthday" -d 21-3-2133
  countdown add-event --event "Launch" --date 10-06-2030`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(eventName) == "" {
				return cderrors.New(cderrors.KindInvalidArgument, "event is required (use -e \"<name>\")")
			}
			if eventDate == "" {
				return cderrors.New(cderrors.KindInvalidArgument, "date is required (use -d dd-mm-yyyy)")
			}
			date, err := calendar.ParseDate(eventDate)
			if err != nil {
				return err
			}
			_, err = eventStore().Append(models.Event{Name: eventName, Date: date})
			return err
		},
	}

	cmd.Flags().StringVarP(&eventName, "event", "e", "", "Name of event (required)")
	cmd.Flags().StringVarP(&eventDate, "date", "d", "", "Date of event, dd-mm-yyyy (required)")
	return cmd
}
