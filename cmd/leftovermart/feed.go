package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/leftovermart/client-go/models"
	"github.com/leftovermart/client-go/store"
)

var feedTagFilter string

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the notification feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := newApp(cmd.Context(), true)
		if err != nil {
			return err
		}
		if !s.LoggedIn() {
			return errors.New("not logged in")
		}
		if err := s.RefreshEventFeed(cmd.Context()); err != nil {
			return err
		}

		var events []models.Event
		if feedTagFilter != "" {
			events = s.EventsByTags([]models.EventTag{models.EventTag(feedTagFilter)})
		} else {
			events = s.Events()
		}
		if len(events) == 0 {
			fmt.Println("No notifications")
			return nil
		}
		for _, event := range events {
			marker := " "
			if !event.Read {
				marker = "*"
			}
			fmt.Printf("%s %4d  %-22s  %s\n", marker, event.ID, event.Type, describeEvent(event))
		}
		return nil
	},
}

func describeEvent(event models.Event) string {
	switch {
	case event.Message != nil:
		return *event.Message
	case event.Title != nil:
		return *event.Title
	case event.Card != nil:
		return event.Card.Title
	case event.Keyword != nil:
		return "new keyword " + event.Keyword.Name
	case event.ConversationMessage != nil:
		return event.ConversationMessage.Content
	case event.BoughtSaleItem != nil:
		return event.BoughtSaleItem.Product.Name
	}
	return string(event.Type)
}

var feedReadCmd = &cobra.Command{
	Use:   "read <event-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("invalid event id %q", args[0])
		}
		_, s, err := newApp(cmd.Context(), true)
		if err != nil {
			return err
		}
		return s.MarkEventAsRead(cmd.Context(), id)
	},
}

var feedTagCmd = &cobra.Command{
	Use:   "tag <event-id> <colour>",
	Short: "Tag a notification with a colour",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("invalid event id %q", args[0])
		}
		_, s, err := newApp(cmd.Context(), true)
		if err != nil {
			return err
		}
		return s.SetEventTag(cmd.Context(), id, models.EventTag(args[1]))
	},
}

var feedDeleteCmd = &cobra.Command{
	Use:   "delete <event-id>",
	Short: "Delete a notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("invalid event id %q", args[0])
		}
		_, s, err := newApp(cmd.Context(), true)
		if err != nil {
			return err
		}

		// No undo window in a one-shot command: stage and finalize at once.
		s.StageEventForDeletion(id)
		if err := s.DeleteStagedEvent(cmd.Context(), id); err != nil && !errors.Is(err, store.ErrNotStaged) {
			return err
		}
		fmt.Printf("Deleted notification %d\n", id)
		return nil
	},
}

func init() {
	feedCmd.Flags().StringVar(&feedTagFilter, "tag", "", "only show notifications with this tag colour")
	feedCmd.AddCommand(feedReadCmd, feedTagCmd, feedDeleteCmd)
	rootCmd.AddCommand(feedCmd)
}
