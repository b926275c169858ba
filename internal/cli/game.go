package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGameSwapCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "new <player1> <player2>",
		Short: "Create a new two-player game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"players": []string{args[0], args[1]},
				"width":   width,
				"height":  height,
			}
			var result Game

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 9, "Board width")
	cmd.Flags().IntVar(&height, "height", 9, "Board height")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List game IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a game's board, racks and state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <game-id> <player> <letter> <x> <y>",
		Short: "Place a tile from your rack",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid player: %w", err)
			}

			letter := strings.ToUpper(args[2])
			if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
				return fmt.Errorf("letter must be a single character A-Z")
			}

			x, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid x: %w", err)
			}
			y, err := strconv.Atoi(args[4])
			if err != nil {
				return fmt.Errorf("invalid y: %w", err)
			}

			req := map[string]any{
				"kind":     "place",
				"player":   player,
				"tile":     letter,
				"position": map[string]int{"x": x, "y": y},
			}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <game-id> <player> <x1> <y1> <x2> <y2>",
		Short: "Swap two of your tiles on the board",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid player: %w", err)
			}

			coords := make([]int, 4)
			for i, arg := range args[2:] {
				coords[i], err = strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q: %w", arg, err)
				}
			}

			req := map[string]any{
				"kind":   "swap",
				"player": player,
				"positions": []map[string]int{
					{"x": coords[0], "y": coords[1]},
					{"x": coords[2], "y": coords[3]},
				},
			}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}
