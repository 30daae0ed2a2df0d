package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"vedic-astro/internal/errors"
	"vedic-astro/internal/models"
	"vedic-astro/internal/store"
)

// addSnapshotCommands adds the persistence commands.
func addSnapshotCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newSaveCmd(app))
	rootCmd.AddCommand(newLoadCmd(app))
	rootCmd.AddCommand(newListCmd(app))
	rootCmd.AddCommand(newDeleteCmd(app))
}

func (app *App) requireStore() (store.SnapshotStore, error) {
	if app.Store == nil {
		return nil, errors.Wrap(errors.ErrDatabaseError, "snapshot store unavailable")
	}
	return app.Store, nil
}

func newSaveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Compute a chart and save it with its yoga report",
		Example: `  astro save --name "Asha" --time "1990-06-15 10:30" --tz Asia/Kolkata --lat 28.61 --lon 77.21
  astro save --name "Asha" --time "1990-06-15 10:30" --as "asha-birth"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapStore, err := app.requireStore()
			if err != nil {
				return err
			}

			c, err := app.resolveChart(cmd)
			if err != nil {
				return err
			}

			saveName, _ := cmd.Flags().GetString("as")
			if saveName == "" {
				saveName = c.Name
			}
			if saveName == "" {
				return errors.NewValidationError("as", saveName, "provide --name or --as to key the snapshot")
			}

			snap := &models.Snapshot{
				Name:  saveName,
				Chart: c,
				Yogas: app.Detector.Detect(c),
			}
			id, err := snapStore.Save(cmd.Context(), snap)
			if err != nil {
				return err
			}

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"id": id, "name": saveName})
			}
			output.Success("Saved chart %q (snapshot #%d)", saveName, id)
			return nil
		},
	}
	addBirthFlags(cmd, app)
	cmd.Flags().String("as", "", "snapshot name (defaults to --name)")
	return cmd
}

func newLoadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load <name>",
		Short: "Load and display a saved chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapStore, err := app.requireStore()
			if err != nil {
				return err
			}

			snap, err := snapStore.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(snap)
			}
			renderChart(output, snap.Chart, app.Config.UI.DateFormat)
			if snap.Yogas != nil {
				output.Println()
				renderYogas(output, snap.Yogas)
			}
			output.Dim("Snapshot #%d saved %s", snap.ID, snap.SavedAt.Format(app.Config.UI.DateFormat))
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved chart snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapStore, err := app.requireStore()
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			limit, _ := cmd.Flags().GetInt("limit")
			infos, err := snapStore.List(cmd.Context(), store.ListFilter{Name: name, Limit: limit})
			if err != nil {
				return err
			}

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(infos)
			}
			if len(infos) == 0 {
				output.Println("No saved charts.")
				return nil
			}

			table := NewTable(output, "ID", "Name", "Born", "Saved", "Yogas")
			for _, info := range infos {
				table.AddRow(
					strconv.FormatInt(info.ID, 10),
					info.Name,
					info.BirthTime.Format(app.Config.UI.DateFormat),
					info.SavedAt.Format(app.Config.UI.DateFormat),
					strconv.Itoa(info.YogaCount),
				)
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().String("name", "", "filter by person name")
	cmd.Flags().Int("limit", 0, "maximum number of snapshots to show")
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved snapshot by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapStore, err := app.requireStore()
			if err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.NewValidationError("id", args[0], "must be a snapshot id")
			}
			if err := snapStore.Delete(cmd.Context(), id); err != nil {
				return err
			}

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"deleted": id})
			}
			output.Success("Deleted snapshot #%d", id)
			return nil
		},
	}
}
