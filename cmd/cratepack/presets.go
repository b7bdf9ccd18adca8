package main

import (
	"fmt"
	"sort"

	"github.com/piwi3910/CratePack/internal/project"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage the bin preset inventory",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bin presets grouped by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, path, err := project.LoadOrCreateInventory(appConfig.InventoryPath)
		if err != nil {
			return fmt.Errorf("load inventory %s: %w", path, err)
		}

		presets := inv.Bins
		sort.SliceStable(presets, func(i, j int) bool { return presets[i].Category < presets[j].Category })

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, dimStyle.Render(path))
		for i, p := range presets {
			if i == 0 || p.Category != presets[i-1].Category {
				fmt.Fprintln(out, titleStyle.Render(p.Category))
			}
			fmt.Fprintf(out, "  %-8s %-28s %gx%gx%g  max %g\n", p.ID, p.Name, p.Width, p.Height, p.Depth, p.MaxWeight)
		}
		return nil
	},
}

var presetsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge presets from an inventory JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, path, err := project.LoadOrCreateInventory(appConfig.InventoryPath)
		if err != nil {
			return fmt.Errorf("load inventory %s: %w", path, err)
		}
		before := len(inv.Bins)
		inv, err = project.ImportInventory(args[0], inv)
		if err != nil {
			return fmt.Errorf("import presets: %w", err)
		}
		if err := project.SaveInventory(path, inv); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d preset(s)\n", len(inv.Bins)-before)
		return nil
	},
}

var presetsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the inventory to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, path, err := project.LoadOrCreateInventory(appConfig.InventoryPath)
		if err != nil {
			return fmt.Errorf("load inventory %s: %w", path, err)
		}
		return project.SaveInventory(args[0], inv)
	},
}

var presetsBackupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Back up config, inventory and templates to one JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, path, err := project.LoadOrCreateInventory(appConfig.InventoryPath)
		if err != nil {
			return fmt.Errorf("load inventory %s: %w", path, err)
		}
		templates, _, err := loadTemplateStore()
		if err != nil {
			return err
		}
		return project.ExportAllData(args[0], appConfig, inv, templates)
	},
}

var presetsRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore config, inventory and templates from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}
		if err := project.SaveAppConfig(configPath(), backup.Config); err != nil {
			return err
		}
		path := backup.Config.InventoryPath
		if path == "" {
			if path, err = project.DefaultInventoryPath(); err != nil {
				return err
			}
		}
		if err := project.SaveInventory(path, backup.Inventory); err != nil {
			return err
		}
		tmplPath, err := project.TemplatePath(backup.Config.TemplatesPath)
		if err != nil {
			return err
		}
		if err := project.SaveTemplates(tmplPath, backup.Templates); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "restored %d preset(s) and %d template(s) from backup of %s\n",
			len(backup.Inventory.Bins), len(backup.Templates.Templates), backup.CreatedAt)
		return nil
	},
}

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsImportCmd)
	presetsCmd.AddCommand(presetsExportCmd)
	presetsCmd.AddCommand(presetsBackupCmd)
	presetsCmd.AddCommand(presetsRestoreCmd)
}
