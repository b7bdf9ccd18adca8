package main

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/spf13/cobra"
)

var (
	templateDescription string
	templateJobName     string
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Save and reuse item and bin lists",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved job templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, path, err := loadTemplateStore()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, dimStyle.Render(path))
		if len(store.Templates) == 0 {
			fmt.Fprintln(out, "no templates")
			return nil
		}
		for _, t := range store.Templates {
			fmt.Fprintf(out, "%s  %d item line(s), %d bin line(s)  %s\n",
				titleStyle.Render(t.Name), len(t.Items), len(t.Bins), dimStyle.Render(t.Description))
		}
		return nil
	},
}

var templatesSaveCmd = &cobra.Command{
	Use:   "save <name> <job-file>",
	Short: "Save the item and bin lists of a job file as a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := project.LoadJob(args[1])
		if err != nil {
			return err
		}
		store, path, err := loadTemplateStore()
		if err != nil {
			return err
		}
		store.Put(model.NewJobTemplate(args[0], templateDescription, job))
		if err := project.SaveTemplates(path, store); err != nil {
			return fmt.Errorf("save templates: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved template %q\n", args[0])
		return nil
	},
}

var templatesNewCmd = &cobra.Command{
	Use:   "new <name> <job-file>",
	Short: "Start a new job file from a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadTemplateStore()
		if err != nil {
			return err
		}
		tmpl := store.FindByName(args[0])
		if tmpl == nil {
			return fmt.Errorf("unknown template %q", args[0])
		}
		name := templateJobName
		if name == "" {
			name = tmpl.Name
		}
		if err := project.SaveJob(args[1], tmpl.ToJob(name)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s from template %q\n", args[1], tmpl.Name)
		return nil
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a job template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, path, err := loadTemplateStore()
		if err != nil {
			return err
		}
		if !store.Remove(args[0]) {
			return fmt.Errorf("unknown template %q", args[0])
		}
		return project.SaveTemplates(path, store)
	},
}

func init() {
	templatesSaveCmd.Flags().StringVar(&templateDescription, "description", "", "template description")
	templatesNewCmd.Flags().StringVar(&templateJobName, "job-name", "", "name of the new job (default: template name)")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesSaveCmd)
	templatesCmd.AddCommand(templatesNewCmd)
	templatesCmd.AddCommand(templatesDeleteCmd)
}

func loadTemplateStore() (model.TemplateStore, string, error) {
	path, err := project.TemplatePath(appConfig.TemplatesPath)
	if err != nil {
		return model.TemplateStore{}, "", err
	}
	store, err := project.LoadTemplates(path)
	if err != nil {
		return store, path, fmt.Errorf("load templates %s: %w", path, err)
	}
	return store, path, nil
}
