// Translation commands for the sheetstore CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var i18nCmd = &cobra.Command{
	Use:   "i18n",
	Short: "Inspect and edit UI translations",
}

var i18nGetCmd = &cobra.Command{
	Use:   "get [locale]",
	Short: "Print the translation dictionary",
	Long: `Get prints the full locale→key→value dictionary, or a single
locale's key→value map when a locale argument is given.

Example:
  sheetstore i18n get
  sheetstore i18n get fr`,
	Args: cobra.MaximumNArgs(1),
	RunE: runI18nGet,
}

var i18nSetCmd = &cobra.Command{
	Use:   "set <locale> <key> <value>",
	Short: "Set one translation value",
	Args:  cobra.ExactArgs(3),
	RunE:  runI18nSet,
}

func init() {
	i18nCmd.AddCommand(i18nGetCmd)
	i18nCmd.AddCommand(i18nSetCmd)
}

func runI18nGet(cmd *cobra.Command, args []string) error {
	warnFallback()

	if len(args) == 1 {
		dict, err := store.I18n().GetLocale(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get locale %s: %w", args[0], err)
		}
		return printJSON(dict)
	}

	dict, err := store.I18n().GetAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("get translations: %w", err)
	}
	return printJSON(dict)
}

func runI18nSet(cmd *cobra.Command, args []string) error {
	warnFallback()

	locale, key, value := args[0], args[1], args[2]
	if err := store.I18n().SetKey(cmd.Context(), locale, key, value); err != nil {
		return fmt.Errorf("set %s/%s: %w", locale, key, err)
	}

	fmt.Printf("Set %s/%s\n", locale, key)
	return nil
}
