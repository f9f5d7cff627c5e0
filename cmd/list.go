package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/CYSTCloud/TP/log"
	"github.com/CYSTCloud/TP/models"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored translations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer closeDB(db)

		translations, err := models.NewTranslationStore(db).List(cmd.Context())
		if err != nil {
			return err
		}
		return printTranslations(cmd, translations)
	},
}

func printTranslations(cmd *cobra.Command, translations []models.Translation) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFROM\tTO\tSOURCE\tTARGET\tCREATED")
	for _, t := range translations {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.SourceLanguage, t.TargetLanguage,
			oneLine(t.SourceText), oneLine(t.TargetText),
			t.CreatedAt.Format(time.DateTime))
	}
	return w.Flush()
}

// 表格里只显示单行摘要
func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 40 {
		return string(r[:37]) + "..."
	}
	return s
}
