package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language/display"

	"github.com/hightemp/name2cc/internal/i18n"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long: `Lists the languages whose country-name tables are searched, in the
order the fallback search walks them. Hindi resolves to the Nepali table.`,
	Run: func(cmd *cobra.Command, args []string) {
		english := display.English.Tags()
		for _, tag := range i18n.Supported() {
			fmt.Printf("%s\t%s\t%s\n", tag, english.Name(tag), display.Self.Name(tag))
		}
	},
}
