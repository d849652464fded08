// Package vocabulary implements the vocabulary command
package vocabulary

import (
	"fmt"
	"strings"

	"fjacquet/spendwise/cmd/common"
	"fjacquet/spendwise/cmd/root"

	"github.com/spf13/cobra"
)

var savePath string

// Cmd represents the vocabulary command
var Cmd = &cobra.Command{
	Use:   "vocabulary",
	Short: "Show the effective waste vocabulary or save it as YAML",
	Long: `Print the waste vocabulary the waste command would use. With --save the
vocabulary is written as a YAML file that can be edited and passed back
with --vocabulary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}

		vocabulary, err := c.Vocabulary()
		if err != nil {
			return err
		}

		if savePath != "" {
			if err := c.GetStore().SaveVocabulary(savePath, vocabulary); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %d terms to %s\n", vocabulary.Len(), savePath)
			return err
		}

		return common.WriteOutput(cmd, []byte(strings.Join(vocabulary.Terms(), "\n")+"\n"))
	},
}

func init() {
	Cmd.Flags().StringVar(&savePath, "save", "", "Write the vocabulary to this YAML file")
}
