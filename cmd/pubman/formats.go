package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Manage named reference format scripts",
}

var formatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored format scripts",
	Run:   runFormatsList,
}

var formatsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a format script",
	Args:  cobra.ExactArgs(1),
	Run:   runFormatsShow,
}

var formatsSaveCmd = &cobra.Command{
	Use:   "save <name> [script]",
	Short: "Store or update a format script",
	Long: `Store a format script under a name, replacing any previous script with
that name. The script is taken from the second argument, or from stdin when
omitted.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runFormatsSave,
}

var formatsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a format script",
	Args:  cobra.ExactArgs(1),
	Run:   runFormatsDelete,
}

func init() {
	formatsCmd.AddCommand(formatsListCmd)
	formatsCmd.AddCommand(formatsShowCmd)
	formatsCmd.AddCommand(formatsSaveCmd)
	formatsCmd.AddCommand(formatsDeleteCmd)
	rootCmd.AddCommand(formatsCmd)
}

func runFormatsList(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	formats, err := db.ListFormats()
	if err != nil {
		exitWithError(ExitError, "listing formats: %v", err)
	}

	if humanOutput {
		for _, f := range formats {
			outputHuman("%s\n", f.Name)
		}
		return
	}
	outputJSON(formats)
}

func runFormatsShow(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	f, err := db.GetFormat(args[0])
	if err != nil {
		exitWithError(ExitError, "loading format: %v", err)
	}
	if f == nil {
		exitWithError(ExitDataError, "no format named %q", args[0])
	}

	if humanOutput {
		outputHuman("%s\n", f.Code)
		return
	}
	outputJSON(f)
}

func runFormatsSave(cmd *cobra.Command, args []string) {
	name := args[0]

	var code string
	if len(args) == 2 {
		code = args[1]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError(ExitError, "reading script from stdin: %v", err)
		}
		code = string(data)
	}

	db := mustOpenDB()
	defer db.Close()

	if err := db.SaveFormat(name, code); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("Saved format %q\n", name)
	} else {
		outputJSON(UpdateResponse{Status: "saved", Key: name, Value: code})
	}
}

func runFormatsDelete(cmd *cobra.Command, args []string) {
	db := mustOpenDB()
	defer db.Close()

	if err := db.DeleteFormat(args[0]); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if humanOutput {
		outputHuman("Deleted format %q\n", args[0])
	} else {
		outputJSON(StatusResponse{Status: "deleted"})
	}
}
