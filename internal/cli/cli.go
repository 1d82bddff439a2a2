// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ncsala/code2context/internal/compact"
	"github.com/ncsala/code2context/internal/config"
	"github.com/ncsala/code2context/internal/gitrepo"
	"github.com/ncsala/code2context/internal/localfs"
	"github.com/ncsala/code2context/internal/services/clipboard"
	"github.com/ncsala/code2context/internal/tokenizer"
	"github.com/ncsala/code2context/internal/types"
	"github.com/ncsala/code2context/internal/utils"
)

const (
	outputFlagName      = "output"
	outputFlagShorthand = "o"
	exclusionFlagName   = "e"
	noGitignoreFlagName = "no-gitignore"
	noTreeFlagName      = "no-tree"
	minifyFlagName      = "minify"
	filesFlagName       = "files"
	copyFlagName        = "copy"
	tokensFlagName      = "tokens"
	modelFlagName       = "model"
	configFlagName      = "config"
	versionFlagName     = "version"
	forceFlagName       = "force"
	globalFlagName      = "global"

	versionTemplate      = "code2context version: %s\n"
	defaultRootPath      = "."
	rootUse              = "code2context"
	rootShortDescription = "code2context command line interface"
	rootLongDescription  = `code2context packs a project's files into one combined text document for LLM prompting.
It resolves include/exclude rules, renders a filtered directory tree, and serializes
an index plus one record per file. Use --files to compact an explicit selection,
-e to add gitignore-style exclusions, and --minify to collapse file content.`

	compactUse              = "compact [root]"
	compactAlias            = "c"
	compactShortDescription = "build a compaction document (" + compactAlias + ")"
	compactLongDescription  = `Build the compaction document for a root directory.
The resolved file set honors built-in exclusions, source-control ignore files,
and custom -e patterns, in that precedence order: later patterns win, so
"-e '!*.png'" re-includes files a built-in pattern excluded.`
	compactUsageExample = `  # Compact the current directory to stdout
  code2context compact

  # Persist the document, skipping the tree section
  code2context compact --no-tree -o context.txt .

  # Compact an explicit selection with minified content
  code2context compact --files main.go --files internal/cli/cli.go --minify .`

	configUse                  = "config"
	configShortDescription     = "manage configuration"
	configInitUse              = "init"
	configInitShortDescription = "write a default configuration file"

	outputFlagDescription      = "write the document to this path instead of stdout"
	exclusionFlagDescription   = "additional gitignore-style exclusion pattern"
	noGitignoreFlagDescription = "do not merge source-control ignore patterns"
	noTreeFlagDescription      = "omit the directory tree section"
	minifyFlagDescription      = "collapse each file's content to a single line"
	filesFlagDescription       = "compact only these relative paths (repeatable)"
	copyFlagDescription        = "copy the document to the system clipboard"
	tokensFlagDescription      = "report the document's token count"
	modelFlagDescription       = "tokenizer model used for token counting"
	configFlagDescription      = "explicit configuration file path"
	versionFlagDescription     = "display application version"
	forceFlagDescription       = "overwrite an existing configuration file"
	globalFlagDescription      = "write the global configuration file"

	defaultTokenizerModelName   = "gpt-4o"
	documentTokensLogFormat     = "document tokens: %d (model %s)"
	copiedToClipboardLogMessage = "document copied to clipboard"
	wroteConfigurationFormat    = "wrote configuration to %s"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// Execute runs the code2context application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createCompactCommand(),
		createConfigCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// compactFlagValues stores the raw flag state of the compact command before
// configuration defaults are overlaid.
type compactFlagValues struct {
	outputPath        string
	exclusionPatterns []string
	disableGitignore  bool
	disableTree       bool
	minifyContent     bool
	selectedFiles     []string
	copyToClipboard   bool
	countTokens       bool
	tokenModel        string
	configFilePath    string
}

// createCompactCommand returns the compact subcommand.
func createCompactCommand() *cobra.Command {
	var flagValues compactFlagValues

	compactCommand := &cobra.Command{
		Use:     compactUse,
		Aliases: []string{compactAlias},
		Short:   compactShortDescription,
		Long:    compactLongDescription,
		Example: compactUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootPath := defaultRootPath
			if len(arguments) > 0 {
				rootPath = arguments[0]
			}
			return runCompact(command, rootPath, flagValues)
		},
	}

	flagSet := compactCommand.Flags()
	flagSet.StringVarP(&flagValues.outputPath, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	flagSet.StringArrayVarP(&flagValues.exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	flagSet.BoolVar(&flagValues.disableGitignore, noGitignoreFlagName, false, noGitignoreFlagDescription)
	flagSet.BoolVar(&flagValues.disableTree, noTreeFlagName, false, noTreeFlagDescription)
	flagSet.BoolVar(&flagValues.minifyContent, minifyFlagName, false, minifyFlagDescription)
	flagSet.StringArrayVar(&flagValues.selectedFiles, filesFlagName, nil, filesFlagDescription)
	flagSet.BoolVar(&flagValues.copyToClipboard, copyFlagName, false, copyFlagDescription)
	flagSet.BoolVar(&flagValues.countTokens, tokensFlagName, false, tokensFlagDescription)
	flagSet.StringVar(&flagValues.tokenModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	flagSet.StringVar(&flagValues.configFilePath, configFlagName, "", configFlagDescription)

	return compactCommand
}

// runCompact merges configuration defaults with flags, runs the engine, and
// handles the document outputs (stdout, clipboard, token report).
func runCompact(command *cobra.Command, rootPath string, flagValues compactFlagValues) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: flagValues.configFilePath,
	})
	if configurationError != nil {
		return configurationError
	}

	options, runtimeSettings := buildCompactOptions(command, rootPath, flagValues, applicationConfiguration.Compact)

	loggerInstance, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	defer loggerInstance.Sync()
	sink := compact.NewZapSink(loggerInstance)

	engine := compact.NewEngine(localfs.NewProvider(), gitrepo.NewProvider(), sink)
	result := engine.Execute(options)
	if !result.OK {
		return errors.New(result.ErrorMessage)
	}

	if options.OutputPath == "" {
		fmt.Fprintln(command.OutOrStdout(), result.Document)
	}
	if runtimeSettings.copyToClipboard {
		if copyError := clipboard.CopyDocument(result.Document); copyError != nil {
			return copyError
		}
		sink.Log(copiedToClipboardLogMessage)
	}
	if runtimeSettings.countTokens {
		counter, resolvedModelName, counterError := tokenizer.NewCounter(runtimeSettings.tokenModel)
		if counterError != nil {
			return counterError
		}
		tokenCount, countError := counter.CountString(result.Document)
		if countError != nil {
			return countError
		}
		sink.Log(fmt.Sprintf(documentTokensLogFormat, tokenCount, resolvedModelName))
	}
	return nil
}

// compactRuntimeSettings carries post-engine behavior resolved from flags and
// configuration.
type compactRuntimeSettings struct {
	copyToClipboard bool
	countTokens     bool
	tokenModel      string
}

// buildCompactOptions resolves flags over configuration defaults into engine
// options. Flags that were explicitly set win; otherwise configuration values
// apply, then the built-in defaults (gitignore merged, tree included, no
// minification).
func buildCompactOptions(command *cobra.Command, rootPath string, flagValues compactFlagValues, configuration config.CompactConfiguration) (compact.Options, compactRuntimeSettings) {
	flagSet := command.Flags()

	includeGitIgnore := true
	if configuration.UseGitignore != nil {
		includeGitIgnore = *configuration.UseGitignore
	}
	if flagSet.Changed(noGitignoreFlagName) {
		includeGitIgnore = !flagValues.disableGitignore
	}

	includeTree := true
	if configuration.Tree != nil {
		includeTree = *configuration.Tree
	}
	if flagSet.Changed(noTreeFlagName) {
		includeTree = !flagValues.disableTree
	}

	minifyContent := false
	if configuration.Minify != nil {
		minifyContent = *configuration.Minify
	}
	if flagSet.Changed(minifyFlagName) {
		minifyContent = flagValues.minifyContent
	}

	outputPath := configuration.Output
	if flagSet.Changed(outputFlagName) {
		outputPath = flagValues.outputPath
	}
	if outputPath != "" && !filepath.IsAbs(outputPath) {
		outputPath = filepath.Clean(outputPath)
	}

	customPatterns := append([]string{}, configuration.Exclude...)
	customPatterns = append(customPatterns, flagValues.exclusionPatterns...)

	selectionMode := types.SelectionModeDirectory
	if len(flagValues.selectedFiles) > 0 {
		selectionMode = types.SelectionModeFiles
	}

	copyToClipboard := false
	if configuration.Clipboard != nil {
		copyToClipboard = *configuration.Clipboard
	}
	if flagSet.Changed(copyFlagName) {
		copyToClipboard = flagValues.copyToClipboard
	}

	countTokens := false
	if configuration.Tokens.Enabled != nil {
		countTokens = *configuration.Tokens.Enabled
	}
	if flagSet.Changed(tokensFlagName) {
		countTokens = flagValues.countTokens
	}

	tokenModel := flagValues.tokenModel
	if !flagSet.Changed(modelFlagName) && configuration.Tokens.Model != "" {
		tokenModel = configuration.Tokens.Model
	}

	options := compact.Options{
		RootPath:             rootPath,
		OutputPath:           outputPath,
		CustomIgnorePatterns: customPatterns,
		IncludeGitIgnore:     includeGitIgnore,
		IncludeTree:          includeTree,
		MinifyContent:        minifyContent,
		SpecificFiles:        flagValues.selectedFiles,
		SelectionMode:        selectionMode,
	}
	runtimeSettings := compactRuntimeSettings{
		copyToClipboard: copyToClipboard,
		countTokens:     countTokens,
		tokenModel:      tokenModel,
	}
	return options, runtimeSettings
}

// createConfigCommand returns the config subcommand with its init child.
func createConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	var writeGlobal bool
	var forceOverwrite bool
	initCommand := &cobra.Command{
		Use:   configInitUse,
		Short: configInitShortDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			destinationPath, initializeError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializeError != nil {
				return initializeError
			}
			fmt.Fprintf(command.OutOrStdout(), wroteConfigurationFormat+"\n", destinationPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&writeGlobal, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	configCommand.AddCommand(initCommand)
	return configCommand
}
