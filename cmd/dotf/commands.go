package dotf

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/arthur-debert/dotf/internal/version"
	"github.com/arthur-debert/dotf/pkg/cobrax/topics"
	"github.com/arthur-debert/dotf/pkg/commands/compile"
	"github.com/arthur-debert/dotf/pkg/commands/initialize"
	"github.com/arthur-debert/dotf/pkg/commands/key"
	linkcmd "github.com/arthur-debert/dotf/pkg/commands/link"
	"github.com/arthur-debert/dotf/pkg/commands/status"
	"github.com/arthur-debert/dotf/pkg/commands/tags"
	"github.com/arthur-debert/dotf/pkg/commands/unlink"
	compiler "github.com/arthur-debert/dotf/pkg/compile"
	"github.com/arthur-debert/dotf/pkg/config"
	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/filesystem"
	"github.com/arthur-debert/dotf/pkg/link"
	"github.com/arthur-debert/dotf/pkg/logging"
	"github.com/arthur-debert/dotf/pkg/paths"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/arthur-debert/dotf/pkg/style"
	"github.com/arthur-debert/dotf/pkg/ui"
	"github.com/arthur-debert/dotf/pkg/watch"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "dotf",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String("root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().String("config-file", "", MsgFlagConfigFile)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "setup", Title: "SETUP:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newUnlinkCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newKeyCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, topicsFS(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// environment is what every command needs after flags are parsed
type environment struct {
	cfg  *config.Config
	opts session.Options
}

// loadEnvironment resolves configuration and the root. A non-empty root
// argument takes precedence over --root.
func loadEnvironment(cmd *cobra.Command, root string) (*environment, error) {
	flags := cmd.Root().PersistentFlags()
	if root == "" {
		root, _ = flags.GetString("root")
	}
	configFile, _ := flags.GetString("config-file")

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  map[string]interface{}{"root": root},
	})
	if err != nil {
		return nil, err
	}

	p, err := paths.New(cfg.Root)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("root", p.Root()).Msg("Using dotf root")
	return &environment{
		cfg:  cfg,
		opts: session.Options{FileSystem: filesystem.NewOS(), Paths: p, Config: cfg},
	}, nil
}

// printer writes command output, styled when stdout is a terminal
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	return &printer{w: w, styled: w == os.Stdout && stdoutIsTerminal()}
}

func (p *printer) line(styleName, format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	if p.styled && styleName != "" {
		text = style.Render(styleName, text)
	}
	_, _ = fmt.Fprintln(p.w, text)
}

func (p *printer) warn(format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	if p.styled {
		text = style.WarningText(text)
	}
	_, _ = fmt.Fprintln(p.w, text)
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init [path]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "setup",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var root string
			if len(args) == 1 {
				root = args[0]
			}
			env, err := loadEnvironment(cmd, root)
			if err != nil {
				return err
			}

			result, err := initialize.Init(initialize.InitOptions{Options: env.opts})
			if err != nil {
				return err
			}

			if result.AlreadyInitialized {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgAlreadyInitialized, result.Root)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgInitialized, result.Root)
			return nil
		},
	}
}

func newTagsCmd() *cobra.Command {
	tagsCmd := &cobra.Command{
		Use:     "tags",
		Short:   MsgTagsShort,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}
			result, err := tags.List(tags.TagsOptions{Options: env.opts})
			if err != nil {
				return err
			}
			for _, tag := range result.Tags {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}

	tagsCmd.AddCommand(&cobra.Command{
		Use:   "add <tag>...",
		Short: MsgTagsAddShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}
			result, err := tags.Add(tags.TagsOptions{Options: env.opts, Tags: args})
			if err != nil {
				return err
			}
			if len(result.Added) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), MsgNoTagsAdded)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgTagsAdded, strings.Join(result.Added, ", "))
			return nil
		},
	})

	return tagsCmd
}

func newKeyCmd() *cobra.Command {
	keyCmd := &cobra.Command{
		Use:     "key",
		Short:   MsgKeyShort,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}
			result, err := key.Get(key.KeyOptions{Options: env.opts})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Key)
			return nil
		},
	}

	keyCmd.AddCommand(&cobra.Command{
		Use:   "set <key>",
		Short: MsgKeySetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}
			result, err := key.Set(key.KeyOptions{Options: env.opts, Key: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgKeySet, result.Key)
			return nil
		},
	})

	return keyCmd
}

func newStatusCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Example: MsgStatusExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}

			result, err := status.Status(status.StatusOptions{Options: env.opts})
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.Render(statusView(result))
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	return cmd
}

func statusView(result *status.StatusResult) ui.View {
	view := ui.View{Data: result.Entries, Plain: result.Lines()}
	for _, entry := range result.Entries {
		view.Styled = append(view.Styled, style.StatusLine(entry.Status, entry.Name, entry.Location))
	}
	if len(result.Entries) == 0 {
		view.Plain = []string{MsgNoDotfiles}
	}
	return view
}

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compile",
		Short:   MsgCompileShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}
			result, err := compile.Compile(compile.CompileOptions{Options: env.opts})
			printCompile(newPrinter(cmd), result, err == nil)
			return err
		},
	}
}

func printCompile(p *printer, result *compiler.Result, finished bool) {
	if result == nil {
		return
	}
	p.line("Muted", MsgClearing)
	for _, file := range result.Files {
		p.line("", MsgCompiling, file.Name)
	}
	if result.Failed != "" {
		p.line("", MsgCompiling, result.Failed)
	}
	if finished {
		p.line("Success", MsgCompiled)
	}
}

func newLinkCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "link",
		Short:   MsgLinkShort,
		Example: MsgLinkExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}
			result, err := linkcmd.Link(linkcmd.LinkOptions{Options: env.opts, DryRun: dryRun})
			printLink(newPrinter(cmd), result, err == nil, MsgLinked)
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

func newUnlinkCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "unlink",
		Short:   MsgUnlinkShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}
			result, err := unlink.Unlink(unlink.UnlinkOptions{Options: env.opts, DryRun: dryRun})
			printLink(newPrinter(cmd), result, err == nil, MsgUnlinked)
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

func printLink(p *printer, result *link.Result, finished bool, done string) {
	if result == nil {
		return
	}
	for _, item := range result.Items {
		switch item.Outcome {
		case link.OutcomeLinked:
			p.line("", MsgLinking, item.Name)
		case link.OutcomeAlreadyLinked:
			p.line("Muted", MsgAlreadyLinked, item.Name)
		case link.OutcomeCannotLink:
			p.warn(MsgCannotLink, item.Name)
		case link.OutcomeUnlinked:
			p.line("", MsgUnlinking, item.Name)
		}
	}
	if !finished {
		return
	}
	p.line("Success", done)
	if result.DryRun {
		p.warn(MsgDryRunNotice)
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p := newPrinter(cmd)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgWatching, env.opts.Paths.DotfilesDir())
			return watch.Compile(ctx, env.opts, env.cfg.Watch.Debounce, func(changed []string, result *compiler.Result, err error) {
				if err != nil {
					_, _ = fmt.Fprint(cmd.ErrOrStderr(), style.ErrorText(fmt.Sprintf(MsgWatchFailed, err)))
					return
				}
				printCompile(p, result, true)
			})
		},
	}
}

func newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigContent())
				return nil
			}
			env, err := loadEnvironment(cmd, "")
			if err != nil {
				return err
			}
			out, err := config.Render(env.cfg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersion, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man <dir>",
		Short:  "Generate man pages into dir",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "Could not create %s", args[0])
			}
			header := &doc.GenManHeader{Title: "DOTF", Section: "1"}
			return doc.GenManTree(cmd.Root(), header, args[0])
		},
	}
}

// Execute runs the root command with a background context.
func Execute() error {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Command failed")
	}
	return err
}
