package dotf

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compile tagged dotfiles and link them into place"
	MsgInitShort       = "Create a dotf root"
	MsgInitLong        = "Init creates the root directory with dotfiles/, .compiled/, a tags file containing \"all\" and a key file containing \"~~~\". An existing root is left untouched."
	MsgTagsShort       = "Show the tags of this machine"
	MsgTagsAddShort    = "Add tags to this machine"
	MsgKeyShort        = "Show the directive delimiter"
	MsgKeySetShort     = "Replace the directive delimiter"
	MsgStatusShort     = "Show the link status of every dotfile"
	MsgCompileShort    = "Regenerate the compiled dotfiles"
	MsgLinkShort       = "Symlink compiled dotfiles into place"
	MsgUnlinkShort     = "Remove symlinks placed by link"
	MsgWatchShort      = "Recompile whenever dotfiles, tags or key change"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgAlreadyInitialized = "Already initialized: %s\n"
	MsgInitialized        = "Initialized dotf in %s\n"
	MsgClearing           = "Clearing out old files ..."
	MsgCompiling          = "Compiling %s ..."
	MsgCompiled           = "Finished compilation"
	MsgLinking            = "Linking: %s ..."
	MsgAlreadyLinked      = "Already linked: %s"
	MsgCannotLink         = "Cannot link: %s"
	MsgLinked             = "Finished linking"
	MsgUnlinking          = "Unlinking: %s ..."
	MsgUnlinked           = "Finished unlinking"
	MsgDryRunNotice       = "DRY RUN MODE - No changes were made"
	MsgNoDotfiles         = "No dotfiles found."
	MsgTagsAdded          = "Added tags: %s\n"
	MsgNoTagsAdded        = "No new tags."
	MsgKeySet             = "Key set to %s\n"
	MsgWatching           = "Watching %s (Ctrl-C to stop)\n"
	MsgWatchFailed        = "Compilation failed: %v\n"
	MsgVersion            = "dotf version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot       = "dotf root directory (default $DOTF_ROOT, then config, then ~/.dotf)"
	MsgFlagConfigFile = "Configuration file (default $XDG_CONFIG_HOME/dotf/config.toml)"
	MsgFlagDryRun     = "Preview changes without executing them"
	MsgFlagFormat     = "Output format: auto, term, text or json"
	MsgFlagDefaults   = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")
)
